package request

// FieldEditRequest is a single-field edit on the session's bill. The
// value type depends on the field: numbers for the transaction trio,
// strings for everything else.
type FieldEditRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}

// BrandSwitchRequest selects a receipt template.
type BrandSwitchRequest struct {
	Brand string `json:"brand" binding:"required,oneof=indianoil bharat hp essar custom"`
}

// LogoUploadRequest carries a logo as a base64 data URL.
type LogoUploadRequest struct {
	Data string `json:"data" binding:"required,startswith=data:image/"`
}
