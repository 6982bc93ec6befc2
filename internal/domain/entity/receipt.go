package entity

// ReceiptRow is a single label/value line on a rendered receipt.
// Header and footer lines carry an empty label.
type ReceiptRow struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// ReceiptSection is an ordered run of rows separated from its
// neighbours by a divider when printed.
type ReceiptSection struct {
	Name string       `json:"name"`
	Rows []ReceiptRow `json:"rows"`
}

// ReceiptDocument is a value object representing a fully rendered
// receipt for one brand template. It is never stored: it is composed
// from the session's BillRecord at render time and consumed by the
// ESC/POS formatter and the PNG rasterizer.
type ReceiptDocument struct {
	Brand    string           `json:"brand"`
	LogoData string           `json:"-"`
	Sections []ReceiptSection `json:"sections"`
}

// Section returns the named section, or nil when the template omitted it.
func (d *ReceiptDocument) Section(name string) *ReceiptSection {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}
