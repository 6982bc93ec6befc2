package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/arjunpx/fuelbill-api/internal/application/service"
	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/dto/request"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
	maxLogoSize int
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, maxLogoSize int) *BillHandler {
	return &BillHandler{billService: billService, maxLogoSize: maxLogoSize}
}

// Get returns the session's current bill record
func (h *BillHandler) Get(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	rec := h.billService.Get(*sessionID)
	response.OK(c, "Bill retrieved successfully", rec)
}

// UpdateField applies a single-field edit and returns the updated
// record, derived fields included
func (h *BillHandler) UpdateField(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	var req request.FieldEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	rec, err := h.billService.UpdateField(*sessionID, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Field updated successfully", rec)
}

// Replace swaps in a complete bill record after full validation
func (h *BillHandler) Replace(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	var rec entity.BillRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationError(c, FieldErrors(err))
			return
		}
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	response.OK(c, "Bill replaced successfully", h.billService.Replace(*sessionID, rec))
}

// Reset restores the seed defaults for the session
func (h *BillHandler) Reset(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	response.OK(c, "Bill reset to defaults", h.billService.Reset(*sessionID))
}

// SwitchBrand changes the receipt template and applies brand defaults
func (h *BillHandler) SwitchBrand(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	var req request.BrandSwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	rec, err := h.billService.SwitchBrand(*sessionID, enum.BrandTemplate(req.Brand))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Switched to the "+rec.BrandTemplate.DisplayName()+" template", rec)
}

// GenerateCodes stamps a fresh ATOT/VTOT pair onto the record
func (h *BillHandler) GenerateCodes(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	response.OK(c, "Transaction codes generated", h.billService.GenerateCodes(*sessionID))
}

// UploadLogo stores a custom logo and switches to the custom template
func (h *BillHandler) UploadLogo(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	var req request.LogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	if len(req.Data) > h.maxLogoSize {
		response.BadRequest(c, "Logo exceeds the maximum upload size")
		return
	}

	response.OK(c, "Logo uploaded successfully", h.billService.SetLogo(*sessionID, req.Data))
}

// RemoveLogo clears the custom logo
func (h *BillHandler) RemoveLogo(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	response.OK(c, "Logo removed", h.billService.RemoveLogo(*sessionID))
}
