package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunpx/fuelbill-api/internal/application/service"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Preview returns the brand-ordered receipt sections for rendering
func (h *ReceiptHandler) Preview(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	response.OK(c, "Receipt generated successfully", h.receiptService.Preview(*sessionID))
}

// Export streams the receipt as a PNG download
func (h *ReceiptHandler) Export(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	data, filename, err := h.receiptService.ExportPNG(*sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "image/png", data)
}

// Print sends the receipt to the configured thermal printer. When the
// printer is offline the formatted receipt still comes back so the
// client can show it.
func (h *ReceiptHandler) Print(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.InternalServerError(c, "Session not established")
		return
	}

	doc, job, err := h.receiptService.Print(*sessionID)
	payload := gin.H{
		"receipt":   doc,
		"job_bytes": len(job),
	}
	if err != nil {
		payload["warning"] = "Printer unavailable: " + err.Error()
		response.Success(c, http.StatusAccepted, "Receipt formatted, printing skipped", payload)
		return
	}
	response.OK(c, "Receipt printed successfully", payload)
}

// PrinterStatus reports the configured printer transport and whether
// it is reachable
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", h.receiptService.Status())
}
