package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
)

// ReceiptHandler handles receipt composition and printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Preview composes a receipt document without printing it
func (h *ReceiptHandler) Preview(c *gin.Context) {
	var req request.ReceiptOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	doc, err := h.receiptService.Compose(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt composed", doc)
}

// Print composes a receipt and sends it to the thermal printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	var req request.ReceiptOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	doc, err := h.receiptService.Compose(ctx, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.receiptService.Print(ctx, doc); err != nil {
		// The composed document survives a print failure so the register
		// can show it and offer a retry.
		appErr := apperror.GetAppError(err)
		c.JSON(appErr.Code, response.APIResponse{
			Success: false,
			Message: appErr.Message,
			Data:    gin.H{"receipt": doc},
		})
		return
	}

	response.OK(c, "Receipt printed", gin.H{"receipt": doc})
}

// PDF composes a receipt and renders it as an 80mm PDF
func (h *ReceiptHandler) PDF(c *gin.Context) {
	var req request.ReceiptOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	doc, err := h.receiptService.Compose(ctx, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := h.receiptService.RenderPDF(doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+req.ID+`.pdf"`)
	c.Data(200, "application/pdf", pdf)
}
