package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// LabelHandler handles product-label HTTP requests
type LabelHandler struct {
	labelService *service.LabelService
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(labelService *service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// Preview composes a label document for on-screen preview
func (h *LabelHandler) Preview(c *gin.Context) {
	var req request.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	doc := h.labelService.Compose(c.Request.Context(), entity.LabelContent{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: money.FromFloat(req.Price),
	})

	response.OK(c, "Label composed", doc)
}

// PDF renders one label as a PDF page at its exact physical size
func (h *LabelHandler) PDF(c *gin.Context) {
	var req request.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	doc := h.labelService.Compose(ctx, entity.LabelContent{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: money.FromFloat(req.Price),
	})

	pdf, err := h.labelService.RenderPDF(doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="label.pdf"`)
	c.Data(200, "application/pdf", pdf)
}

// Print sends one label to the thermal printer
func (h *LabelHandler) Print(c *gin.Context) {
	var req request.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	doc := h.labelService.Compose(ctx, entity.LabelContent{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: money.FromFloat(req.Price),
	})

	if err := h.labelService.Print(ctx, doc); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Label printed", gin.H{"label": doc})
}

// TestPrint prints a sample label with fixed content
func (h *LabelHandler) TestPrint(c *gin.Context) {
	if err := h.labelService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test label sent to printer", nil)
}

// CalibrationPDF renders the printer-alignment test page for the current
// label size
func (h *LabelHandler) CalibrationPDF(c *gin.Context) {
	pdf, err := h.labelService.RenderCalibrationPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="label-calibration.pdf"`)
	c.Data(200, "application/pdf", pdf)
}
