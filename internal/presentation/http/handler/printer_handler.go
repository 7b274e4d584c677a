package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status HTTP requests.
type PrinterHandler struct {
	receiptService *service.ReceiptService
	printerType    string
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(receiptService *service.ReceiptService, printerType string) *PrinterHandler {
	return &PrinterHandler{
		receiptService: receiptService,
		printerType:    printerType,
	}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", gin.H{
		"type":      h.printerType,
		"connected": h.receiptService.PrinterConnected(),
	})
}
