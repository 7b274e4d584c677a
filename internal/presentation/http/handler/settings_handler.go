package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetReceiptSettings retrieves the receipt settings, merged over defaults
func (h *SettingsHandler) GetReceiptSettings(c *gin.Context) {
	settings := h.settingsService.GetReceiptSettings(c.Request.Context())
	response.OK(c, "Receipt settings retrieved", settings)
}

// UpdateReceiptSettings replaces the receipt settings
func (h *SettingsHandler) UpdateReceiptSettings(c *gin.Context) {
	var req entity.ReceiptSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveReceiptSettings(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt settings updated", settings)
}

// GetLabelSettings retrieves the label settings, merged over defaults
func (h *SettingsHandler) GetLabelSettings(c *gin.Context) {
	settings := h.settingsService.GetLabelSettings(c.Request.Context())
	response.OK(c, "Label settings retrieved", settings)
}

// UpdateLabelSettings replaces the label settings
func (h *SettingsHandler) UpdateLabelSettings(c *gin.Context) {
	var req entity.LabelSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveLabelSettings(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Label settings updated", settings)
}

// GetGeneralSettings retrieves the general settings, merged over defaults
func (h *SettingsHandler) GetGeneralSettings(c *gin.Context) {
	settings := h.settingsService.GetGeneralSettings(c.Request.Context())
	response.OK(c, "General settings retrieved", settings)
}

// UpdateGeneralSettings replaces the general settings
func (h *SettingsHandler) UpdateGeneralSettings(c *gin.Context) {
	var req entity.GeneralSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveGeneralSettings(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "General settings updated", settings)
}
