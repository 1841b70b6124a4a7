package handler

import (
	"github.com/gin-gonic/gin"

	settingsapp "github.com/vinpos/backend/internal/application/settings"
	"github.com/vinpos/backend/internal/domain/shared"
)

// SettingsHandler handles the global settings API endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
	rg.PUT("/settings", h.Update)
}

// Get returns the current settings
func (h *SettingsHandler) Get(c *gin.Context) {
	h.Success(c, h.settingsService.Get())
}

// Update replaces the settings wholesale
func (h *SettingsHandler) Update(c *gin.Context) {
	var next shared.Settings
	if err := c.ShouldBindJSON(&next); err != nil {
		h.BindError(c, err)
		return
	}
	h.Success(c, h.settingsService.Update(next))
}
