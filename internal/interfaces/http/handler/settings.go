package handler

import (
	"github.com/gin-gonic/gin"

	settingsapp "github.com/palengke/backend/internal/application/settings"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// SettingsHandler handles market settings endpoints
type SettingsHandler struct {
	BaseHandler
	service *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get returns the current market settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update replaces the market settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings settingsapp.MarketSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.BadRequest(c, "Invalid settings payload")
		return
	}

	if err := h.service.Update(c.Request.Context(), &settings); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// RegisterRoutes registers settings routes. Editing is admin-only.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", middleware.RequireRole(identity.RoleAdmin), h.Update)
	}
}
