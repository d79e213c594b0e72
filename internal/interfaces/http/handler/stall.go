package handler

import (
	"github.com/gin-gonic/gin"

	leasingapp "github.com/palengke/backend/internal/application/leasing"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// StallHandler handles market stall registry endpoints
type StallHandler struct {
	BaseHandler
	stalls  *leasingapp.StallService
	tenants *leasingapp.MarketTenantService
}

// NewStallHandler creates a new StallHandler
func NewStallHandler(stalls *leasingapp.StallService, tenants *leasingapp.MarketTenantService) *StallHandler {
	return &StallHandler{stalls: stalls, tenants: tenants}
}

// Create registers a new stall
func (h *StallHandler) Create(c *gin.Context) {
	var req leasingapp.CreateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid stall payload")
		return
	}

	stall, err := h.stalls.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, stall)
}

// Get returns one stall by id
func (h *StallHandler) Get(c *gin.Context) {
	stallID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid stall ID")
		return
	}

	stall, err := h.stalls.GetByID(c.Request.Context(), stallID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stall)
}

// List returns stalls, optionally filtered by status
func (h *StallHandler) List(c *gin.Context) {
	var status *leasing.StallStatus
	if raw := c.Query("status"); raw != "" {
		s := leasing.StallStatus(raw)
		status = &s
	}

	stalls, err := h.stalls.List(c.Request.Context(), status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stalls)
}

// GetTenant returns one market tenant by id
func (h *StallHandler) GetTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenants.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tenant)
}

// ListTenants returns all market tenants
func (h *StallHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenants.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tenants)
}

// DeactivateTenant marks a tenant as inactive
func (h *StallHandler) DeactivateTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenants.Deactivate(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tenant)
}

// RegisterRoutes registers stall and tenant routes
func (h *StallHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stalls := rg.Group("/stalls")
	{
		stalls.GET("", h.List)
		stalls.GET("/:id", h.Get)
		stalls.POST("", middleware.RequireRole(identity.RoleMarketMaster, identity.RoleAdmin), h.Create)
	}

	tenants := rg.Group("/tenants")
	{
		tenants.GET("", h.ListTenants)
		tenants.GET("/:id", h.GetTenant)
		tenants.POST("/:id/deactivate", middleware.RequireRole(identity.RoleMarketMaster, identity.RoleAdmin), h.DeactivateTenant)
	}
}
