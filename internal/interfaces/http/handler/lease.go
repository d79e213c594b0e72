package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	leasingapp "github.com/palengke/backend/internal/application/leasing"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// LeaseHandler handles the stall lease lifecycle endpoints
type LeaseHandler struct {
	BaseHandler
	service *leasingapp.LeaseService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(service *leasingapp.LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

// Submit files a new lease application
func (h *LeaseHandler) Submit(c *gin.Context) {
	var req leasingapp.SubmitLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid lease application payload")
		return
	}
	if actor, err := getUserID(c); err == nil {
		req.CreatedBy = &actor
	}

	lease, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, lease)
}

// AttachIDArtifact attaches the applicant's uploaded ID document
func (h *LeaseHandler) AttachIDArtifact(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	var req leasingapp.AttachIDArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid artifact payload")
		return
	}

	lease, err := h.service.AttachIDArtifact(c.Request.Context(), leaseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// Approve approves a pending lease application
func (h *LeaseHandler) Approve(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	lease, err := h.service.Approve(c.Request.Context(), leaseID, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// Reject rejects a pending lease application with a reason
func (h *LeaseHandler) Reject(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req leasingapp.RejectLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Rejection reason is required")
		return
	}

	lease, err := h.service.Reject(c.Request.Context(), leaseID, actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// Restore moves a rejected lease back to pending review
func (h *LeaseHandler) Restore(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	lease, err := h.service.Restore(c.Request.Context(), leaseID, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// Activate puts an approved lease into effect
func (h *LeaseHandler) Activate(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	lease, err := h.service.Activate(c.Request.Context(), leaseID, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// Get returns one lease by id
func (h *LeaseHandler) Get(c *gin.Context) {
	leaseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lease ID")
		return
	}

	lease, err := h.service.GetByID(c.Request.Context(), leaseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lease)
}

// List returns leases matching the query filter
func (h *LeaseHandler) List(c *gin.Context) {
	var filter leasingapp.LeaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list query")
		return
	}

	leases, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, leases, total, filter.Page, filter.PageSize)
}

// Expiring returns active leases ending within the given window in days
func (h *LeaseHandler) Expiring(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		h.BadRequest(c, "Invalid expiry window")
		return
	}

	leases, err := h.service.ListExpiringWithin(c.Request.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, leases)
}

// RegisterRoutes registers lease lifecycle routes. Approval decisions
// are restricted to the market master and admin.
func (h *LeaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leases := rg.Group("/leases")
	{
		leases.GET("", h.List)
		leases.GET("/expiring", h.Expiring)
		leases.GET("/:id", h.Get)
		leases.POST("", h.Submit)
		leases.PUT("/:id/artifact", h.AttachIDArtifact)

		decide := leases.Group("")
		decide.Use(middleware.RequireRole(identity.RoleMarketMaster, identity.RoleAdmin))
		{
			decide.POST("/:id/approve", h.Approve)
			decide.POST("/:id/reject", h.Reject)
			decide.POST("/:id/restore", h.Restore)
			decide.POST("/:id/activate", h.Activate)
		}
	}
}
