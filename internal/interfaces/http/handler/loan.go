package handler

import (
	"github.com/gin-gonic/gin"

	lendingapp "github.com/palengke/backend/internal/application/lending"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// LoanHandler handles tenant micro-loan application endpoints
type LoanHandler struct {
	BaseHandler
	service *lendingapp.LoanApplicationService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(service *lendingapp.LoanApplicationService) *LoanHandler {
	return &LoanHandler{service: service}
}

// Submit files a new loan application for a market tenant
func (h *LoanHandler) Submit(c *gin.Context) {
	var req lendingapp.SubmitLoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid loan application payload")
		return
	}

	application, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, application)
}

// Get returns one loan application by id
func (h *LoanHandler) Get(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	application, err := h.service.GetByID(c.Request.Context(), applicationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, application)
}

// List returns loan applications matching the query filter
func (h *LoanHandler) List(c *gin.Context) {
	var filter lendingapp.LoanApplicationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list query")
		return
	}

	applications, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, applications, total, filter.Page, filter.PageSize)
}

// ListByTenant returns a tenant's loan applications
func (h *LoanHandler) ListByTenant(c *gin.Context) {
	tenantID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	applications, err := h.service.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applications)
}

// Approve approves a pending loan application
func (h *LoanHandler) Approve(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	application, err := h.service.Approve(c.Request.Context(), applicationID, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, application)
}

// Reject rejects a pending loan application with a reason
func (h *LoanHandler) Reject(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req lendingapp.RejectLoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Rejection reason is required")
		return
	}

	application, err := h.service.Reject(c.Request.Context(), applicationID, actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, application)
}

// Delete removes a decided loan application
func (h *LoanHandler) Delete(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), applicationID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers loan application routes. Decisions are
// restricted to finance head and admin.
func (h *LoanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	loans := rg.Group("/loans")
	{
		loans.GET("", h.List)
		loans.GET("/:id", h.Get)
		loans.GET("/tenant/:id", h.ListByTenant)
		loans.POST("", h.Submit)

		decide := loans.Group("")
		decide.Use(middleware.RequireRole(identity.RoleFinanceHead, identity.RoleAdmin))
		{
			decide.POST("/:id/approve", h.Approve)
			decide.POST("/:id/reject", h.Reject)
			decide.DELETE("/:id", h.Delete)
		}
	}
}
