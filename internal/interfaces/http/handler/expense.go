package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/palengke/backend/internal/application/finance"
)

// ExpenseHandler handles the expense approval chain endpoints.
// Role checks for approval steps live in the application service,
// which knows the per-amount thresholds; the handler only forwards
// the caller's role.
type ExpenseHandler struct {
	BaseHandler
	service *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(service *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// Create records a new expense pending approval
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid expense payload")
		return
	}
	if actor, err := getUserID(c); err == nil {
		req.CreatedBy = &actor
	}

	expense, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, expense)
}

// Get returns one expense by id
func (h *ExpenseHandler) Get(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.service.GetByID(c.Request.Context(), expenseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// List returns expenses matching the query filter
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter financeapp.ExpenseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list query")
		return
	}

	expenses, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// Update edits a pending expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req financeapp.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid expense payload")
		return
	}

	expense, err := h.service.Update(c.Request.Context(), expenseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// Approve approves a pending expense within the caller's threshold
func (h *ExpenseHandler) Approve(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	expense, err := h.service.Approve(c.Request.Context(), expenseID, actor, getUserRole(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// Reject rejects a pending expense with a reason
func (h *ExpenseHandler) Reject(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req financeapp.RejectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Rejection reason is required")
		return
	}

	expense, err := h.service.Reject(c.Request.Context(), expenseID, actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// GenerateCheckRequest issues a check request for an approved expense
func (h *ExpenseHandler) GenerateCheckRequest(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	expense, err := h.service.GenerateCheckRequest(c.Request.Context(), expenseID, actor, getUserRole(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// AuthorizeRelease authorizes payment release for a check-requested expense
func (h *ExpenseHandler) AuthorizeRelease(c *gin.Context) {
	expenseID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	expense, err := h.service.AuthorizeRelease(c.Request.Context(), expenseID, actor, getUserRole(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.List)
		expenses.GET("/:id", h.Get)
		expenses.POST("", h.Create)
		expenses.PUT("/:id", h.Update)
		expenses.POST("/:id/approve", h.Approve)
		expenses.POST("/:id/reject", h.Reject)
		expenses.POST("/:id/check-request", h.GenerateCheckRequest)
		expenses.POST("/:id/authorize-release", h.AuthorizeRelease)
	}
}
