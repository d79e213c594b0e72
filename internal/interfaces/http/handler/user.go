package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/palengke/backend/internal/application/identity"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	service *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *identityapp.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create registers a new user account
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid user payload")
		return
	}
	if actor, err := getUserID(c); err == nil {
		req.CreatedBy = &actor
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// Get returns one user by id
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// List returns users matching the query filter
func (h *UserHandler) List(c *gin.Context) {
	var filter identityapp.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list query")
		return
	}

	users, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, filter.Page, filter.PageSize)
}

// ChangeRole reassigns a user's role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identityapp.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid role payload")
		return
	}

	user, err := h.service.ChangeRole(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// ResetPassword sets a new password for a user (admin action)
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identityapp.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid password payload")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), userID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Unlock clears a user's failed-login lockout
func (h *UserHandler) Unlock(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.Unlock(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Deactivate disables a user account
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.Deactivate(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Reactivate re-enables a deactivated user account
func (h *UserHandler) Reactivate(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.Reactivate(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// RegisterRoutes registers user administration routes, admin only
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireRole(identity.RoleAdmin))
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
		users.PUT("/:id/role", h.ChangeRole)
		users.POST("/:id/reset-password", h.ResetPassword)
		users.POST("/:id/unlock", h.Unlock)
		users.POST("/:id/deactivate", h.Deactivate)
		users.POST("/:id/reactivate", h.Reactivate)
	}
}
