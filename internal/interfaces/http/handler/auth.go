package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	identityapp "github.com/palengke/backend/internal/application/identity"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	service *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates a user and issues a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var input identityapp.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid login payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input identityapp.RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid refresh payload")
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// LogoutRequest carries the optional all-sessions flag
type LogoutRequest struct {
	AllSessions bool `json:"all_sessions"`
}

// Logout revokes the current token, or every session for the user
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	input := identityapp.LogoutInput{
		UserID:      userID,
		AllSessions: req.AllSessions,
	}
	if claims := middleware.GetJWTClaims(c); claims != nil {
		input.TokenID = claims.ID
		if claims.ExpiresAt != nil {
			input.TokenExpiresAt = claims.ExpiresAt.Time
		} else {
			input.TokenExpiresAt = time.Now()
		}
	}

	if err := h.service.Logout(c.Request.Context(), input); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	info, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, info)
}

// ChangePassword changes the authenticated user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user")
		return
	}

	var input identityapp.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid password payload")
		return
	}
	input.UserID = userID

	if err := h.service.ChangePassword(c.Request.Context(), input); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.POST("/change-password", h.ChangePassword)
	}
}
