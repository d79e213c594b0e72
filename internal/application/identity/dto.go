package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/identity"
)

// LoginInput contains login credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResult contains the refreshed token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput identifies the session being terminated
type LogoutInput struct {
	UserID        uuid.UUID
	TokenID       string
	TokenExpiresAt time.Time
	AllSessions   bool
}

// ChangePasswordInput contains password change data
type ChangePasswordInput struct {
	UserID      uuid.UUID `json:"-"`
	OldPassword string    `json:"old_password" binding:"required"`
	NewPassword string    `json:"new_password" binding:"required,min=8,max=72"`
}

// UserInfo contains the user profile returned with tokens
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
}

// CreateUserRequest registers a new account
type CreateUserRequest struct {
	Username    string        `json:"username" binding:"required,min=3,max=50"`
	Password    string        `json:"password" binding:"required,min=8,max=72"`
	Role        identity.Role `json:"role" binding:"required"`
	Email       string        `json:"email"`
	DisplayName string        `json:"display_name"`
	CreatedBy   *uuid.UUID    `json:"-"`
}

// ChangeRoleRequest reassigns a user's role
type ChangeRoleRequest struct {
	Role identity.Role `json:"role" binding:"required"`
}

// ResetPasswordRequest sets a new password without the old one (admin action)
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserResponse represents a user account in responses
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	DisplayName    string     `json:"display_name,omitempty"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	FailedAttempts int        `json:"failed_attempts"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserListFilter contains query parameters for listing users
type UserListFilter struct {
	Keyword  string               `form:"keyword"`
	Status   *identity.UserStatus `form:"status"`
	Role     *identity.Role       `form:"role"`
	Page     int                  `form:"page"`
	PageSize int                  `form:"page_size"`
}

// ToUserInfo converts a domain user to the token payload profile
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        user.Role.String(),
		Status:      user.Status.String(),
	}
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		Role:           user.Role.String(),
		Status:         user.Status.String(),
		LastLoginAt:    user.LastLoginAt,
		FailedAttempts: user.FailedAttempts,
		LockedUntil:    user.LockedUntil,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// ToUserResponses converts a slice of users to response DTOs
func ToUserResponses(users []*identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
