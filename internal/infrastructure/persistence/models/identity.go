package models

import (
	"time"

	"github.com/palengke/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate
type UserModel struct {
	AuditedAggregateModel
	Username       string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email          string              `gorm:"type:varchar(255);index"`
	PasswordHash   string              `gorm:"type:varchar(255);not null"`
	DisplayName    string              `gorm:"type:varchar(100)"`
	Role           identity.Role       `gorm:"type:varchar(30);not null;index"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;index"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
	Notes          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		AuditedAggregateRoot: m.toDomainRoot(),
		Username:             m.Username,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		DisplayName:          m.DisplayName,
		Role:                 m.Role,
		Status:               m.Status,
		LastLoginAt:          m.LastLoginAt,
		FailedAttempts:       m.FailedAttempts,
		LockedUntil:          m.LockedUntil,
		Notes:                m.Notes,
	}
}

// UserModelFromDomain converts a domain User to the persistence model
func UserModelFromDomain(user *identity.User) *UserModel {
	return &UserModel{
		AuditedAggregateModel: fromDomainRoot(user.AuditedAggregateRoot),
		Username:              user.Username,
		Email:                 user.Email,
		PasswordHash:          user.PasswordHash,
		DisplayName:           user.DisplayName,
		Role:                  user.Role,
		Status:                user.Status,
		LastLoginAt:           user.LastLoginAt,
		FailedAttempts:        user.FailedAttempts,
		LockedUntil:           user.LockedUntil,
		Notes:                 user.Notes,
	}
}
