package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/infrastructure/auth"
	"github.com/palengke/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(userRepo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
	return NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func newActiveUser(t *testing.T, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("aling.nena", password, identity.RoleManager)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	result, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "kanin-baboy-88",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "aling.nena", result.User.Username)
	assert.Equal(t, "Manager", result.User.Role)
	assert.Equal(t, 0, user.FailedAttempts)
	require.NotNil(t, user.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	_, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "wrong-password",
	})

	assert.Error(t, err)
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	for i := 0; i < 5; i++ {
		_, err := service.Login(context.Background(), LoginInput{
			Username: "aling.nena",
			Password: "wrong-password",
		})
		assert.Error(t, err)
	}

	assert.Equal(t, identity.UserStatusLocked, user.Status)
	require.NotNil(t, user.LockedUntil)

	// Even the right password is refused while locked
	_, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "kanin-baboy-88",
	})
	assert.Error(t, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, assert.AnError)

	_, err := service.Login(context.Background(), LoginInput{
		Username: "ghost",
		Password: "whatever-123",
	})

	assert.Error(t, err)
	// Same error as a wrong password so usernames cannot be probed
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestLogin_DeactivatedUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	require.NoError(t, user.Deactivate())
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)

	_, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "kanin-baboy-88",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestRefreshToken_CarriesCurrentRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	login, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "kanin-baboy-88",
	})
	require.NoError(t, err)

	// Promote the user between login and refresh
	require.NoError(t, user.ChangeRole(identity.RoleExecutive))
	user.ClearDomainEvents()

	result, err := service.RefreshToken(context.Background(), RefreshTokenInput{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}).ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Executive", claims.Role)
}

func TestRefreshToken_RejectedAfterLogoutAllSessions(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByUsername", mock.Anything, "aling.nena").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	login, err := service.Login(context.Background(), LoginInput{
		Username: "aling.nena",
		Password: "kanin-baboy-88",
	})
	require.NoError(t, err)

	err = service.Logout(context.Background(), LogoutInput{
		UserID:      user.ID,
		AllSessions: true,
	})
	require.NoError(t, err)

	_, err = service.RefreshToken(context.Background(), RefreshTokenInput{
		RefreshToken: login.RefreshToken,
	})
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestAuthService(userRepo)

	user := newActiveUser(t, "kanin-baboy-88")
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	err := service.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "kanin-baboy-88",
		NewPassword: "bagong-sikreto-99",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("bagong-sikreto-99"))
	assert.False(t, user.VerifyPassword("kanin-baboy-88"))
}
