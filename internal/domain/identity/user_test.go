package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Maricel.Reyes", "s3cret-pass", RoleManager)
	require.NoError(t, err)

	assert.Equal(t, "maricel.reyes", user.Username)
	assert.Equal(t, RoleManager, user.Role)
	assert.Equal(t, UserStatusActive, user.Status)
	assert.True(t, user.VerifyPassword("s3cret-pass"))
	assert.False(t, user.VerifyPassword("wrong"))
	assert.Len(t, user.GetDomainEvents(), 1)
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     Role
	}{
		{"empty username", "", "password123", RoleAdmin},
		{"short username", "ab", "password123", RoleAdmin},
		{"bad characters", "user name", "password123", RoleAdmin},
		{"short password", "validuser", "short", RoleAdmin},
		{"unknown role", "validuser", "password123", Role("janitor")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.password, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestChangePassword(t *testing.T) {
	user, err := NewUser("cashier1", "original-pw", RoleFinanceHead)
	require.NoError(t, err)

	err = user.ChangePassword("wrong-pw", "next-password")
	assert.Error(t, err)

	err = user.ChangePassword("original-pw", "next-password")
	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("next-password"))
	assert.False(t, user.VerifyPassword("original-pw"))
}

func TestFailedLoginLockout(t *testing.T) {
	user, err := NewUser("lockme", "password123", RoleManager)
	require.NoError(t, err)

	for i := 0; i < maxFailedAttempts-1; i++ {
		user.RecordFailedLogin()
		assert.Equal(t, UserStatusActive, user.Status)
	}

	user.RecordFailedLogin()
	assert.Equal(t, UserStatusLocked, user.Status)
	require.NotNil(t, user.LockedUntil)
	assert.False(t, user.CanLogin(time.Now()))
	assert.True(t, user.CanLogin(user.LockedUntil.Add(time.Minute)))

	user.Unlock()
	assert.Equal(t, UserStatusActive, user.Status)
	assert.Zero(t, user.FailedAttempts)
}

func TestDeactivateReactivate(t *testing.T) {
	user, err := NewUser("seasonal", "password123", RoleMarketMaster)
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.Equal(t, UserStatusDeactivated, user.Status)
	assert.False(t, user.CanLogin(time.Now()))
	assert.Error(t, user.Deactivate())

	require.NoError(t, user.Reactivate())
	assert.Equal(t, UserStatusActive, user.Status)
	assert.Error(t, user.Reactivate())
}

func TestChangeRole(t *testing.T) {
	user, err := NewUser("promoteme", "password123", RoleManager)
	require.NoError(t, err)

	require.NoError(t, user.ChangeRole(RoleExecutive))
	assert.Equal(t, RoleExecutive, user.Role)

	assert.Error(t, user.ChangeRole(Role("")))
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range AllRoles() {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Role("visitor").IsValid())
}
