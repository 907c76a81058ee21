package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)
	auth := f.authService()
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := auth.Login(ctx, "admin@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, f.admin.ID, user.ID)
		assert.NotEmpty(t, token)

		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, f.admin.ID, claims.UserID)
		assert.Equal(t, f.admin.Role, claims.Role)
		assert.Equal(t, f.admin.Country, claims.Country)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "admin@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "ghost@example.com", "password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	f := newFixture(t)
	auth := f.authService()

	token, err := auth.GenerateToken(f.memberIndia)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, f.memberIndia.ID, claims.UserID)

	_, err = auth.ValidateToken(token + "tampered")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// token signed with another secret is rejected
	other := NewAuthService(f.repos.Users, []byte("other-secret"), 0)
	foreign, err := other.GenerateToken(f.memberIndia)
	require.NoError(t, err)
	_, err = auth.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUser(t *testing.T) {
	f := newFixture(t)
	auth := f.authService()
	ctx := context.Background()

	user, err := auth.CurrentUser(ctx, f.managerUS.ID)
	require.NoError(t, err)
	assert.Equal(t, "manager.us@example.com", user.Email)

	_, err = auth.CurrentUser(ctx, "no-such-user")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
