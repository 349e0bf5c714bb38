package service

import (
	"context"
	"testing"
	"time"

	"liftlog/workout-app/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() AuthService {
	return NewAuthService(memory.NewUserRepository(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Sam", "sam@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")

	token, loggedIn, err := svc.Login(ctx, "sam@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Sam", "sam@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "sam@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Sam", "sam@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed, "unknown email and bad password are indistinguishable")
}
