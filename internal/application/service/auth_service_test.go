package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/auth"
)

func newAuthService(t *testing.T, pin string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(string(hash), auth.NewJWTManager("test-secret", time.Hour))
}

func TestSignIn(t *testing.T) {
	svc := newAuthService(t, "4321")
	ctx := context.Background()

	token, err := svc.SignIn(ctx, "till-1", "Alex", "4321")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.NewJWTManager("test-secret", time.Hour).ValidateTerminalToken(token)
	require.NoError(t, err)
	assert.Equal(t, "till-1", claims.TerminalID)
	assert.Equal(t, "Alex", claims.Cashier)
}

func TestSignInWrongPIN(t *testing.T) {
	svc := newAuthService(t, "4321")

	_, err := svc.SignIn(context.Background(), "till-1", "", "0000")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestSignInRequiresTerminalID(t *testing.T) {
	svc := newAuthService(t, "4321")

	_, err := svc.SignIn(context.Background(), "", "", "4321")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
