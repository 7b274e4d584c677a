package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateTerminalToken("register-1", "Jane")
	require.NoError(t, err)

	claims, err := m.ValidateTerminalToken(token)
	require.NoError(t, err)
	assert.Equal(t, "register-1", claims.TerminalID)
	assert.Equal(t, "Jane", claims.Cashier)
	assert.Equal(t, "register-1", claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateTerminalToken("register-1", "")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ValidateTerminalToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token, err := NewJWTManager("secret", -time.Minute).GenerateTerminalToken("register-1", "")
	require.NoError(t, err)

	_, err = NewJWTManager("secret", -time.Minute).ValidateTerminalToken(token)
	assert.Error(t, err)
}
