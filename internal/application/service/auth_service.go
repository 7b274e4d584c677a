package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/auth"
)

// AuthService signs register terminals in with the shared store PIN. There
// are no user accounts; the cashier name travels in the token purely so
// receipts can print it.
type AuthService struct {
	pinHash    string
	jwtManager *auth.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(pinHash string, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		pinHash:    pinHash,
		jwtManager: jwtManager,
	}
}

// SignIn verifies the PIN and issues a terminal token.
func (s *AuthService) SignIn(ctx context.Context, terminalID, cashier, pin string) (string, error) {
	if terminalID == "" {
		return "", apperror.NewBadRequestError("Terminal id is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateTerminalToken(terminalID, cashier)
	if err != nil {
		return "", apperror.ErrInternalServer
	}
	return token, nil
}
