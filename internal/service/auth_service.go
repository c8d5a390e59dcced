package service

import (
	"context"
	"crypto/subtle"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, login, password string) (string, error)
}

type authService struct {
	login        string
	passwordHash []byte
	secretKey    string
}

// NewAuthService checks console credentials against one configured admin login and bcrypt hash.
func NewAuthService(login, passwordHash, secretKey string) AuthService {
	return &authService{
		login:        login,
		passwordHash: []byte(passwordHash),
		secretKey:    secretKey,
	}
}

func (s *authService) Login(_ context.Context, login, password string) (string, error) {
	if len(s.passwordHash) == 0 || s.secretKey == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(login), []byte(s.login)) != 1 {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return middleware.IssueToken(s.secretKey, login)
}
