package services

import (
	"context"
	"strings"

	"eventdeck/internal/domain"
)

// AdminCredentials is the single admin account this service authenticates
// against, loaded from configuration. PasswordHash is produced by
// domain.PasswordHasher over Salt and the plaintext password.
type AdminCredentials struct {
	Email        string
	Salt         string
	PasswordHash string
}

type authService struct {
	admin  AdminCredentials
	hasher domain.PasswordHasher
	issuer domain.TokenIssuer
}

// NewAuthService creates an AuthService for the configured admin account.
func NewAuthService(admin AdminCredentials, hasher domain.PasswordHasher, issuer domain.TokenIssuer) domain.AuthService {
	return &authService{
		admin:  admin,
		hasher: hasher,
		issuer: issuer,
	}
}

// Login verifies the admin credentials and returns a signed token. All
// failure modes collapse into ErrInvalidCredentials so the response does not
// reveal whether the email or the password was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if email != strings.ToLower(s.admin.Email) {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.admin.PasswordHash, s.admin.Salt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue("admin", email, []string{"admin"})
	if err != nil {
		return "", err
	}
	return token, nil
}
