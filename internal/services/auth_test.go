package services

import (
	"context"
	"fmt"
	"testing"

	"eventdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hashed:" + salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash == "hashed:"+salt+":"+password {
		return nil
	}
	return fmt.Errorf("mismatch")
}

type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(subject, email string, roles []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	admin := AdminCredentials{
		Email:        "admin@example.com",
		Salt:         "salt",
		PasswordHash: "hashed:salt:s3cret",
	}

	t.Run("success", func(t *testing.T) {
		svc := NewAuthService(admin, fakeHasher{}, fakeIssuer{})
		token, err := svc.Login(ctx, "admin@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "token-for-admin", token)
	})

	t.Run("email compare is case insensitive", func(t *testing.T) {
		svc := NewAuthService(admin, fakeHasher{}, fakeIssuer{})
		_, err := svc.Login(ctx, "  Admin@Example.COM ", "s3cret")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(admin, fakeHasher{}, fakeIssuer{})
		_, err := svc.Login(ctx, "admin@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong email", func(t *testing.T) {
		svc := NewAuthService(admin, fakeHasher{}, fakeIssuer{})
		_, err := svc.Login(ctx, "someone@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unconfigured admin always fails", func(t *testing.T) {
		svc := NewAuthService(AdminCredentials{}, fakeHasher{}, fakeIssuer{})
		_, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("issuer failure surfaces", func(t *testing.T) {
		svc := NewAuthService(admin, fakeHasher{}, fakeIssuer{err: fmt.Errorf("no key")})
		_, err := svc.Login(ctx, "admin@example.com", "s3cret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
