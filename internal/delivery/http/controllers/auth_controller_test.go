package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	login func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func postLogin(t *testing.T, controller *AuthController, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	controller.Login(rec, req)
	return rec
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success returns token", func(t *testing.T) {
		svc := &stubAuthService{
			login: func(_ context.Context, email, password string) (string, error) {
				require.Equal(t, "admin@example.com", email)
				require.Equal(t, "s3cret", password)
				return "tok-123", nil
			},
		}
		controller := NewAuthController(testLogger, svc)

		rec := postLogin(t, controller, map[string]any{"email": "admin@example.com", "password": "s3cret"})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Login successful", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "tok-123", data["token"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &stubAuthService{
			login: func(_ context.Context, _, _ string) (string, error) {
				return "", domain.ErrInvalidCredentials
			},
		}
		controller := NewAuthController(testLogger, svc)

		rec := postLogin(t, controller, map[string]any{"email": "admin@example.com", "password": "wrong"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "invalid credentials", body["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		controller := NewAuthController(testLogger, &stubAuthService{})
		rec := postLogin(t, controller, map[string]any{"email": "admin@example.com"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
