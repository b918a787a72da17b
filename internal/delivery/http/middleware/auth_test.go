package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	subject string
	err     error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		verifier    domain.TokenVerifier
		wantStatus  int
		nextCalled  bool
		wantSubject string
	}{
		{
			name:        "valid token sets subject and calls next",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeTokenVerifier{subject: "admin"},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantSubject: "admin",
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer   ",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verifier rejects token",
			authHeader: "Bearer expired",
			verifier:   &fakeTokenVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotSubject string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSubject, _ = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAuth(tt.verifier)(next)
			req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantSubject, gotSubject)
			}
		})
	}
}

func TestSubjectFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SubjectFromContext(req.Context())
	assert.False(t, ok)

	ctx := SetSubject(req.Context(), "admin")
	subject, ok := SubjectFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", subject)
}
