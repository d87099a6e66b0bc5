package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"komek/pkg/requestcontext"
)

type stubValidator struct {
	claims *TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(_ string) (*TokenClaims, error) {
	return s.claims, s.err
}

func run(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	RequireAuth(validator, logger)(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token populates the context", func(t *testing.T) {
		validator := &stubValidator{claims: &TokenClaims{
			UserID: "3f2c8f9e-6f3b-4a8e-9f1e-0a1b2c3d4e5f",
			Role:   "SPECIALIST",
		}}

		rr, captured := run(t, validator, "Bearer some-token")
		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, captured)

		ctx := captured.Context()
		assert.Equal(t, "3f2c8f9e-6f3b-4a8e-9f1e-0a1b2c3d4e5f", requestcontext.UserID(ctx).String())
		assert.Equal(t, "SPECIALIST", requestcontext.Role(ctx))
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		rr, captured := run(t, &stubValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
		assert.Contains(t, rr.Body.String(), "unauthorized")
	})

	t.Run("non-bearer header is a 401", func(t *testing.T) {
		rr, captured := run(t, &stubValidator{}, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
	})

	t.Run("rejected token is a 401", func(t *testing.T) {
		validator := &stubValidator{err: errors.New("expired")}
		rr, captured := run(t, validator, "Bearer stale-token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
	})

	t.Run("malformed user id claim is a 401", func(t *testing.T) {
		validator := &stubValidator{claims: &TokenClaims{UserID: "not-a-uuid", Role: "ADMIN"}}
		rr, captured := run(t, validator, "Bearer some-token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
	})
}
