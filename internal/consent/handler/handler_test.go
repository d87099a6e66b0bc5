package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"komek/internal/consent"
	id "komek/pkg/domain"
	"komek/pkg/testutil"
)

func newFixture(t *testing.T) chi.Router {
	t.Helper()
	svc := consent.NewService(consent.NewInMemoryStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	New(svc, logger).Register(router)
	return router
}

func TestHandleGrant(t *testing.T) {
	t.Run("grants and returns the records", func(t *testing.T) {
		router := newFixture(t)
		applicantID := id.NewApplicantID()

		body := map[string]any{
			"purposes":    []string{"data_processing", "registry_check"},
			"ttl_seconds": 3600,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/applicants/"+applicantID.String()+"/consents", body)
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp []RecordResponse
		testutil.UnmarshalResponse(t, rr, &resp)
		require.Len(t, resp, 2)
		assert.Equal(t, applicantID.String(), resp[0].ApplicantID)
		assert.Equal(t, "data_processing", resp[0].Purpose)
		assert.False(t, resp[0].ExpiresAt.IsZero())
	})

	t.Run("rejects unknown purposes", func(t *testing.T) {
		router := newFixture(t)
		body := map[string]any{"purposes": []string{"telemetry"}, "ttl_seconds": 3600}
		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/applicants/"+id.NewApplicantID().String()+"/consents", body)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a non-positive TTL", func(t *testing.T) {
		router := newFixture(t)
		body := map[string]any{"purposes": []string{"data_processing"}, "ttl_seconds": 0}
		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/applicants/"+id.NewApplicantID().String()+"/consents", body)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a malformed applicant ID", func(t *testing.T) {
		router := newFixture(t)
		body := map[string]any{"purposes": []string{"data_processing"}, "ttl_seconds": 3600}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/applicants/abc/consents", body)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleListAndRevoke(t *testing.T) {
	router := newFixture(t)
	applicantID := id.NewApplicantID()

	grantBody := map[string]any{
		"purposes":    []string{"data_processing", "registry_check"},
		"ttl_seconds": 3600,
	}
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
		"/applicants/"+applicantID.String()+"/consents", grantBody))
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("revoke returns no content", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodDelete,
			"/applicants/"+applicantID.String()+"/consents/registry_check")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("revoked record shows in the list", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet,
			"/applicants/"+applicantID.String()+"/consents")
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp []RecordResponse
		testutil.UnmarshalResponse(t, rr, &resp)
		require.Len(t, resp, 2)

		for _, rec := range resp {
			if rec.Purpose == "registry_check" {
				assert.NotNil(t, rec.RevokedAt)
			} else {
				assert.Nil(t, rec.RevokedAt)
			}
		}
	})

	t.Run("revoking an unknown purpose is a 400", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodDelete,
			"/applicants/"+applicantID.String()+"/consents/telemetry")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
