package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"komek/internal/consent"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
	"komek/pkg/platform/httputil"
	"komek/pkg/requestcontext"
)

// Service defines the consent operations the handler delegates to.
type Service interface {
	Grant(ctx context.Context, applicantID id.ApplicantID, purposes []consent.Purpose, ttl time.Duration) ([]consent.Record, error)
	Revoke(ctx context.Context, applicantID id.ApplicantID, purpose consent.Purpose) error
	List(ctx context.Context, applicantID id.ApplicantID) ([]consent.Record, error)
}

// Handler wires consent endpoints to the consent service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a consent handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts consent endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applicants/{applicantID}/consents", h.HandleGrant)
	r.Get("/applicants/{applicantID}/consents", h.HandleList)
	r.Delete("/applicants/{applicantID}/consents/{purpose}", h.HandleRevoke)
}

// GrantRequest is the HTTP request body for granting consents.
type GrantRequest struct {
	Purposes   []string `json:"purposes"`
	TTLSeconds int64    `json:"ttl_seconds"`

	parsedPurposes []consent.Purpose
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *GrantRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Purposes) == 0 {
		return dErrors.New(dErrors.CodeValidation, "purposes is required")
	}
	if r.TTLSeconds <= 0 {
		return dErrors.New(dErrors.CodeValidation, "ttl_seconds must be positive")
	}
	for _, raw := range r.Purposes {
		p := consent.Purpose(raw)
		if !p.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "invalid purpose: "+raw)
		}
		r.parsedPurposes = append(r.parsedPurposes, p)
	}
	return nil
}

// RecordResponse is the HTTP representation of one consent record.
type RecordResponse struct {
	ApplicantID string     `json:"applicant_id"`
	Purpose     string     `json:"purpose"`
	GrantedAt   time.Time  `json:"granted_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

func fromRecords(records []consent.Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, RecordResponse{
			ApplicantID: rec.ApplicantID.String(),
			Purpose:     string(rec.Purpose),
			GrantedAt:   rec.GrantedAt,
			ExpiresAt:   rec.ExpiresAt,
			RevokedAt:   rec.RevokedAt,
		})
	}
	return responses
}

func applicantIDParam(r *http.Request) (id.ApplicantID, error) {
	return id.ParseApplicantID(chi.URLParam(r, "applicantID"))
}

// HandleGrant handles POST /applicants/{applicantID}/consents requests.
func (h *Handler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicantID, err := applicantIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[GrantRequest](w, r, h.logger)
	if !ok {
		return
	}

	records, err := h.service.Grant(ctx, applicantID, req.parsedPurposes, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "consents granted",
		"request_id", requestcontext.RequestID(ctx),
		"applicant_id", applicantID.String(),
		"purposes", len(records),
	)
	httputil.WriteJSON(w, http.StatusCreated, fromRecords(records))
}

// HandleList handles GET /applicants/{applicantID}/consents requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	applicantID, err := applicantIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	records, err := h.service.List(r.Context(), applicantID)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to list consents", err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromRecords(records))
}

// HandleRevoke handles DELETE /applicants/{applicantID}/consents/{purpose} requests.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicantID, err := applicantIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	purpose := consent.Purpose(chi.URLParam(r, "purpose"))
	if !purpose.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid purpose"))
		return
	}

	if err := h.service.Revoke(ctx, applicantID, purpose); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "consent revoked",
		"request_id", requestcontext.RequestID(ctx),
		"applicant_id", applicantID.String(),
		"purpose", string(purpose),
	)
	w.WriteHeader(http.StatusNoContent)
}
