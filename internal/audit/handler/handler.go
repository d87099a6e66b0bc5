package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"komek/internal/audit"
	"komek/internal/workflow"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
	"komek/pkg/platform/httputil"
	"komek/pkg/requestcontext"
)

// Handler exposes the audit ledger to administrators. Reads of the
// ledger are themselves written back to it as VIEW entries.
type Handler struct {
	recorder *audit.Recorder
	logger   *slog.Logger
}

// New constructs an audit handler with its dependencies.
func New(recorder *audit.Recorder, logger *slog.Logger) *Handler {
	return &Handler{recorder: recorder, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.HandleList)
	r.Get("/audit/export", h.HandleExport)
}

func (h *Handler) authorize(w http.ResponseWriter, ctx context.Context, action workflow.ActionType) bool {
	if requestcontext.UserID(ctx) == (id.UserID{}) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return false
	}
	role, err := workflow.ParseRole(requestcontext.Role(ctx))
	if err != nil || !workflow.CanPerform(role, action) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden,
			"role is not permitted to access the audit log"))
		return false
	}
	return true
}

func filterFromQuery(r *http.Request) (audit.Filter, error) {
	q := r.URL.Query()
	filter := audit.Filter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
		Action:     audit.Action(q.Get("action")),
	}
	if raw := q.Get("actor_id"); raw != "" {
		actorID, err := id.ParseUserID(raw)
		if err != nil {
			return audit.Filter{}, err
		}
		filter.ActorID = actorID
	}
	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return audit.Filter{}, dErrors.New(dErrors.CodeBadRequest, "from must be RFC3339")
		}
		filter.From = from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return audit.Filter{}, dErrors.New(dErrors.CodeBadRequest, "to must be RFC3339")
		}
		filter.To = to
	}
	return filter, nil
}

// HandleList handles GET /audit requests with raw entries.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.authorize(w, ctx, workflow.ActionViewAuditLog) {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.recorder.List(ctx, filter)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to query ledger", err))
		return
	}

	if err := audit.LogAudit(ctx, h.logger, h.recorder, "audit_log.viewed",
		"entity_type", "audit_log",
		"detail", strconv.Itoa(len(entries))+" entries",
	); err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to record ledger access", err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromEntries(entries))
}

// HandleExport handles GET /audit/export requests. Exported entries have
// sensitive field values masked.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.authorize(w, ctx, workflow.ActionExportAuditLog) {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.recorder.Export(ctx, filter)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to export ledger", err))
		return
	}

	if err := audit.LogAudit(ctx, h.logger, h.recorder, "audit_log.exported",
		"entity_type", "audit_log",
		"detail", strconv.Itoa(len(entries))+" entries",
	); err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to record ledger access", err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromEntries(entries))
}
