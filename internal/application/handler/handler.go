package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"komek/internal/application"
	"komek/internal/decisionprotocol"
	"komek/internal/workflow"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
	"komek/pkg/platform/httputil"
	"komek/pkg/requestcontext"
)

// Engine defines the workflow operations the handler delegates to.
type Engine interface {
	Execute(ctx context.Context, req workflow.ExecuteRequest) (*workflow.ExecuteResult, error)
}

// Reader defines the read-side operations.
type Reader interface {
	FindByID(ctx context.Context, appID id.ApplicationID) (*application.Application, error)
	ListByStatus(ctx context.Context, status application.Status) ([]*application.Application, error)
}

// ProtocolReader lists decision protocols for an application.
type ProtocolReader interface {
	ListByApplication(ctx context.Context, appID id.ApplicationID) ([]decisionprotocol.Protocol, error)
}

// ViewRecorder records reads of sensitive data in the ledger.
type ViewRecorder interface {
	LogView(ctx context.Context, entityType, entityID string) error
}

// Handler wires application endpoints to the workflow engine and stores.
type Handler struct {
	engine    Engine
	reader    Reader
	protocols ProtocolReader
	views     ViewRecorder
	logger    *slog.Logger
}

// New constructs an application handler with its dependencies.
func New(engine Engine, reader Reader, protocols ProtocolReader, views ViewRecorder, logger *slog.Logger) *Handler {
	return &Handler{
		engine:    engine,
		reader:    reader,
		protocols: protocols,
		views:     views,
		logger:    logger,
	}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications", h.HandleCreate)
	r.Get("/applications", h.HandleList)
	r.Get("/applications/{applicationID}", h.HandleGet)
	r.Post("/applications/{applicationID}/actions", h.HandleExecuteAction)
	r.Get("/applications/{applicationID}/protocols", h.HandleListProtocols)
}

func (h *Handler) actor(w http.ResponseWriter, ctx context.Context) (id.UserID, workflow.Role, bool) {
	userID := requestcontext.UserID(ctx)
	if userID == (id.UserID{}) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return id.UserID{}, "", false
	}
	role, err := workflow.ParseRole(requestcontext.Role(ctx))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "unknown role"))
		return id.UserID{}, "", false
	}
	return userID, role, true
}

// HandleCreate handles POST /applications requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, role, ok := h.actor(w, ctx)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateApplicationRequest](w, r, h.logger)
	if !ok {
		return
	}

	newApp := &application.Application{
		ID:          id.NewApplicationID(),
		Applicant:   req.ParsedApplicant(),
		RegionCoeff: req.RegionCoeff,
		AddCoeff:    req.AddCoeff,
		BorderArea:  req.BorderArea,
	}
	for _, m := range req.Family {
		newApp.Family = append(newApp.Family, m.toDomain())
	}
	for _, in := range req.Incomes {
		newApp.Incomes = append(newApp.Incomes, in.toDomain())
	}
	for _, l := range req.Land {
		newApp.Land = append(newApp.Land, l.toDomain())
	}
	for _, l := range req.Livestock {
		newApp.Livestock = append(newApp.Livestock, l.toDomain())
	}
	for _, v := range req.Vehicles {
		newApp.Vehicles = append(newApp.Vehicles, v.toDomain())
	}

	result, err := h.engine.Execute(ctx, workflow.ExecuteRequest{
		Actor:  userID,
		Role:   role,
		Action: workflow.ActionCreateApplication,
		New:    newApp,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "application creation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "application created",
		"request_id", requestcontext.RequestID(ctx),
		"application_id", newApp.ID.String(),
	)
	httputil.WriteJSON(w, http.StatusCreated, &ExecuteActionResponse{
		Status: string(result.Status),
		Event:  result.Event,
	})
}

// HandleGet handles GET /applications/{applicationID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, _, ok := h.actor(w, ctx); !ok {
		return
	}

	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	app, err := h.reader.FindByID(ctx, appID)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "application not found"))
		return
	}

	// Reading an application exposes personal data; the ledger keeps a trace.
	if err := h.views.LogView(ctx, "application", appID.String()); err != nil {
		h.logger.ErrorContext(ctx, "failed to record view",
			"request_id", requestcontext.RequestID(ctx),
			"application_id", appID.String(),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to record view", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromApplication(app))
}

// HandleList handles GET /applications?status=X requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, _, ok := h.actor(w, ctx); !ok {
		return
	}

	status, err := application.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	apps, err := h.reader.ListByStatus(ctx, status)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to list applications", err))
		return
	}

	responses := make([]*ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, FromApplication(app))
	}
	httputil.WriteJSON(w, http.StatusOK, responses)
}

// HandleExecuteAction handles POST /applications/{applicationID}/actions requests.
func (h *Handler) HandleExecuteAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	userID, role, ok := h.actor(w, ctx)
	if !ok {
		return
	}

	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[ExecuteActionRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.engine.Execute(ctx, workflow.ExecuteRequest{
		Actor:         userID,
		Role:          role,
		Action:        req.ParsedAction(),
		ApplicationID: appID,
		Changes:       req.ParsedChanges(),
		Protocol:      req.ParsedProtocol(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "workflow action rejected",
			"request_id", requestcontext.RequestID(ctx),
			"application_id", appID.String(),
			"action", req.Action,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "workflow action executed",
		"request_id", requestcontext.RequestID(ctx),
		"application_id", appID.String(),
		"action", req.Action,
		"status", string(result.Status),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	resp := &ExecuteActionResponse{
		Status: string(result.Status),
		Event:  result.Event,
	}
	if result.Evaluation != nil {
		resp.Evaluation = FromEvaluation(result.Evaluation)
	}
	if result.Protocol != nil {
		p := FromProtocol(*result.Protocol)
		resp.Protocol = &p
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleListProtocols handles GET /applications/{applicationID}/protocols requests.
func (h *Handler) HandleListProtocols(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, _, ok := h.actor(w, ctx); !ok {
		return
	}

	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	protocols, err := h.protocols.ListByApplication(ctx, appID)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to list protocols", err))
		return
	}

	responses := make([]ProtocolResponse, 0, len(protocols))
	for _, p := range protocols {
		responses = append(responses, FromProtocol(p))
	}
	httputil.WriteJSON(w, http.StatusOK, responses)
}
