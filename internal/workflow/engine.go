package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	anlcache "komek/internal/analysis/cache"
	"komek/internal/application"
	"komek/internal/audit"
	"komek/internal/decisionprotocol"
	"komek/internal/domain"
	"komek/internal/eligibility"
	"komek/internal/validation"
	"komek/internal/workflow/metrics"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
	"komek/pkg/platform/sentinel"
	"komek/pkg/requestcontext"
)

// Evaluator supplies the eligibility outcome preconditions depend on.
type Evaluator interface {
	Evaluate(ctx context.Context, app *application.Application) (*eligibility.Evaluation, error)
}

// ProtocolRecorder persists formal decision protocols.
type ProtocolRecorder interface {
	Record(ctx context.Context, protocol decisionprotocol.Protocol) (decisionprotocol.Protocol, error)
}

// Engine resolves and executes workflow actions. It owns Application status:
// a successful Execute is the only path that advances it, and every success
// is written to the ledger before being reported.
type Engine struct {
	apps      application.Store
	recorder  *audit.Recorder
	protocols ProtocolRecorder
	evaluator Evaluator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	cache     *anlcache.Cache
}

func NewEngine(apps application.Store, recorder *audit.Recorder, protocols ProtocolRecorder, evaluator Evaluator, logger *slog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		apps:      apps,
		recorder:  recorder,
		protocols: protocols,
		evaluator: evaluator,
		logger:    logger,
		metrics:   m,
	}
}

// WithCache attaches the analysis cache so data changes invalidate stale
// classification results. A nil cache is a no-op.
func (e *Engine) WithCache(cache *anlcache.Cache) *Engine {
	e.cache = cache
	return e
}

// ProtocolDetails carries the formal-decision fields for director actions.
type ProtocolDetails struct {
	Responsible string
	Position    string
	Reason      string
	LegalBasis  string
}

// ApplicationChanges holds replacement data for the manage/update actions.
// Nil fields stay untouched; set fields replace the stored collection and
// produce one ledger entry per changed field.
type ApplicationChanges struct {
	Applicant   *domain.Applicant
	Incomes     *[]domain.Income
	Family      *[]domain.FamilyMember
	Land        *[]domain.LandPlot
	Livestock   *[]domain.Livestock
	Vehicles    *[]domain.Vehicle
	RegionCoeff *float64
	AddCoeff    *float64
	BorderArea  *bool
}

// ExecuteRequest describes one attempted action.
type ExecuteRequest struct {
	Actor         id.UserID
	Role          Role
	Action        ActionType
	ApplicationID id.ApplicationID
	// New is required for CREATE_APPLICATION and ignored otherwise.
	New *application.Application
	// Changes is honored by the update/manage actions.
	Changes *ApplicationChanges
	// Protocol is required for actions that record a formal decision.
	Protocol *ProtocolDetails
}

// ExecuteResult reports a successful execution.
type ExecuteResult struct {
	Status     application.Status
	Event      string
	Evaluation *eligibility.Evaluation
	Protocol   *decisionprotocol.Protocol
}

// Execute runs permission, precondition and transition checks before any
// mutation; a failed check leaves every entity untouched and writes
// nothing. On success the status change (if any), the protocol (if any)
// and the ledger entries are all recorded before the result is returned.
func (e *Engine) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error) {
	def, known := actionDefinitions[req.Action]
	if !known {
		e.metrics.IncrementExecutions(string(req.Action), "invalid")
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown action type")
	}

	if !CanPerform(req.Role, req.Action) {
		e.metrics.IncrementExecutions(string(req.Action), "forbidden")
		return nil, dErrors.New(dErrors.CodeForbidden,
			"role "+string(req.Role)+" is not permitted to perform "+string(req.Action))
	}

	if req.Action == ActionCreateApplication {
		return e.executeCreate(ctx, req, def)
	}

	app, err := e.apps.FindByID(ctx, req.ApplicationID)
	if err != nil {
		e.metrics.IncrementExecutions(string(req.Action), "error")
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load application", err)
	}

	in := preconditionInput{app: app}
	if def.needsEvaluation {
		eval, err := e.evaluator.Evaluate(ctx, app)
		if err != nil {
			e.metrics.IncrementExecutions(string(req.Action), "error")
			return nil, err
		}
		in.eval = eval
	}

	if def.precondition != nil {
		if err := def.precondition(in); err != nil {
			e.metrics.IncrementExecutions(string(req.Action), "precondition_failed")
			return nil, err
		}
	}

	if def.target != nil {
		if err := app.CanMoveTo(*def.target); err != nil {
			e.metrics.IncrementExecutions(string(req.Action), "invalid_transition")
			return nil, err
		}
	}

	// Build the protocol before mutating anything so an incomplete formal
	// decision fails the whole execution up front.
	var protocol *decisionprotocol.Protocol
	if def.decision != "" {
		built, err := e.buildProtocol(ctx, req, def.decision)
		if err != nil {
			e.metrics.IncrementExecutions(string(req.Action), "invalid_protocol")
			return nil, err
		}
		protocol = &built
	}

	now := requestcontext.Now(ctx)
	oldStatus := app.Status
	oldBenefitUntil := app.BenefitUntil

	changed, err := applyChanges(app, req.Changes)
	if err != nil {
		e.metrics.IncrementExecutions(string(req.Action), "invalid_changes")
		return nil, err
	}
	dataChanged := len(changed.new) > 0
	if def.apply != nil {
		def.apply(app, now)
		// Apply-driven mutations go through the same per-field ledger
		// contract as caller-supplied changes.
		if !app.BenefitUntil.Equal(oldBenefitUntil) {
			changed.set("benefit_until", renderTime(oldBenefitUntil), renderTime(app.BenefitUntil))
		}
	}
	if def.target != nil {
		app.ApplyMove(*def.target, now)
	} else if def.apply != nil || dataChanged {
		app.UpdatedAt = now
	}

	if err := e.apps.Update(ctx, app); err != nil {
		e.metrics.IncrementExecutions(string(req.Action), "error")
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to store application", err)
	}

	if dataChanged {
		if err := e.cache.Invalidate(ctx, app.ID); err != nil {
			e.logger.WarnContext(ctx, "failed to invalidate analysis cache",
				"application_id", app.ID.String(),
				"error", err,
			)
		}
	}

	if protocol != nil {
		recorded, err := e.protocols.Record(ctx, *protocol)
		if err != nil {
			e.metrics.IncrementExecutions(string(req.Action), "error")
			return nil, err
		}
		protocol = &recorded
	}

	// Ledger writes are part of the execution: failing to record means the
	// action is not complete.
	if len(changed.new) > 0 {
		if err := e.recorder.LogUpdate(ctx, "application", app.ID.String(), changed.old, changed.new); err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to record field changes", err)
		}
	}
	if def.target != nil {
		if err := e.recorder.LogStatusChange(ctx, "application", app.ID.String(),
			string(oldStatus), string(app.Status), def.event); err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to record transition", err)
		}
	}

	e.metrics.IncrementExecutions(string(req.Action), "success")
	if def.target != nil {
		e.metrics.IncrementTransitions(string(oldStatus), string(app.Status))
	}
	e.logger.InfoContext(ctx, "workflow action executed",
		"action", string(req.Action),
		"role", string(req.Role),
		"application_id", app.ID.String(),
		"status", string(app.Status),
		"event", def.event,
	)

	return &ExecuteResult{
		Status:     app.Status,
		Event:      def.event,
		Evaluation: in.eval,
		Protocol:   protocol,
	}, nil
}

func (e *Engine) executeCreate(ctx context.Context, req ExecuteRequest, def definition) (*ExecuteResult, error) {
	if req.New == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "CREATE_APPLICATION requires application data")
	}
	now := requestcontext.Now(ctx)
	app := application.New(req.New.ID, req.New.Applicant, req.Actor, now)
	app.Family = req.New.Family
	app.Incomes = req.New.Incomes
	app.Land = req.New.Land
	app.Livestock = req.New.Livestock
	app.Vehicles = req.New.Vehicles
	app.Consents = req.New.Consents
	app.RegionCoeff = req.New.RegionCoeff
	app.AddCoeff = req.New.AddCoeff
	app.BorderArea = req.New.BorderArea

	if err := e.apps.Create(ctx, app); err != nil {
		e.metrics.IncrementExecutions(string(req.Action), "error")
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "application already exists")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to create application", err)
	}
	if err := e.recorder.LogCreate(ctx, "application", app.ID.String(), map[string]string{
		"status":    string(app.Status),
		"applicant": app.Applicant.FullName,
		"pin":       app.Applicant.PIN,
	}); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to record creation", err)
	}

	e.metrics.IncrementExecutions(string(req.Action), "success")
	e.logger.InfoContext(ctx, "application created",
		"application_id", app.ID.String(),
		"created_by", req.Actor.String(),
	)
	return &ExecuteResult{Status: app.Status, Event: def.event}, nil
}

func (e *Engine) buildProtocol(ctx context.Context, req ExecuteRequest, decision decisionprotocol.Decision) (decisionprotocol.Protocol, error) {
	if req.Protocol == nil {
		return decisionprotocol.Protocol{}, dErrors.New(dErrors.CodeInvalidInput,
			"action "+string(req.Action)+" requires a decision protocol")
	}
	p := decisionprotocol.Protocol{
		ApplicationID: req.ApplicationID,
		Decision:      decision,
		DecidedBy:     req.Actor,
		Responsible:   req.Protocol.Responsible,
		Position:      req.Protocol.Position,
		Reason:        req.Protocol.Reason,
		LegalBasis:    req.Protocol.LegalBasis,
		DecidedAt:     requestcontext.Now(ctx),
	}
	if err := p.Validate(); err != nil {
		return decisionprotocol.Protocol{}, err
	}
	return p, nil
}

// fieldDiff collects rendered before/after values for the ledger.
type fieldDiff struct {
	old map[string]string
	new map[string]string
}

// set records one field change; identical values produce nothing.
func (d *fieldDiff) set(field, oldValue, newValue string) {
	if oldValue == newValue {
		return
	}
	d.old[field] = oldValue
	d.new[field] = newValue
}

func renderJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func renderTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// applyChanges replaces set fields on the application and renders a
// per-field diff. The returned diff only carries fields whose rendered
// value actually changed.
func applyChanges(app *application.Application, changes *ApplicationChanges) (fieldDiff, error) {
	diff := fieldDiff{old: map[string]string{}, new: map[string]string{}}
	if changes == nil {
		return diff, nil
	}

	record := diff.set

	if changes.Applicant != nil {
		record("applicant", renderJSON(app.Applicant), renderJSON(*changes.Applicant))
		app.Applicant = *changes.Applicant
	}
	if changes.Incomes != nil {
		record("incomes", renderJSON(app.Incomes), renderJSON(*changes.Incomes))
		app.Incomes = *changes.Incomes
	}
	if changes.Family != nil {
		record("family", renderJSON(app.Family), renderJSON(*changes.Family))
		app.Family = *changes.Family
	}
	if changes.Land != nil {
		record("land", renderJSON(app.Land), renderJSON(*changes.Land))
		app.Land = *changes.Land
	}
	if changes.Livestock != nil {
		record("livestock", renderJSON(app.Livestock), renderJSON(*changes.Livestock))
		app.Livestock = *changes.Livestock
	}
	if changes.Vehicles != nil {
		record("vehicles", renderJSON(app.Vehicles), renderJSON(*changes.Vehicles))
		app.Vehicles = *changes.Vehicles
	}
	if changes.RegionCoeff != nil {
		record("region_coeff", strconv.FormatFloat(app.RegionCoeff, 'f', -1, 64), strconv.FormatFloat(*changes.RegionCoeff, 'f', -1, 64))
		app.RegionCoeff = *changes.RegionCoeff
	}
	if changes.AddCoeff != nil {
		record("add_coeff", strconv.FormatFloat(app.AddCoeff, 'f', -1, 64), strconv.FormatFloat(*changes.AddCoeff, 'f', -1, 64))
		app.AddCoeff = *changes.AddCoeff
	}
	if changes.BorderArea != nil {
		record("border_area", strconv.FormatBool(app.BorderArea), strconv.FormatBool(*changes.BorderArea))
		app.BorderArea = *changes.BorderArea
	}
	if changes.RegionCoeff != nil || changes.AddCoeff != nil {
		if r := validation.CheckCoefficients(app.RegionCoeff, app.AddCoeff); !r.IsValid {
			return fieldDiff{old: map[string]string{}, new: map[string]string{}},
				dErrors.New(dErrors.CodeValidation, r.Error)
		}
	}
	return diff, nil
}
