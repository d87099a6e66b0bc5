// Package eligibility orchestrates a full evaluation run: structural
// validation, household metrics and income classification over one
// application snapshot. The pieces stay pure; this service wires them,
// records the calculation run in the ledger, and hands the combined outcome
// to the workflow engine as precondition input.
package eligibility

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"komek/internal/analysis"
	anlcache "komek/internal/analysis/cache"
	"komek/internal/application"
	"komek/internal/audit"
	"komek/internal/household"
	hmetrics "komek/internal/household/metrics"
	"komek/internal/validation"
	"komek/pkg/requestcontext"
)

// Config carries the benefit constants an evaluation needs.
type Config struct {
	GMI               float64 // guaranteed minimum income threshold
	BaseAmount        float64
	BorderBonus       float64
	ChildAgeLimit     int // validation threshold for "child" members
	DependentAgeLimit int // counting threshold for the benefit formula
}

// Evaluation is the combined outcome for one application snapshot.
type Evaluation struct {
	Validation    validation.Result
	Metrics       household.Metrics
	Analysis      analysis.Result
	BenefitAmount float64
	EvaluatedAt   time.Time
}

// ValidationPassed reports whether the structural checks succeeded.
func (e *Evaluation) ValidationPassed() bool { return e.Validation.IsValid }

// Eligible reports the overall household eligibility.
func (e *Evaluation) Eligible() bool { return e.Metrics.Eligible() }

// Service runs evaluations. Construct one per process and inject it into
// the workflow engine.
type Service struct {
	cfg      Config
	recorder *audit.Recorder
	logger   *slog.Logger
	metrics  *hmetrics.Metrics
	cache    *anlcache.Cache
}

func NewService(cfg Config, recorder *audit.Recorder, logger *slog.Logger, metrics *hmetrics.Metrics) *Service {
	return &Service{cfg: cfg, recorder: recorder, logger: logger, metrics: metrics}
}

// WithCache attaches an analysis result cache. A nil cache disables
// caching without changing behavior.
func (s *Service) WithCache(cache *anlcache.Cache) *Service {
	s.cache = cache
	return s
}

// validate runs every structural check and returns the first failure.
func (s *Service) validate(app *application.Application, now time.Time) (validation.Result, error) {
	if r, err := validation.ValidateApplicant(&app.Applicant, now); err != nil || !r.IsValid {
		return r, err
	}
	if r := validation.ValidateContacts(app.Applicant.Contacts); !r.IsValid {
		return r, nil
	}
	for _, addr := range app.Applicant.Addresses {
		if r := validation.ValidateAddress(addr); !r.IsValid {
			return r, nil
		}
	}
	for _, m := range app.Family {
		if r := validation.ValidateFamilyMember(m, now, s.cfg.ChildAgeLimit); !r.IsValid {
			return r, nil
		}
	}
	for _, in := range app.Incomes {
		if r := validation.ValidateIncome(in, now); !r.IsValid {
			return r, nil
		}
	}
	for _, p := range app.Land {
		if r := validation.ValidateLandPlot(p); !r.IsValid {
			return r, nil
		}
	}
	for _, l := range app.Livestock {
		if r := validation.ValidateLivestock(l); !r.IsValid {
			return r, nil
		}
	}
	for _, v := range app.Vehicles {
		if r := validation.ValidateVehicle(v, now); !r.IsValid {
			return r, nil
		}
	}
	if r := validation.CheckCoefficients(app.RegionCoeff, app.AddCoeff); !r.IsValid {
		return r, nil
	}
	if r := validation.ValidateConsents(app.Consents, now); !r.IsValid {
		return r, nil
	}
	return validation.Result{IsValid: true}, nil
}

// Evaluate runs validation, then the calculator and the classifier in
// parallel, and records the run in the ledger. Validation failure does not
// abort the run: metrics and analysis are still computed so callers can
// show the full picture, but the workflow treats the snapshot as invalid.
func (s *Service) Evaluate(ctx context.Context, app *application.Application) (*Evaluation, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	eval := &Evaluation{EvaluatedAt: now}

	result, err := s.validate(app, now)
	if err != nil {
		return nil, err
	}
	eval.Validation = result

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		eval.Metrics = household.Compute(
			app.Incomes, app.Livestock, app.Vehicles,
			app.FamilySize(), s.cfg.GMI, now,
		)
		return nil
	})
	g.Go(func() error {
		if cached, hit, err := s.cache.Get(ctx, app.ID); err == nil && hit {
			eval.Analysis = *cached
			return nil
		}
		eval.Analysis = analysis.Analyze(app, s.cfg.GMI)
		if err := s.cache.Set(ctx, app.ID, eval.Analysis); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "failed to cache analysis result",
				"application_id", app.ID.String(),
				"error", err,
			)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var borderBonus float64
	if app.BorderArea {
		borderBonus = s.cfg.BorderBonus
	}
	children := app.ChildrenCount(now, s.cfg.DependentAgeLimit)
	eval.BenefitAmount = household.BenefitAmount(
		s.cfg.BaseAmount, children, app.RegionCoeff, app.AddCoeff, borderBonus,
	)

	s.metrics.IncrementCalculations(eval.Eligible())
	s.metrics.ObserveCalculateLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "eligibility evaluated",
			"application_id", app.ID.String(),
			"valid", eval.Validation.IsValid,
			"eligible", eval.Eligible(),
			"per_capita_income", eval.Metrics.PerCapitaIncome,
			"benefit_amount", eval.BenefitAmount,
		)
	}

	if s.recorder != nil {
		summary := map[string]any{
			"valid":              eval.Validation.IsValid,
			"eligible":           eval.Eligible(),
			"totalMonthlyIncome": eval.Metrics.TotalMonthlyIncome,
			"perCapitaIncome":    eval.Metrics.PerCapitaIncome,
			"conventionalUnits":  eval.Metrics.ConventionalUnits,
			"benefitAmount":      eval.BenefitAmount,
		}
		if err := s.recorder.LogCalculation(ctx, app.ID.String(), summary); err != nil {
			return nil, err
		}
	}

	return eval, nil
}
