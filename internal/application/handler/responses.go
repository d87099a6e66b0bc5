package handler

import (
	"time"

	"komek/internal/analysis"
	"komek/internal/application"
	"komek/internal/decisionprotocol"
	"komek/internal/eligibility"
)

// ApplicationResponse is the HTTP representation of an application.
type ApplicationResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	ApplicantPIN string     `json:"applicant_pin"`
	FullName     string     `json:"full_name"`
	FamilySize   int        `json:"family_size"`
	RegionCoeff  float64    `json:"region_coeff"`
	AddCoeff     float64    `json:"add_coeff"`
	BorderArea   bool       `json:"border_area"`
	BenefitUntil *time.Time `json:"benefit_until,omitempty"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FromApplication converts an application to its HTTP representation.
func FromApplication(app *application.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:           app.ID.String(),
		Status:       string(app.Status),
		ApplicantPIN: app.Applicant.PIN,
		FullName:     app.Applicant.FullName,
		FamilySize:   app.FamilySize(),
		RegionCoeff:  app.RegionCoeff,
		AddCoeff:     app.AddCoeff,
		BorderArea:   app.BorderArea,
		CreatedBy:    app.CreatedBy.String(),
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
	if !app.BenefitUntil.IsZero() {
		until := app.BenefitUntil
		resp.BenefitUntil = &until
	}
	return resp
}

// MetricsResponse is the household-metrics portion of an evaluation.
type MetricsResponse struct {
	TotalMonthlyIncome float64 `json:"total_monthly_income"`
	PerCapitaIncome    float64 `json:"per_capita_income"`
	ConventionalUnits  float64 `json:"conventional_units"`
	GMIThreshold       float64 `json:"gmi_threshold"`
	IncomeEligible     bool    `json:"income_eligible"`
	PropertyEligible   bool    `json:"property_eligible"`
	FamilyEligible     bool    `json:"family_eligible"`
	VehicleEligible    bool    `json:"vehicle_eligible"`
	Eligible           bool    `json:"eligible"`
}

// EvaluationResponse is the HTTP representation of an evaluation run.
type EvaluationResponse struct {
	Valid           bool            `json:"valid"`
	ValidationError string          `json:"validation_error,omitempty"`
	Metrics         MetricsResponse `json:"metrics"`
	Analysis        analysis.Result `json:"analysis"`
	BenefitAmount   float64         `json:"benefit_amount"`
	EvaluatedAt     time.Time       `json:"evaluated_at"`
}

// FromEvaluation converts an evaluation to its HTTP representation.
func FromEvaluation(eval *eligibility.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		Valid:           eval.Validation.IsValid,
		ValidationError: eval.Validation.Error,
		Metrics: MetricsResponse{
			TotalMonthlyIncome: eval.Metrics.TotalMonthlyIncome,
			PerCapitaIncome:    eval.Metrics.PerCapitaIncome,
			ConventionalUnits:  eval.Metrics.ConventionalUnits,
			GMIThreshold:       eval.Metrics.GMIThreshold,
			IncomeEligible:     eval.Metrics.IncomeEligible,
			PropertyEligible:   eval.Metrics.PropertyEligible,
			FamilyEligible:     eval.Metrics.FamilyEligible,
			VehicleEligible:    eval.Metrics.VehicleEligible,
			Eligible:           eval.Metrics.Eligible(),
		},
		Analysis:      eval.Analysis,
		BenefitAmount: eval.BenefitAmount,
		EvaluatedAt:   eval.EvaluatedAt,
	}
}

// ProtocolResponse is the HTTP representation of a decision protocol.
type ProtocolResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Decision      string    `json:"decision"`
	DecidedBy     string    `json:"decided_by"`
	Responsible   string    `json:"responsible"`
	Position      string    `json:"position"`
	Reason        string    `json:"reason"`
	LegalBasis    string    `json:"legal_basis"`
	DecidedAt     time.Time `json:"decided_at"`
}

// FromProtocol converts a decision protocol to its HTTP representation.
func FromProtocol(p decisionprotocol.Protocol) ProtocolResponse {
	return ProtocolResponse{
		ID:            p.ID.String(),
		ApplicationID: p.ApplicationID.String(),
		Decision:      string(p.Decision),
		DecidedBy:     p.DecidedBy.String(),
		Responsible:   p.Responsible,
		Position:      p.Position,
		Reason:        p.Reason,
		LegalBasis:    p.LegalBasis,
		DecidedAt:     p.DecidedAt,
	}
}

// ExecuteActionResponse is the HTTP response for an executed action.
type ExecuteActionResponse struct {
	Status     string              `json:"status"`
	Event      string              `json:"event"`
	Evaluation *EvaluationResponse `json:"evaluation,omitempty"`
	Protocol   *ProtocolResponse   `json:"protocol,omitempty"`
}
