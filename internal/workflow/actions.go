package workflow

import (
	"time"

	"komek/internal/application"
	"komek/internal/decisionprotocol"
	"komek/internal/eligibility"
	dErrors "komek/pkg/domain-errors"
)

// preconditionInput carries everything a precondition may inspect. The
// evaluation is computed lazily by the engine only for actions that declare
// needsEvaluation.
type preconditionInput struct {
	app  *application.Application
	eval *eligibility.Evaluation
}

// definition describes one action: its status effect, emitted event name,
// precondition, and whether it needs a formal decision protocol.
type definition struct {
	target          *application.Status // nil: no status change
	event           string
	needsEvaluation bool
	decision        decisionprotocol.Decision // zero: no protocol required
	precondition    func(in preconditionInput) error
	// apply mutates the loaded application beyond the status move; nil for
	// pure transitions.
	apply func(app *application.Application, now time.Time)
}

func status(s application.Status) *application.Status { return &s }

// Benefit periods granted on activation and extension.
const benefitPeriod = 12 * 30 * 24 * time.Hour

func mutableStatus(in preconditionInput) error {
	switch in.app.Status {
	case application.StatusDraft, application.StatusUnderReview:
		return nil
	}
	return dErrors.New(dErrors.CodeInvariantViolation, "application data can only change in DRAFT or UNDER_REVIEW")
}

func validationPassed(in preconditionInput) error {
	if in.eval == nil || !in.eval.ValidationPassed() {
		msg := "application data failed validation"
		if in.eval != nil && in.eval.Validation.Error != "" {
			msg = in.eval.Validation.Error
		}
		return dErrors.New(dErrors.CodeValidation, msg)
	}
	return nil
}

func householdEligible(in preconditionInput) error {
	if err := validationPassed(in); err != nil {
		return err
	}
	if !in.eval.Eligible() {
		return dErrors.New(dErrors.CodeInvariantViolation, "household does not meet benefit eligibility")
	}
	return nil
}

// actionDefinitions is the closed table driving Execute. Actions absent
// here (audit-log reads) never pass through the engine.
var actionDefinitions = map[ActionType]definition{
	ActionCreateApplication: {
		event: "application.created",
	},
	ActionUpdateApplication: {
		event:        "application.updated",
		precondition: mutableStatus,
	},
	ActionManageIncome: {
		event:        "application.income_changed",
		precondition: mutableStatus,
	},
	ActionManageFamily: {
		event:        "application.family_changed",
		precondition: mutableStatus,
	},
	ActionManageProperty: {
		event:        "application.property_changed",
		precondition: mutableStatus,
	},
	ActionRunCalculation: {
		event:           "application.calculated",
		needsEvaluation: true,
		precondition: func(in preconditionInput) error {
			if in.app.Status.IsTerminal() {
				return dErrors.New(dErrors.CodeInvariantViolation, "terminated applications cannot be recalculated")
			}
			return nil
		},
	},
	ActionSubmitApplication: {
		target:          status(application.StatusUnderReview),
		event:           "application.submitted",
		needsEvaluation: true,
		precondition:    validationPassed,
	},
	ActionReturnToDraft: {
		target: status(application.StatusDraft),
		event:  "application.returned",
	},
	ActionSendForApproval: {
		target:          status(application.StatusPendingApproval),
		event:           "application.sent_for_approval",
		needsEvaluation: true,
		precondition:    householdEligible,
	},
	ActionApproveApplication: {
		target:          status(application.StatusApproved),
		event:           "application.approved",
		needsEvaluation: true,
		decision:        decisionprotocol.DecisionApprove,
		precondition:    householdEligible,
	},
	ActionRejectApplication: {
		target:   status(application.StatusRejected),
		event:    "application.rejected",
		decision: decisionprotocol.DecisionReject,
	},
	ActionActivatePayment: {
		target: status(application.StatusActive),
		event:  "benefit.activated",
		apply: func(app *application.Application, now time.Time) {
			app.BenefitUntil = now.Add(benefitPeriod)
		},
	},
	ActionExtendBenefit: {
		event:    "benefit.extended",
		decision: decisionprotocol.DecisionExtend,
		precondition: func(in preconditionInput) error {
			if in.app.Status != application.StatusActive {
				return dErrors.New(dErrors.CodeInvariantViolation, "only active benefits can be extended")
			}
			return nil
		},
		apply: func(app *application.Application, now time.Time) {
			from := app.BenefitUntil
			if from.Before(now) {
				from = now
			}
			app.BenefitUntil = from.Add(benefitPeriod)
		},
	},
	ActionSuspendBenefit: {
		target:   status(application.StatusSuspended),
		event:    "benefit.suspended",
		decision: decisionprotocol.DecisionSuspend,
	},
	ActionResumeBenefit: {
		target: status(application.StatusActive),
		event:  "benefit.resumed",
	},
	ActionTerminateBenefit: {
		target:   status(application.StatusTerminated),
		event:    "benefit.terminated",
		decision: decisionprotocol.DecisionTerminate,
	},
}
