// Package application holds the benefit-application aggregate and its
// status machine. The workflow engine is the only writer of Status; stores
// and handlers treat it as read-only.
package application

import (
	"time"

	"komek/internal/consent"
	"komek/internal/domain"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// Status is the application lifecycle state.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusUnderReview     Status = "UNDER_REVIEW"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
	StatusActive          Status = "ACTIVE"
	StatusSuspended       Status = "SUSPENDED"
	StatusTerminated      Status = "TERMINATED"
)

// statusTransitions is the single source of truth for the lifecycle.
// TERMINATED is absorbing: it has no outgoing transitions.
var statusTransitions = map[Status][]Status{
	StatusDraft:           {StatusUnderReview, StatusPendingApproval},
	StatusUnderReview:     {StatusDraft, StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusActive},
	StatusRejected:        {StatusDraft},
	StatusActive:          {StatusSuspended, StatusTerminated},
	StatusSuspended:       {StatusActive, StatusTerminated},
	StatusTerminated:      {},
}

// ParseStatus constructs a Status from external input.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, known := statusTransitions[st]; !known {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid application status")
	}
	return st, nil
}

// CanTransitionTo reports whether the lifecycle permits moving to target.
// Any transition not in the table is rejected.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// Application is the aggregate a caller assembles before invoking the core:
// applicant, household, declared income and property, plus consents.
type Application struct {
	ID          id.ApplicationID
	Status      Status
	Applicant   domain.Applicant
	Family      []domain.FamilyMember
	Incomes     []domain.Income
	Land        []domain.LandPlot
	Livestock   []domain.Livestock
	Vehicles    []domain.Vehicle
	Consents    []consent.Record
	RegionCoeff float64
	AddCoeff    float64
	BorderArea  bool
	// BenefitUntil is the end of the granted benefit period; set on payment
	// activation and pushed forward by extensions.
	BenefitUntil time.Time
	CreatedBy    id.UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New constructs a DRAFT application owned by the creating specialist.
func New(appID id.ApplicationID, applicant domain.Applicant, createdBy id.UserID, now time.Time) *Application {
	return &Application{
		ID:        appID,
		Status:    StatusDraft,
		Applicant: applicant,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FamilySize counts the applicant plus every household member.
func (a *Application) FamilySize() int {
	return 1 + len(a.Family)
}

// ChildrenCount counts members that qualify as children at the given date
// under the dependant age limit used by the benefit formula.
func (a *Application) ChildrenCount(at time.Time, dependentAgeLimit int) int {
	n := 0
	for _, m := range a.Family {
		if m.IsChildAt(at, dependentAgeLimit) {
			n++
		}
	}
	return n
}

// CanMoveTo checks the status transition without applying it.
func (a *Application) CanMoveTo(target Status) error {
	if !a.Status.CanTransitionTo(target) {
		return dErrors.New(dErrors.CodeInvariantViolation,
			"status transition "+string(a.Status)+" -> "+string(target)+" is not allowed")
	}
	return nil
}

// ApplyMove transitions the application. Call CanMoveTo first; the workflow
// engine relies on the check/apply split to stay side-effect free on
// rejected actions.
func (a *Application) ApplyMove(target Status, now time.Time) {
	a.Status = target
	a.UpdatedAt = now
}
