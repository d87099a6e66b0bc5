// Package domain holds identifier types shared across modules.
//
// IDs are distinct uuid wrappers so the compiler rejects cross-type mixups.
// Construct them via the Parse functions at trust boundaries; direct casting
// bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "komek/pkg/domain-errors"
)

// UserID identifies an acting user (specialist, director, accountant, admin).
type UserID uuid.UUID

// ApplicationID identifies a benefit application.
type ApplicationID uuid.UUID

// ApplicantID identifies the applicant person record.
type ApplicantID uuid.UUID

// ProtocolID identifies a decision-protocol record.
type ProtocolID uuid.UUID

func parse(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return u, nil
}

// ParseUserID constructs a UserID from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parse("user id", s)
	return UserID(u), err
}

// ParseApplicationID constructs an ApplicationID from external input.
func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parse("application id", s)
	return ApplicationID(u), err
}

// ParseApplicantID constructs an ApplicantID from external input.
func ParseApplicantID(s string) (ApplicantID, error) {
	u, err := parse("applicant id", s)
	return ApplicantID(u), err
}

// NewApplicationID returns a fresh random application ID.
func NewApplicationID() ApplicationID { return ApplicationID(uuid.New()) }

// NewApplicantID returns a fresh random applicant ID.
func NewApplicantID() ApplicantID { return ApplicantID(uuid.New()) }

// NewProtocolID returns a fresh random protocol ID.
func NewProtocolID() ProtocolID { return ProtocolID(uuid.New()) }

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id ApplicantID) String() string   { return uuid.UUID(id).String() }
func (id ProtocolID) String() string    { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ApplicantID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ProtocolID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
