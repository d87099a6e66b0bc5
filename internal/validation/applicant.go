package validation

import (
	"time"

	"komek/internal/domain"
	dErrors "komek/pkg/domain-errors"
)

// Closed message set for applicant-level checks.
const (
	MsgPINLength             = "PIN must be 14-16 digits"
	MsgPINDigits             = "PIN must contain only digits"
	MsgFullNameRequired      = "full name is required"
	MsgBirthDateRequired     = "birth date is required"
	MsgBirthDateInFuture     = "birth date must not be in the future"
	MsgCitizenshipRequired   = "citizenship is required"
	MsgExactlyOnePrimaryDoc  = "applicant must have exactly one primary document"
	MsgGenderUnknown         = "gender must be male or female"
	errNilApplicant          = "applicant must not be nil"
)

// ValidatePIN checks the personal identification number: exactly 14-16
// ASCII digits.
func ValidatePIN(pin string) Result {
	if len(pin) < 14 || len(pin) > 16 {
		return fail(MsgPINLength)
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fail(MsgPINDigits)
		}
	}
	return ok()
}

// ValidateApplicant runs the structural applicant checks: identity fields
// present, PIN well formed, exactly one primary document, and each document
// well formed. A nil applicant is a caller bug, reported as an error.
func ValidateApplicant(a *domain.Applicant, now time.Time) (Result, error) {
	if a == nil {
		return Result{}, dErrors.New(dErrors.CodeInvalidInput, errNilApplicant)
	}
	if r := ValidatePIN(a.PIN); !r.IsValid {
		return r, nil
	}
	if a.FullName == "" {
		return fail(MsgFullNameRequired), nil
	}
	if a.BirthDate.IsZero() {
		return fail(MsgBirthDateRequired), nil
	}
	if a.BirthDate.After(now) {
		return fail(MsgBirthDateInFuture), nil
	}
	if a.Citizenship == "" {
		return fail(MsgCitizenshipRequired), nil
	}
	if a.Gender != domain.GenderMale && a.Gender != domain.GenderFemale {
		return fail(MsgGenderUnknown), nil
	}
	primaries := 0
	for _, doc := range a.Documents {
		if doc.Primary {
			primaries++
		}
		if r := ValidateDocument(doc, now); !r.IsValid {
			return r, nil
		}
	}
	if primaries != 1 {
		return fail(MsgExactlyOnePrimaryDoc), nil
	}
	return ok(), nil
}
