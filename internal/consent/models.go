// Package consent tracks an applicant's data-processing consents. Purpose
// binding allows selective revocation without affecting other flows.
package consent

import (
	"time"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// Purpose labels why applicant data is processed.
type Purpose string

const (
	PurposeDataProcessing   Purpose = "data_processing"
	PurposeRegistryCheck    Purpose = "registry_check"
	PurposePensionFundCheck Purpose = "pension_fund_check"
)

var validPurposes = map[Purpose]bool{
	PurposeDataProcessing:   true,
	PurposeRegistryCheck:    true,
	PurposePensionFundCheck: true,
}

// ParsePurpose constructs a Purpose from external input.
func ParsePurpose(s string) (Purpose, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "purpose cannot be empty")
	}
	p := Purpose(s)
	if !validPurposes[p] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid purpose")
	}
	return p, nil
}

// IsValid checks the purpose against the supported set.
func (p Purpose) IsValid() bool { return validPurposes[p] }

// Record captures an applicant's decision for a specific purpose.
type Record struct {
	ApplicantID id.ApplicantID
	Purpose     Purpose
	GrantedAt   time.Time
	ExpiresAt   time.Time
	RevokedAt   *time.Time
}

// IsActive returns true when consent is currently valid.
func (r Record) IsActive(now time.Time) bool {
	if r.RevokedAt != nil && r.RevokedAt.Before(now) {
		return false
	}
	return r.ExpiresAt.IsZero() || now.Before(r.ExpiresAt)
}

// Ensure enforces that consent exists and is active for the given purpose.
func Ensure(records []Record, purpose Purpose, now time.Time) error {
	for _, r := range records {
		if r.Purpose == purpose && r.IsActive(now) {
			return nil
		}
	}
	return dErrors.New(dErrors.CodeMissingConsent, "consent not granted for required purpose")
}
