package validation

import (
	"time"

	"komek/internal/consent"
)

const MsgConsentMissing = "required processing consent is missing or expired"

// RequiredConsents are the purposes every application must carry before it
// can leave DRAFT. Registry and pension fund lookups have their own purpose
// so revoking one does not block the others.
var RequiredConsents = []consent.Purpose{
	consent.PurposeDataProcessing,
	consent.PurposeRegistryCheck,
}

// ValidateConsents checks the applicant granted every required purpose.
func ValidateConsents(records []consent.Record, now time.Time) Result {
	for _, purpose := range RequiredConsents {
		if err := consent.Ensure(records, purpose, now); err != nil {
			return fail(MsgConsentMissing)
		}
	}
	return ok()
}
