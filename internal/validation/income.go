package validation

import (
	"time"

	"komek/internal/domain"
)

const (
	MsgIncomeNegative      = "income amount must not be negative"
	MsgIncomePeriodUnknown = "income periodicity must be monthly or yearly"
	MsgIncomeFromRequired  = "income effective-from date is required"
	MsgIncomeFromInFuture  = "income effective-from date must not be in the future"
	MsgIncomeToBeforeFrom  = "income effective-to date must not precede effective-from"
)

// ValidateIncome checks one income record against its invariants:
// amount >= 0, from set and not in the future, to >= from when present.
func ValidateIncome(in domain.Income, now time.Time) Result {
	if in.Amount < 0 {
		return fail(MsgIncomeNegative)
	}
	if in.Periodicity != domain.PeriodMonthly && in.Periodicity != domain.PeriodYearly {
		return fail(MsgIncomePeriodUnknown)
	}
	if in.From.IsZero() {
		return fail(MsgIncomeFromRequired)
	}
	if in.From.After(now) {
		return fail(MsgIncomeFromInFuture)
	}
	if in.To != nil && in.To.Before(in.From) {
		return fail(MsgIncomeToBeforeFrom)
	}
	return ok()
}
