package domain

import "time"

// Periodicity tells how often an income amount recurs.
type Periodicity string

const (
	PeriodMonthly Periodicity = "monthly"
	PeriodYearly  Periodicity = "yearly"
)

// Income is one declared income fact.
// Invariants: Amount >= 0; From not in the future; To >= From when set.
type Income struct {
	TypeCode    string // raw source code, mapped to a category by analysis
	Amount      float64
	Periodicity Periodicity
	From        time.Time
	To          *time.Time
}

// MonthlyEquivalent normalizes the amount to a monthly figure: yearly
// amounts divide by 12, monthly amounts pass through unchanged.
func (i Income) MonthlyEquivalent() float64 {
	if i.Periodicity == PeriodYearly {
		return i.Amount / 12
	}
	return i.Amount
}
