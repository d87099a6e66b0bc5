// Package household computes normalized income, conventional livestock
// units, eligibility flags and the benefit amount. Everything here is pure
// domain logic: no I/O, no side effects, no errors. Invalid input is never
// rejected; eligibility decisions surface through the flags, which the
// workflow engine interprets.
package household

import (
	"time"

	"komek/internal/domain"
)

// Metrics is the derived household picture. It is not persisted by the
// core; callers receive it and decide what to store.
type Metrics struct {
	TotalMonthlyIncome float64
	PerCapitaIncome    float64
	ConventionalUnits  float64
	GMIThreshold       float64

	IncomeEligible    bool
	PropertyEligible  bool
	FamilyEligible    bool
	VehicleEligible   bool
}

// Eligible is the overall benefit-eligibility check: the logical AND of the
// four component flags.
func (m Metrics) Eligible() bool {
	return m.IncomeEligible && m.PropertyEligible && m.FamilyEligible && m.VehicleEligible
}

// TotalMonthlyIncome sums the monthly equivalents of every income record.
func TotalMonthlyIncome(incomes []domain.Income) float64 {
	var total float64
	for _, in := range incomes {
		total += in.MonthlyEquivalent()
	}
	return total
}

// ConventionalUnits totals livestock in conventional units. The measure is
// linear: doubling any count doubles its contribution.
func ConventionalUnits(livestock []domain.Livestock) float64 {
	var units float64
	for _, l := range livestock {
		units += float64(l.Count) * UnitCoefficient(l.Type)
	}
	return units
}

// CheckLivestockLimit passes iff units <= familySize x 4. Boundary equality
// passes.
func CheckLivestockLimit(units float64, familySize int) bool {
	return units <= float64(familySize)*LivestockLimitPerMember
}

// CheckVehicles fails when any light passenger car is younger than the
// disqualification age.
func CheckVehicles(vehicles []domain.Vehicle, now time.Time) bool {
	for _, v := range vehicles {
		if v.LightCar && v.AgeYears(now) < lightCarDisqualificationAge {
			return false
		}
	}
	return true
}

const lightCarDisqualificationAge = 20

// Compute derives the full household picture from caller-supplied records.
// familySize = 0 yields zero per-capita income and a false family flag;
// callers must treat that as invalid upstream, the function does not error.
func Compute(incomes []domain.Income, livestock []domain.Livestock, vehicles []domain.Vehicle, familySize int, gmi float64, now time.Time) Metrics {
	total := TotalMonthlyIncome(incomes)

	var perCapita float64
	if familySize > 0 {
		perCapita = total / float64(familySize)
	}

	units := ConventionalUnits(livestock)

	return Metrics{
		TotalMonthlyIncome: total,
		PerCapitaIncome:    perCapita,
		ConventionalUnits:  units,
		GMIThreshold:       gmi,
		IncomeEligible:     perCapita <= gmi,
		PropertyEligible:   CheckLivestockLimit(units, familySize),
		FamilyEligible:     familySize > 0,
		VehicleEligible:    CheckVehicles(vehicles, now),
	}
}

// coefficientProductCap mirrors the validator limit. The clamp applies even
// to inputs the validator already rejected.
const coefficientProductCap = 1.8

// BenefitAmount computes the monthly benefit:
// base x children x min(regionCoeff x addCoeff, 1.8) + borderBonus.
func BenefitAmount(baseAmount float64, childrenCount int, regionCoeff, addCoeff, borderBonus float64) float64 {
	coeff := regionCoeff * addCoeff
	if coeff > coefficientProductCap {
		coeff = coefficientProductCap
	}
	return baseAmount*float64(childrenCount)*coeff + borderBonus
}
