package analysis

import (
	"sort"

	"komek/internal/application"
)

// CategoryShare is one category's slice of the household income.
type CategoryShare struct {
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
	Percent  float64  `json:"percent"`
}

// Result is the derived income picture for one application.
type Result struct {
	TotalIncome     float64         `json:"totalIncome"`
	PerCapitaIncome float64         `json:"perCapitaIncome"`
	Categories      []CategoryShare `json:"categories"`
	PrimarySource   Category        `json:"primarySource,omitempty"`
	Stability       Stability       `json:"stability"`
	Diversification Diversification `json:"diversification"`
	Recommendations []string        `json:"recommendations"`
}

// entry is one income-bearing fact after flattening.
type entry struct {
	code   string
	amount float64 // monthly equivalent
}

// flatten gathers the applicant's own income records, every family member's
// reported monthly income, and amortized (annual/12) property-derived
// income into one flat list.
func flatten(app *application.Application) []entry {
	var entries []entry
	for _, in := range app.Incomes {
		entries = append(entries, entry{code: in.TypeCode, amount: in.MonthlyEquivalent()})
	}
	for _, m := range app.Family {
		if m.MonthlyIncome > 0 {
			entries = append(entries, entry{code: "family_labor", amount: m.MonthlyIncome})
		}
	}
	for _, p := range app.Land {
		if p.AnnualIncome > 0 {
			entries = append(entries, entry{code: "land_yield", amount: p.AnnualIncome / 12})
		}
	}
	for _, l := range app.Livestock {
		if l.AnnualIncome > 0 {
			entries = append(entries, entry{code: "livestock_yield", amount: l.AnnualIncome / 12})
		}
	}
	for _, v := range app.Vehicles {
		if v.AnnualIncome > 0 {
			entries = append(entries, entry{code: "vehicle_commercial", amount: v.AnnualIncome / 12})
		}
	}
	return entries
}

// Analyze classifies every income-bearing fact of the application and
// derives the stability/diversification signals. gmi is the guaranteed
// minimum income used by the recommendation thresholds.
func Analyze(app *application.Application, gmi float64) Result {
	sums := make(map[Category]float64)
	var total float64
	for _, e := range flatten(app) {
		c := Classify(e.code)
		sums[c] += e.amount
		total += e.amount
	}

	// Only categories that actually carry income appear in the result.
	var shares []CategoryShare
	for _, c := range Categories {
		amount := sums[c]
		if amount <= 0 {
			continue
		}
		shares = append(shares, CategoryShare{
			Category: c,
			Amount:   amount,
			Percent:  amount / total * 100,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Amount > shares[j].Amount })

	result := Result{
		TotalIncome:     total,
		Categories:      shares,
		Stability:       StabilityLow,
		Diversification: diversification(len(shares)),
	}
	if size := app.FamilySize(); size > 0 {
		result.PerCapitaIncome = total / float64(size)
	}
	if len(shares) > 0 {
		result.PrimarySource = shares[0].Category
		result.Stability = stability(result.PrimarySource)
	}
	result.Recommendations = recommendations(result, gmi)
	return result
}

// stability is HIGH when the primary source is labor-type, MEDIUM when
// entrepreneurial or agricultural, LOW otherwise.
func stability(primary Category) Stability {
	switch primary {
	case CategoryLabor:
		return StabilityHigh
	case CategoryEntrepreneurship, CategoryAgriculture:
		return StabilityMedium
	default:
		return StabilityLow
	}
}

func diversification(activeCategories int) Diversification {
	switch {
	case activeCategories >= 4:
		return DiversificationHigh
	case activeCategories >= 2:
		return DiversificationMedium
	default:
		return DiversificationLow
	}
}
