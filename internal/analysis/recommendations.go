package analysis

// Recommendation texts. The checks below are independent thresholds, so
// several may fire for the same household; the order here is the order
// they are returned in.
const (
	RecDiversifyIncome   = "household depends on a single income source; consider diversifying income"
	RecIncomeAboveGMI    = "per-capita income exceeds the guaranteed minimum income; household does not qualify for the benefit"
	RecIncomeBelowGMI    = "per-capita income is below the guaranteed minimum income; household qualifies for income support"
	RecReduceLaborShare  = "over half of household income comes from labor; a job loss would be critical, consider supplementary sources"
)

const (
	concentrationThreshold  = 80.0
	laborDependencyThreshold = 50.0
)

// recommendations runs the independent threshold checks. They are not
// mutually exclusive; the result is an ordered list.
func recommendations(r Result, gmi float64) []string {
	recs := []string{}

	if len(r.Categories) > 0 && r.Categories[0].Percent > concentrationThreshold {
		recs = append(recs, RecDiversifyIncome)
	}

	if r.PerCapitaIncome > gmi {
		recs = append(recs, RecIncomeAboveGMI)
	} else if r.TotalIncome > 0 {
		recs = append(recs, RecIncomeBelowGMI)
	}

	for _, share := range r.Categories {
		if share.Category == CategoryLabor && share.Percent > laborDependencyThreshold {
			recs = append(recs, RecReduceLaborShare)
			break
		}
	}

	return recs
}
