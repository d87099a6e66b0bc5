// Package analysis classifies every income-bearing fact of an application
// into eight fixed categories and derives stability and diversification
// signals from the distribution.
package analysis

// Category is one of the eight fixed income categories.
type Category string

const (
	CategoryLabor            Category = "labor"
	CategoryEducation        Category = "education"
	CategoryEntrepreneurship Category = "entrepreneurship"
	CategoryAgriculture      Category = "agriculture"
	CategoryLandUse          Category = "land_use"
	CategoryLivestock        Category = "livestock"
	CategoryBanking          Category = "banking"
	CategoryOther            Category = "other"
)

// Categories lists all eight in reporting order.
var Categories = []Category{
	CategoryLabor,
	CategoryEducation,
	CategoryEntrepreneurship,
	CategoryAgriculture,
	CategoryLandUse,
	CategoryLivestock,
	CategoryBanking,
	CategoryOther,
}

// codeCategories is the static lookup from raw income type codes to
// categories. Unmapped codes fall into CategoryOther; the table never
// rejects a code.
var codeCategories = map[string]Category{
	// labor
	"salary":       CategoryLabor,
	"wage":         CategoryLabor,
	"bonus":        CategoryLabor,
	"pension":      CategoryLabor,
	"family_labor": CategoryLabor,

	// education
	"scholarship": CategoryEducation,
	"study_grant": CategoryEducation,

	// entrepreneurship
	"business":           CategoryEntrepreneurship,
	"trade":              CategoryEntrepreneurship,
	"services":           CategoryEntrepreneurship,
	"vehicle_commercial": CategoryEntrepreneurship,

	// agriculture
	"farming":   CategoryAgriculture,
	"crop_sale": CategoryAgriculture,
	"harvest":   CategoryAgriculture,

	// land use
	"land_lease": CategoryLandUse,
	"land_yield": CategoryLandUse,

	// livestock
	"livestock_yield": CategoryLivestock,
	"cattle_sale":     CategoryLivestock,
	"milk_sale":       CategoryLivestock,
	"wool_sale":       CategoryLivestock,

	// banking
	"deposit_interest": CategoryBanking,
	"dividends":        CategoryBanking,
}

// Classify maps a raw income type code to its category.
func Classify(code string) Category {
	if c, mapped := codeCategories[code]; mapped {
		return c
	}
	return CategoryOther
}

// Stability grades how dependable the primary income source is.
type Stability string

const (
	StabilityHigh   Stability = "HIGH"
	StabilityMedium Stability = "MEDIUM"
	StabilityLow    Stability = "LOW"
)

// Diversification grades how spread the household income is.
type Diversification string

const (
	DiversificationHigh   Diversification = "HIGH"
	DiversificationMedium Diversification = "MEDIUM"
	DiversificationLow    Diversification = "LOW"
)
