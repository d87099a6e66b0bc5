package validation

const (
	MsgCoeffNegative  = "calculation coefficients must not be negative"
	MsgCoeffOverLimit = "combined regional coefficient must not exceed 1.8"
)

// CoefficientProductLimit caps regionCoeff x addCoeff. The benefit formula
// in household.BenefitAmount clamps to the same limit.
const CoefficientProductLimit = 1.8

// CheckCoefficients validates the regional and additional coefficients used
// by the benefit formula.
func CheckCoefficients(regionCoeff, addCoeff float64) Result {
	if regionCoeff < 0 || addCoeff < 0 {
		return fail(MsgCoeffNegative)
	}
	if regionCoeff*addCoeff > CoefficientProductLimit {
		return fail(MsgCoeffOverLimit)
	}
	return ok()
}
