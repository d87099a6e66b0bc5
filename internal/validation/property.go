package validation

import (
	"time"

	"komek/internal/domain"
)

const (
	MsgLandTypeRequired     = "land plot type is required"
	MsgLandAreaNegative     = "land plot area must not be negative"
	MsgLivestockTypeUnknown = "livestock type is not recognized"
	MsgLivestockCountNeg    = "livestock count must not be negative"
	MsgVehicleTypeRequired  = "vehicle type is required"
	MsgVehicleYearInvalid   = "vehicle manufacture year is invalid"
	MsgLightCarTooNew       = "light passenger car newer than 20 years disqualifies the household"
)

// LightCarDisqualificationAge is the vehicle age below which a light
// passenger car is a hard disqualifier. The household calculator applies the
// same rule on its eligibility flag.
const LightCarDisqualificationAge = 20

// ValidateLandPlot checks one land record.
func ValidateLandPlot(p domain.LandPlot) Result {
	if p.TypeCode == "" {
		return fail(MsgLandTypeRequired)
	}
	if p.AreaHectares < 0 {
		return fail(MsgLandAreaNegative)
	}
	return ok()
}

var knownLivestock = map[domain.LivestockType]bool{
	domain.LivestockSheep:   true,
	domain.LivestockGoat:    true,
	domain.LivestockCow:     true,
	domain.LivestockHorse:   true,
	domain.LivestockPig:     true,
	domain.LivestockChicken: true,
	domain.LivestockDuck:    true,
	domain.LivestockGoose:   true,
	domain.LivestockTurkey:  true,
}

// ValidateLivestock checks one livestock record.
func ValidateLivestock(l domain.Livestock) Result {
	if !knownLivestock[l.Type] {
		return fail(MsgLivestockTypeUnknown)
	}
	if l.Count < 0 {
		return fail(MsgLivestockCountNeg)
	}
	return ok()
}

// ValidateVehicle checks one vehicle record. A light passenger car younger
// than LightCarDisqualificationAge fails here as well as in the calculator.
func ValidateVehicle(v domain.Vehicle, now time.Time) Result {
	if v.TypeCode == "" {
		return fail(MsgVehicleTypeRequired)
	}
	if v.ManufactureYear < 1900 || v.ManufactureYear > now.Year() {
		return fail(MsgVehicleYearInvalid)
	}
	if v.LightCar && v.AgeYears(now) < LightCarDisqualificationAge {
		return fail(MsgLightCarTooNew)
	}
	return ok()
}
