package domain

import "time"

// LandPlot is a registered land holding.
type LandPlot struct {
	TypeCode     string // irrigated, rain_fed, household_plot, pasture
	AreaHectares float64
	AnnualIncome float64 // estimated annual yield value
}

// LivestockType enumerates species with known conventional-unit coefficients.
type LivestockType string

const (
	LivestockSheep   LivestockType = "sheep"
	LivestockGoat    LivestockType = "goat"
	LivestockCow     LivestockType = "cow"
	LivestockHorse   LivestockType = "horse"
	LivestockPig     LivestockType = "pig"
	LivestockChicken LivestockType = "chicken"
	LivestockDuck    LivestockType = "duck"
	LivestockGoose   LivestockType = "goose"
	LivestockTurkey  LivestockType = "turkey"
)

// Livestock is a count of animals of one species.
type Livestock struct {
	Type         LivestockType
	Count        int
	AnnualIncome float64 // estimated annual yield value
}

// Vehicle is a registered vehicle. Light passenger cars newer than the
// disqualification age make the household ineligible.
type Vehicle struct {
	TypeCode        string
	ManufactureYear int
	LightCar        bool
	AnnualIncome    float64 // estimated annual income when used commercially
}

// AgeYears returns the vehicle age in whole years at the given date.
func (v Vehicle) AgeYears(at time.Time) int {
	age := at.Year() - v.ManufactureYear
	if age < 0 {
		return 0
	}
	return age
}
