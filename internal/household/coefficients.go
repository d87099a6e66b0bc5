package household

import "komek/internal/domain"

// conventionalUnitCoefficients converts mixed livestock counts into one
// comparable scale. Values come from the benefit regulation: small ruminants
// are the reference unit, large animals count as five, poultry as fractions.
var conventionalUnitCoefficients = map[domain.LivestockType]float64{
	domain.LivestockSheep:   1.0,
	domain.LivestockGoat:    1.0,
	domain.LivestockCow:     5.0,
	domain.LivestockHorse:   5.0,
	domain.LivestockPig:     2.0,
	domain.LivestockChicken: 0.05,
	domain.LivestockDuck:    0.1,
	domain.LivestockGoose:   0.2,
	domain.LivestockTurkey:  0.3,
}

// UnitCoefficient returns the conventional-unit coefficient for a species;
// unknown species contribute nothing.
func UnitCoefficient(t domain.LivestockType) float64 {
	return conventionalUnitCoefficients[t]
}

// LivestockLimitPerMember caps conventional units at four per household
// member.
const LivestockLimitPerMember = 4.0
