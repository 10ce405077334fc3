package pricing

import "github.com/shopspring/decimal"

// hoursPerMonth is a flat 720-hour month. A deliberate simplification, not
// a calendar-accurate day count.
var hoursPerMonth = decimal.NewFromInt(24 * 30)

// Params carries the usage inputs for formula-priced resources. Keys the
// formula does not need are ignored.
type Params struct {
	// MinCapacity and MaxCapacity bound the serverless capacity range in
	// capacity units (ACUs for Aurora).
	MinCapacity float64
	MaxCapacity float64
	// HourlyRate is the cost of one capacity unit for one hour.
	HourlyRate Money
}

// ServerlessCapacityMonthly estimates the monthly cost of serverless
// capacity billing (Aurora Serverless v2 style ACU billing).
//
// Staged exactly as:
//  1. avg = min + (max-min) * utilization(tier)
//  2. if min == 0 the database can pause: avg *= activeTime(tier)
//  3. monthly = avg * hourlyRate * 24 * 30
func ServerlessCapacityMonthly(tier Tier, p Params) Money {
	minCap := decimal.NewFromFloat(p.MinCapacity)
	maxCap := decimal.NewFromFloat(p.MaxCapacity)

	avg := minCap.Add(maxCap.Sub(minCap).Mul(utilizationByTier[tier]))
	if p.MinCapacity == 0 {
		avg = avg.Mul(activeTimeByTier[tier])
	}

	return avg.Mul(p.HourlyRate).Mul(hoursPerMonth)
}
