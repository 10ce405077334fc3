// Package pricing answers monthly-cost queries for a resource key and
// usage tier. Flat rates come from an externally supplied table; usage-based
// resources are priced by closed-form formulas. A missing rate is never an
// error: lookups return the Unavailable sentinel and callers render it as
// "price pending".
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/madappgang/stackplan/internal/config"
)

// Tier selects one of the three pricing scenarios.
type Tier string

const (
	TierStartup  Tier = "startup"
	TierScaleup  Tier = "scaleup"
	TierHighload Tier = "highload"
)

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierStartup, TierScaleup, TierHighload:
		return true
	default:
		return false
	}
}

// ParseTier converts a string to a Tier. Anything outside the known set is
// a programming error reported as an invalid-tier ValidationError, distinct
// from the Unavailable sentinel.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", config.InvalidTier(s)
	}
	return t, nil
}

// Average utilization of the capacity range per tier.
var utilizationByTier = map[Tier]decimal.Decimal{
	TierStartup:  decimal.NewFromFloat(0.2),
	TierScaleup:  decimal.NewFromFloat(0.5),
	TierHighload: decimal.NewFromFloat(0.8),
}

// Share of the month a scale-to-zero database is active, per tier.
var activeTimeByTier = map[Tier]decimal.Decimal{
	TierStartup:  decimal.NewFromFloat(0.75),
	TierScaleup:  decimal.NewFromFloat(0.9),
	TierHighload: decimal.NewFromFloat(1.0),
}
