package pricing

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal USD amount.
type Money = decimal.Decimal

// Levels holds the monthly rate for each tier.
type Levels struct {
	Startup  Money `json:"startup"`
	Scaleup  Money `json:"scaleup"`
	Highload Money `json:"highload"`
}

// Entry is the pricing record for one resource key.
type Entry struct {
	Levels Levels `json:"levels"`
}

// Table maps resource keys to tiered monthly rates. It is configuration
// input supplied by the caller, not owned by the engine.
type Table map[string]Entry

// ParseTable decodes the external table shape
// {key: {levels: {startup, scaleup, highload}}} and rejects negative rates.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode pricing table: %w", err)
	}
	for key, entry := range t {
		for _, m := range []Money{entry.Levels.Startup, entry.Levels.Scaleup, entry.Levels.Highload} {
			if m.IsNegative() {
				return nil, fmt.Errorf("pricing table: negative rate for %q", key)
			}
		}
	}
	return t, nil
}

// Lookup returns the monthly rate for a resource key and tier. The false
// return is the Unavailable sentinel: an expected, displayable state, not
// an error. Callers must validate the tier first; Lookup treats an unknown
// tier as unavailable.
func Lookup(t Table, resourceKey string, tier Tier) (Money, bool) {
	entry, ok := t[resourceKey]
	if !ok {
		return decimal.Zero, false
	}
	switch tier {
	case TierStartup:
		return entry.Levels.Startup, true
	case TierScaleup:
		return entry.Levels.Scaleup, true
	case TierHighload:
		return entry.Levels.Highload, true
	default:
		return decimal.Zero, false
	}
}
