package pricing

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/madappgang/stackplan/internal/config"
)

// Estimate is the answer to a monthly-cost query. Available is false for
// the Unavailable sentinel: no rate data exists for the resource/tier, the
// caller renders it as pending.
type Estimate struct {
	Monthly   Money `json:"monthly"`
	Available bool  `json:"available"`
}

// Unavailable is the sentinel estimate for resources with no rate data.
var Unavailable = Estimate{}

// available wraps a computed amount.
func available(m Money) Estimate {
	return Estimate{Monthly: m, Available: true}
}

// Formula computes a monthly cost directly from usage parameters,
// bypassing the table.
type Formula func(tier Tier, p Params) Money

// Engine answers monthly-cost queries. It holds the externally supplied
// table and the formula registry; it keeps no state across calls.
type Engine struct {
	table    Table
	formulas map[string]Formula
	logger   zerolog.Logger
}

// NewEngine creates an engine over the supplied table. The serverless
// capacity formula is pre-registered under the "aurora" key.
func NewEngine(table Table, logger zerolog.Logger) *Engine {
	e := &Engine{
		table:    table,
		formulas: make(map[string]Formula),
		logger:   logger,
	}
	e.RegisterFormula("aurora", ServerlessCapacityMonthly)
	return e
}

// RegisterFormula routes a resource key to a usage-based formula instead of
// the table. Registering an existing key replaces its formula.
func (e *Engine) RegisterFormula(resourceKey string, f Formula) {
	e.formulas[resourceKey] = f
}

// ComputeMonthly answers "what does this resource cost per month at this
// tier". Formula-priced keys compute directly from params; everything else
// goes through the table. An unknown key with no table entry and no formula
// returns Unavailable, never an error. A tier outside the known set is a
// programming error reported as invalid-tier.
func (e *Engine) ComputeMonthly(resourceKey string, tier Tier, params Params) (Estimate, error) {
	if !tier.Valid() {
		return Unavailable, config.InvalidTier(string(tier))
	}

	if f, ok := e.formulas[resourceKey]; ok {
		return available(f(tier, params)), nil
	}

	if m, ok := Lookup(e.table, resourceKey, tier); ok {
		return available(m), nil
	}

	e.logger.Debug().
		Str("resource_key", resourceKey).
		Str("tier", string(tier)).
		Msg("no pricing data")

	return Unavailable, nil
}

// MonthlyFromHourly converts an hourly rate to a flat monthly amount using
// the 720-hour month.
func MonthlyFromHourly(hourly Money) Money {
	return hourly.Mul(hoursPerMonth)
}

// Sum adds the available estimates and reports whether every input was
// available.
func Sum(estimates ...Estimate) (Money, bool) {
	total := decimal.Zero
	all := true
	for _, e := range estimates {
		if !e.Available {
			all = false
			continue
		}
		total = total.Add(e.Monthly)
	}
	return total, all
}
