// Package rates maps a loan amount onto its interest rate tier.
package rates

import "github.com/iwvelando/loan-calculator/pkg/constants"

// Tier is an inclusive amount range with a fixed annual rate in percent.
type Tier struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Rate float64 `json:"rate" yaml:"rate"`
}

// Contains reports whether amount lies within [Min, Max].
func (t Tier) Contains(amount float64) bool {
	return amount >= t.Min && amount <= t.Max
}

// DefaultTiers are the rate tiers offered for the 1000 to 20000 amount range.
var DefaultTiers = []Tier{
	{Min: 1000, Max: 4999, Rate: 5},
	{Min: 5000, Max: 9999, Rate: 10},
	{Min: 10000, Max: 14999, Rate: 15},
	{Min: 15000, Max: 20000, Rate: 20},
}

// Resolver resolves amounts against a tier table.
type Resolver struct {
	tiers    []Tier
	fallback float64
}

// NewResolver creates a resolver over the given tiers. Amounts that match no
// tier resolve to fallback. The tier slice is copied.
func NewResolver(tiers []Tier, fallback float64) *Resolver {
	copied := make([]Tier, len(tiers))
	copy(copied, tiers)
	return &Resolver{tiers: copied, fallback: fallback}
}

// Tiers returns a copy of the resolver's tier table.
func (r *Resolver) Tiers() []Tier {
	out := make([]Tier, len(r.tiers))
	copy(out, r.tiers)
	return out
}

// Resolve returns the rate of the first tier containing amount, or the
// fallback rate. It never fails; NaN and out of range amounts get the fallback.
func (r *Resolver) Resolve(amount float64) float64 {
	for _, tier := range r.tiers {
		if tier.Contains(amount) {
			return tier.Rate
		}
	}
	return r.fallback
}

var defaultResolver = NewResolver(DefaultTiers, constants.FallbackInterestRate)

// ResolveRate returns the annual rate in percent for amount using DefaultTiers.
func ResolveRate(amount float64) float64 {
	return defaultResolver.Resolve(amount)
}
