package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
)

// CounterResolver computes the effective quantity of a revealed opponent
type CounterResolver struct {
	rules CounterRules
}

// NewCounterResolver creates a resolver for the given counter rules
func NewCounterResolver(rules CounterRules) *CounterResolver {
	return &CounterResolver{rules: rules}
}

// Resolve returns the opponent quantity after the counter effect.
//
// A player element that counters the opponent cuts the quantity by
// reduction_percent plus reduction_per_yin_level per yin level, capped at
// 100%. An opponent that counters the player multiplies the quantity by
// multiplier_tenths/10 minus multiplier_per_yang_level tenths per yang level,
// never below min_multiplier_tenths. Results are floored.
func (r *CounterResolver) Resolve(opponentQty int, player, opponent wuxing.Element, skill wuxing.Skill) int {
	switch {
	case wuxing.DoesCounter(player, opponent):
		reduction := r.rules.ReductionPercent + r.rules.ReductionPerYinLevel*skill.YinLevel
		reduction = max(0, min(100, reduction))
		return opponentQty * (100 - reduction) / 100

	case wuxing.IsCounteredBy(player, opponent):
		multiplier := r.rules.MultiplierTenths - r.rules.MultiplierPerYang*skill.YangLevel
		multiplier = max(r.rules.MinMultiplierTenths, multiplier)
		return opponentQty * multiplier / 10

	default:
		return opponentQty
	}
}
