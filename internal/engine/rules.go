package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// Rules holds the tunable numbers of the game. DefaultRules matches the
// shipped balance; a rules file may override any of them.
type Rules struct {
	Start         StartRules     `yaml:"start"`
	Adventure     AdventureRules `yaml:"adventure"`
	Opponents     RangeRule      `yaml:"opponents"`
	CurrencyAward AwardRules     `yaml:"currency_award"`
	SkillCost     SkillCostRules `yaml:"skill_cost"`
	Counter       CounterRules   `yaml:"counter"`
}

// StartRules are the values a new or reset player starts with
type StartRules struct {
	Elements int `yaml:"elements"`
	Currency int `yaml:"currency"`
}

// AdventureRules gate leaving spawn
type AdventureRules struct {
	// Threshold every element must reach before an adventure may start
	Threshold int `yaml:"threshold"`
	// ReplenishTarget is the floor replenish tops every element up to
	ReplenishTarget int `yaml:"replenish_target"`
}

// RangeRule is an inclusive range that shifts up with travel distance
type RangeRule struct {
	Min             int `yaml:"min"`
	Max             int `yaml:"max"`
	DistanceDivisor int `yaml:"distance_divisor"`
}

// Bounds returns the range for the given distance
func (r RangeRule) Bounds(distance int) (int, int) {
	bonus := distance / r.DistanceDivisor
	return r.Min + bonus, r.Max + bonus
}

// AwardRules describe the currency dropped by a won battle
type AwardRules struct {
	MissPercent int       `yaml:"miss_percent"`
	Amount      RangeRule `yaml:"amount"`
}

// SkillCostRules price one level of a skill branch: base + step*currentLevel
type SkillCostRules struct {
	ElementBase  int `yaml:"element_base"`
	ElementStep  int `yaml:"element_step"`
	CurrencyBase int `yaml:"currency_base"`
	CurrencyStep int `yaml:"currency_step"`
}

// CounterRules parameterize the counter effect. Percentages and tenths keep
// the arithmetic exact.
type CounterRules struct {
	ReductionPercent     int `yaml:"reduction_percent"`
	ReductionPerYinLevel int `yaml:"reduction_per_yin_level"`
	MultiplierTenths     int `yaml:"multiplier_tenths"`
	MultiplierPerYang    int `yaml:"multiplier_per_yang_level"`
	MinMultiplierTenths  int `yaml:"min_multiplier_tenths"`
}

// DefaultRules returns the standard balance
func DefaultRules() *Rules {
	return &Rules{
		Start: StartRules{
			Elements: 10,
			Currency: 10,
		},
		Adventure: AdventureRules{
			Threshold:       10,
			ReplenishTarget: 10,
		},
		Opponents: RangeRule{Min: 5, Max: 15, DistanceDivisor: 2},
		CurrencyAward: AwardRules{
			MissPercent: 30,
			Amount:      RangeRule{Min: 1, Max: 5, DistanceDivisor: 3},
		},
		SkillCost: SkillCostRules{
			ElementBase:  10,
			ElementStep:  5,
			CurrencyBase: 3,
			CurrencyStep: 2,
		},
		Counter: CounterRules{
			ReductionPercent:     50,
			ReductionPerYinLevel: 5,
			MultiplierTenths:     20,
			MultiplierPerYang:    1,
			MinMultiplierTenths:  10,
		},
	}
}

// Validate checks that the rules describe a playable game
func (r *Rules) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("start.elements", r.Start.Elements, vb)
	errors.ValidateNonNegative("start.currency", r.Start.Currency, vb)
	errors.ValidateNonNegative("adventure.threshold", r.Adventure.Threshold, vb)
	errors.ValidateNonNegative("adventure.replenish_target", r.Adventure.ReplenishTarget, vb)

	validateRange("opponents", r.Opponents, vb)
	validateRange("currency_award.amount", r.CurrencyAward.Amount, vb)
	errors.ValidateRange("currency_award.miss_percent", r.CurrencyAward.MissPercent, 0, 100, vb)

	errors.ValidateNonNegative("skill_cost.element_base", r.SkillCost.ElementBase, vb)
	errors.ValidateNonNegative("skill_cost.element_step", r.SkillCost.ElementStep, vb)
	errors.ValidateNonNegative("skill_cost.currency_base", r.SkillCost.CurrencyBase, vb)
	errors.ValidateNonNegative("skill_cost.currency_step", r.SkillCost.CurrencyStep, vb)

	errors.ValidateRange("counter.reduction_percent", r.Counter.ReductionPercent, 0, 100, vb)
	errors.ValidateNonNegative("counter.reduction_per_yin_level", r.Counter.ReductionPerYinLevel, vb)
	errors.ValidateNonNegative("counter.multiplier_per_yang_level", r.Counter.MultiplierPerYang, vb)
	errors.ValidateNonNegative("counter.min_multiplier_tenths", r.Counter.MinMultiplierTenths, vb)
	if r.Counter.MultiplierTenths < r.Counter.MinMultiplierTenths {
		vb.Field("counter.multiplier_tenths", "must not be below min_multiplier_tenths")
	}

	return vb.Build()
}

func validateRange(field string, r RangeRule, vb *errors.ValidationBuilder) {
	errors.ValidateNonNegative(field+".min", r.Min, vb)
	if r.Max < r.Min {
		vb.Fieldf(field+".max", "must not be below min (%d)", r.Min)
	}
	errors.ValidatePositive(field+".distance_divisor", r.DistanceDivisor, vb)
}
