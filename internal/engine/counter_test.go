package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
)

func TestCounterResolver(t *testing.T) {
	resolver := engine.NewCounterResolver(engine.DefaultRules().Counter)

	testCases := []struct {
		name     string
		qty      int
		player   wuxing.Element
		opponent wuxing.Element
		skill    wuxing.Skill
		expected int
	}{
		{"metal counters wood", 10, wuxing.ElementMetal, wuxing.ElementWood, wuxing.Skill{}, 5},
		{"counter floors odd quantities", 7, wuxing.ElementMetal, wuxing.ElementWood, wuxing.Skill{}, 3},
		{"yin deepens the reduction", 10, wuxing.ElementFire, wuxing.ElementMetal, wuxing.Skill{YinLevel: 2}, 4},
		{"yin reduction is exact", 20, wuxing.ElementWater, wuxing.ElementFire, wuxing.Skill{YinLevel: 1}, 9},
		{"yin reduction caps at everything", 10, wuxing.ElementWood, wuxing.ElementEarth, wuxing.Skill{YinLevel: 20}, 0},
		{"countered doubles", 10, wuxing.ElementWood, wuxing.ElementMetal, wuxing.Skill{}, 20},
		{"yang softens the multiplier", 10, wuxing.ElementWood, wuxing.ElementMetal, wuxing.Skill{YangLevel: 5}, 15},
		{"multiplier never below one", 10, wuxing.ElementEarth, wuxing.ElementWood, wuxing.Skill{YangLevel: 15}, 10},
		{"yin does not help when countered", 10, wuxing.ElementMetal, wuxing.ElementFire, wuxing.Skill{YinLevel: 4}, 20},
		{"unrelated elements", 10, wuxing.ElementMetal, wuxing.ElementWater, wuxing.Skill{YinLevel: 3, YangLevel: 3}, 10},
		{"same element", 12, wuxing.ElementFire, wuxing.ElementFire, wuxing.Skill{}, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.Resolve(tc.qty, tc.player, tc.opponent, tc.skill)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, got, resolver.Resolve(tc.qty, tc.player, tc.opponent, tc.skill), "resolve must be pure")
		})
	}
}

func TestCounterResolverNeverNegative(t *testing.T) {
	resolver := engine.NewCounterResolver(engine.DefaultRules().Counter)
	for _, a := range wuxing.AllElements() {
		for _, b := range wuxing.AllElements() {
			for level := 0; level < 30; level++ {
				skill := wuxing.Skill{YinLevel: level, YangLevel: level}
				assert.GreaterOrEqual(t, resolver.Resolve(15, a, b, skill), 0)
			}
		}
	}
}
