package wuxing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

func TestCounterCycleIsTotalAndIrreflexive(t *testing.T) {
	for _, a := range wuxing.AllElements() {
		countered := 0
		for _, b := range wuxing.AllElements() {
			if wuxing.DoesCounter(a, b) {
				countered++
			}
		}
		assert.Equal(t, 1, countered, "%s should counter exactly one element", a)
		assert.False(t, wuxing.DoesCounter(a, a), "%s must not counter itself", a)
	}
}

func TestCounterCycleOrder(t *testing.T) {
	assert.Equal(t, wuxing.ElementWood, wuxing.ElementMetal.Counters())
	assert.Equal(t, wuxing.ElementEarth, wuxing.ElementWood.Counters())
	assert.Equal(t, wuxing.ElementWater, wuxing.ElementEarth.Counters())
	assert.Equal(t, wuxing.ElementFire, wuxing.ElementWater.Counters())
	assert.Equal(t, wuxing.ElementMetal, wuxing.ElementFire.Counters())

	for _, e := range wuxing.AllElements() {
		assert.True(t, wuxing.IsCounteredBy(e, e.CounteredBy()))
		assert.Equal(t, e, e.CounteredBy().Counters())
	}
}

func TestParseElement(t *testing.T) {
	e, err := wuxing.ParseElement(" Metal ")
	require.NoError(t, err)
	assert.Equal(t, wuxing.ElementMetal, e)

	_, err = wuxing.ParseElement("aether")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseCurrencyAndBranch(t *testing.T) {
	c, err := wuxing.ParseCurrency("YANG")
	require.NoError(t, err)
	assert.Equal(t, wuxing.CurrencyYang, c)

	_, err = wuxing.ParseCurrency("gold")
	assert.True(t, errors.IsInvalidArgument(err))

	b, err := wuxing.ParseBranch("yin")
	require.NoError(t, err)
	assert.Equal(t, wuxing.BranchYin, b)
	assert.Equal(t, wuxing.CurrencyYin, b.Currency())
	assert.Equal(t, wuxing.CurrencyYang, wuxing.BranchYang.Currency())

	_, err = wuxing.ParseBranch("both")
	assert.True(t, errors.IsInvalidArgument(err))
}
