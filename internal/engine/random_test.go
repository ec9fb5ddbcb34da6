package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	enginemock "github.com/KirkDiggler/wuxing-api/internal/engine/mock"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

type fixedRoller struct {
	value int
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.value, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func TestDiceSourceIntBetween(t *testing.T) {
	low := &fixedRoller{value: 1}
	v, err := engine.NewDiceSource(low).IntBetween(5, 15)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{11}, low.sizes)

	high := &fixedRoller{value: 11}
	v, err = engine.NewDiceSource(high).IntBetween(5, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, v)

	v, err = engine.NewDiceSource(high).IntBetween(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = engine.NewDiceSource(high).IntBetween(3, 2)
	assert.Error(t, err)
}

func TestDiceSourceChance(t *testing.T) {
	hit, err := engine.NewDiceSource(&fixedRoller{value: 30}).Chance(30)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = engine.NewDiceSource(&fixedRoller{value: 31}).Chance(30)
	require.NoError(t, err)
	assert.False(t, hit)

	never := &fixedRoller{value: 1}
	hit, err = engine.NewDiceSource(never).Chance(0)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, never.sizes, "degenerate chances should not roll")
}

func TestSeededRollerIsReproducible(t *testing.T) {
	a := engine.NewSeededRoller(42)
	b := engine.NewSeededRoller(42)

	for i := 0; i < 100; i++ {
		ra, err := a.Roll(20)
		require.NoError(t, err)
		rb, err := b.Roll(20)
		require.NoError(t, err)

		assert.Equal(t, ra, rb)
		assert.GreaterOrEqual(t, ra, 1)
		assert.LessOrEqual(t, ra, 20)
	}

	rolls, err := a.RollN(4, 6)
	require.NoError(t, err)
	assert.Len(t, rolls, 4)

	_, err = a.Roll(0)
	assert.Error(t, err)
}

func TestShuffleWithIdentityScript(t *testing.T) {
	random := testutils.NewScriptedRandom().QueueIdentityShuffle(5)
	elements := wuxing.AllElements()

	require.NoError(t, engine.Shuffle(random, elements))
	assert.Equal(t, wuxing.AllElements(), elements)
}

func TestChoiceUsesIndexFromSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	random := enginemock.NewMockRandomSource(ctrl)
	random.EXPECT().IntBetween(0, 1).Return(1, nil)

	c, err := engine.Choice(random, wuxing.AllCurrencies())
	require.NoError(t, err)
	assert.Equal(t, wuxing.CurrencyYang, c)

	_, err = engine.Choice(random, []wuxing.Currency{})
	assert.Error(t, err)
}
