package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// diagonals are the four moves an adventure can take
var diagonals = []wuxing.Position{
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// Adventure is the outcome of one move-and-generate cycle
type Adventure struct {
	Position  wuxing.Position
	Distance  int
	Opponents []wuxing.OpponentSlot
}

// AdventureGenerator moves the player and rolls up the opponents they meet
type AdventureGenerator struct {
	rules  *Rules
	random RandomSource
}

// NewAdventureGenerator creates a generator
func NewAdventureGenerator(rules *Rules, random RandomSource) *AdventureGenerator {
	return &AdventureGenerator{rules: rules, random: random}
}

// Generate moves one diagonal step from `from` and creates the opponents.
// It fails with insufficient_elements when any element is below the
// adventure threshold.
func (g *AdventureGenerator) Generate(from wuxing.Position, inventory wuxing.Inventory) (*Adventure, error) {
	for _, e := range wuxing.AllElements() {
		if inventory[e] < g.rules.Adventure.Threshold {
			return nil, errors.Resourcef(errors.ReasonInsufficientElements,
				"every element needs at least %d to adventure, %s has %d",
				g.rules.Adventure.Threshold, e, inventory[e]).
				WithMeta("element", string(e))
		}
	}

	step, err := Choice(g.random, diagonals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to choose direction")
	}

	next := wuxing.Position{X: from.X + step.X, Y: from.Y + step.Y}
	distance := next.Distance()

	opponents, err := g.Opponents(distance)
	if err != nil {
		return nil, err
	}

	return &Adventure{
		Position:  next,
		Distance:  distance,
		Opponents: opponents,
	}, nil
}

// Opponents samples distinct elements for every slot and rolls their
// quantities for the given distance
func (g *AdventureGenerator) Opponents(distance int) ([]wuxing.OpponentSlot, error) {
	elements := wuxing.AllElements()
	if err := Shuffle(g.random, elements); err != nil {
		return nil, errors.Wrap(err, "failed to shuffle elements")
	}

	lo, hi := g.rules.Opponents.Bounds(distance)
	slots := make([]wuxing.OpponentSlot, wuxing.OpponentsPerBattle)
	for i := range slots {
		qty, err := g.random.IntBetween(lo, hi)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll opponent quantity")
		}
		slots[i] = wuxing.OpponentSlot{
			Element:          elements[i],
			Quantity:         qty,
			OriginalQuantity: qty,
		}
	}
	return slots, nil
}
