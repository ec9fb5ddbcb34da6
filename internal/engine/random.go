package engine

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_random.go -package=enginemock github.com/KirkDiggler/wuxing-api/internal/engine RandomSource

// RandomSource draws the uniform values every stochastic rule needs
type RandomSource interface {
	// IntBetween returns a uniform integer in [lo, hi]
	IntBetween(lo, hi int) (int, error)

	// Chance returns true with the given probability in percent
	Chance(percent int) (bool, error)
}

// DiceSource adapts a toolkit dice roller to RandomSource
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource creates a RandomSource backed by roller
func NewDiceSource(roller dice.Roller) *DiceSource {
	return &DiceSource{roller: roller}
}

// IntBetween rolls a die with hi-lo+1 faces and offsets it by lo
func (s *DiceSource) IntBetween(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	if hi == lo {
		return lo, nil
	}

	roll, err := s.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return lo + roll - 1, nil
}

// Chance rolls a d100 and succeeds when it lands at or below percent
func (s *DiceSource) Chance(percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}

	roll, err := s.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll")
	}
	return roll <= percent, nil
}

// Shuffle permutes items in place (Fisher-Yates)
func Shuffle[T any](src RandomSource, items []T) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := src.IntBetween(0, i)
		if err != nil {
			return err
		}
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// Choice picks one item uniformly
func Choice[T any](src RandomSource, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.InvalidArgument("cannot choose from an empty list")
	}
	idx, err := src.IntBetween(0, len(items)-1)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}

// SeededRoller is a dice.Roller with a reproducible sequence
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller whose rolls are fully determined by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}

	rolls := make([]int, count)
	for i := range rolls {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}
