package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRandom replays queued values in order. IntBetween falls back to
// lo and Chance to false once their queues run dry.
type ScriptedRandom struct {
	mu      sync.Mutex
	ints    []int
	chances []bool
}

// NewScriptedRandom creates an empty script
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{}
}

// QueueInts appends values for IntBetween
func (r *ScriptedRandom) QueueInts(values ...int) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, values...)
	return r
}

// QueueChances appends values for Chance
func (r *ScriptedRandom) QueueChances(values ...bool) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chances = append(r.chances, values...)
	return r
}

// QueueIdentityShuffle queues the draws that make a Fisher-Yates shuffle of
// n items keep their order
func (r *ScriptedRandom) QueueIdentityShuffle(n int) *ScriptedRandom {
	for i := n - 1; i > 0; i-- {
		r.QueueInts(i)
	}
	return r
}

// IntBetween pops the next queued int, which must lie in [lo, hi]
func (r *ScriptedRandom) IntBetween(lo, hi int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ints) == 0 {
		return lo, nil
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < lo || v > hi {
		return 0, fmt.Errorf("scripted value %d outside [%d, %d]", v, lo, hi)
	}
	return v, nil
}

// Chance pops the next queued outcome
func (r *ScriptedRandom) Chance(_ int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.chances) == 0 {
		return false, nil
	}
	v := r.chances[0]
	r.chances = r.chances[1:]
	return v, nil
}

// Remaining reports how many queued ints and chances are unused
func (r *ScriptedRandom) Remaining() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ints), len(r.chances)
}
