package wuxing

import (
	"maps"
	"slices"
)

// OpponentsPerBattle is the number of opponent slots generated per adventure
const OpponentsPerBattle = 3

// RoundsPerBattle is the number of rounds that must be revealed before a battle resolves
const RoundsPerBattle = 3

// Position is a grid coordinate relative to the spawn point
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Distance returns the Manhattan distance from the origin
func (p Position) Distance() int {
	return abs(p.X) + abs(p.Y)
}

// Inventory holds the count of every element
type Inventory map[Element]int

// Clone returns an independent copy
func (i Inventory) Clone() Inventory {
	return maps.Clone(i)
}

// Wallet holds the amount of every currency
type Wallet map[Currency]int

// Clone returns an independent copy
func (w Wallet) Clone() Wallet {
	return maps.Clone(w)
}

// Skill tracks the two upgrade branches of one element.
// Yin strengthens the counter effect, yang softens being countered.
type Skill struct {
	YinLevel  int `json:"yin_level"`
	YangLevel int `json:"yang_level"`
}

// Level returns the level of the given branch
func (s Skill) Level(branch SkillBranch) int {
	if branch == BranchYang {
		return s.YangLevel
	}
	return s.YinLevel
}

// SkillSet holds one Skill per element
type SkillSet map[Element]Skill

// Clone returns an independent copy
func (s SkillSet) Clone() SkillSet {
	return maps.Clone(s)
}

// OpponentSlot is one of the hidden opponent elements of a battle
type OpponentSlot struct {
	Element          Element `json:"element"`
	Quantity         int     `json:"quantity"`
	Revealed         bool    `json:"revealed"`
	OriginalQuantity int     `json:"original_quantity"`
}

// BattleRound records one reveal
type BattleRound struct {
	PlayerElement    Element      `json:"player_element"`
	Opponent         OpponentSlot `json:"opponent"`
	PlayerQuantity   int          `json:"player_quantity"`
	OpponentQuantity int          `json:"opponent_quantity"`
	Won              bool         `json:"won"`
	SlotIndex        int          `json:"slot_index"`
}

// BattleContext is the state of the battle produced by one adventure
type BattleContext struct {
	ID                string         `json:"id"`
	Distance          int            `json:"distance"`
	Opponents         []OpponentSlot `json:"opponents"`
	Rounds            []BattleRound  `json:"rounds"`
	SelectedElement   Element        `json:"selected_element,omitempty"`
	Result            BattleResult   `json:"result"`
	ReversalAvailable bool           `json:"reversal_available"`
}

// Clone returns an independent copy
func (b *BattleContext) Clone() *BattleContext {
	if b == nil {
		return nil
	}
	out := *b
	out.Opponents = slices.Clone(b.Opponents)
	out.Rounds = slices.Clone(b.Rounds)
	return &out
}

// Wins counts the rounds the player won
func (b *BattleContext) Wins() int {
	wins := 0
	for _, r := range b.Rounds {
		if r.Won {
			wins++
		}
	}
	return wins
}

// IsComplete reports whether every round has been revealed
func (b *BattleContext) IsComplete() bool {
	return len(b.Rounds) >= RoundsPerBattle
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
