package wuxing

import (
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// GameState is the aggregate root of a player session
type GameState struct {
	PlayerID  string         `json:"player_id"`
	Position  Position       `json:"position"`
	Inventory Inventory      `json:"inventory"`
	Wallet    Wallet         `json:"wallet"`
	Skills    SkillSet       `json:"skills"`
	InBattle  bool           `json:"is_in_battle"`
	Battle    *BattleContext `json:"battle,omitempty"`
}

// NewGameState creates a state at the spawn point with every element set to
// elements and every currency set to currency
func NewGameState(playerID string, elements, currency int) *GameState {
	state := &GameState{
		PlayerID:  playerID,
		Inventory: make(Inventory, 5),
		Wallet:    make(Wallet, 2),
		Skills:    make(SkillSet, 5),
	}
	for _, e := range AllElements() {
		state.Inventory[e] = elements
		state.Skills[e] = Skill{}
	}
	for _, c := range AllCurrencies() {
		state.Wallet[c] = currency
	}
	return state
}

// Clone returns a deep copy that shares nothing with s
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := *s
	out.Inventory = s.Inventory.Clone()
	out.Wallet = s.Wallet.Clone()
	out.Skills = s.Skills.Clone()
	out.Battle = s.Battle.Clone()
	return &out
}

// Validate checks the invariants a rehydrated snapshot must satisfy
func (s *GameState) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.PlayerID == "" {
		vb.RequiredField("player_id")
	}

	for _, e := range AllElements() {
		count, ok := s.Inventory[e]
		if !ok {
			vb.Fieldf("inventory", "missing element %s", e)
		} else if count < 0 {
			vb.Fieldf("inventory", "%s is negative: %d", e, count)
		}

		skill, ok := s.Skills[e]
		if !ok {
			vb.Fieldf("skills", "missing element %s", e)
		} else if skill.YinLevel < 0 || skill.YangLevel < 0 {
			vb.Fieldf("skills", "%s has a negative level", e)
		}
	}

	for _, c := range AllCurrencies() {
		amount, ok := s.Wallet[c]
		if !ok {
			vb.Fieldf("wallet", "missing currency %s", c)
		} else if amount < 0 {
			vb.Fieldf("wallet", "%s is negative: %d", c, amount)
		}
	}

	if s.InBattle != (s.Battle != nil) {
		vb.InvalidField("battle", "battle context must exist exactly while in battle")
	}

	if s.Battle != nil {
		s.Battle.validate(vb)
	}

	return vb.Build()
}

// Validate checks the shape of a stored battle context
func (b *BattleContext) Validate() error {
	vb := errors.NewValidationBuilder()
	b.validate(vb)
	return vb.Build()
}

func (b *BattleContext) validate(vb *errors.ValidationBuilder) {
	if len(b.Opponents) != OpponentsPerBattle {
		vb.Fieldf("battle.opponents", "expected %d slots, got %d", OpponentsPerBattle, len(b.Opponents))
	}
	if len(b.Rounds) > RoundsPerBattle {
		vb.Fieldf("battle.rounds", "at most %d rounds allowed, got %d", RoundsPerBattle, len(b.Rounds))
	}
	switch b.Result {
	case ResultPending, ResultWin, ResultLose:
	default:
		vb.Fieldf("battle.result", "unexpected result %q", b.Result)
	}
}

// CanStartAdventure reports whether every element is at least threshold
func (s *GameState) CanStartAdventure(threshold int) bool {
	for _, e := range AllElements() {
		if s.Inventory[e] < threshold {
			return false
		}
	}
	return true
}
