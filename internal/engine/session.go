// Package engine implements the rules of the five-element battle game.
//
// Session is the entry point. Each command takes a snapshot, works on a deep
// copy and returns the new snapshot together with the events describing what
// changed. A failed command returns an error and no state, leaving the input
// untouched. The engine does no I/O; persistence and notification belong to
// the caller.
package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/idgen"
)

// Config holds the dependencies of a Session
type Config struct {
	Rules       *Rules
	Random      RandomSource
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Rules != nil {
		return c.Rules.Validate()
	}
	return nil
}

// Result is the outcome of a successful command
type Result struct {
	State  *wuxing.GameState
	Events []Event
}

// Session composes the rule components into the player-visible game
type Session struct {
	rules      *Rules
	ids        idgen.Generator
	adventures *AdventureGenerator
	battles    *BattleEngine
	ledger     *EconomyLedger
}

// NewSession creates a Session. Missing rules fall back to DefaultRules.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	ledger := NewEconomyLedger(rules, cfg.Random)
	return &Session{
		rules:      rules,
		ids:        cfg.IDGenerator,
		adventures: NewAdventureGenerator(rules, cfg.Random),
		battles:    NewBattleEngine(NewCounterResolver(rules.Counter), ledger),
		ledger:     ledger,
	}, nil
}

// Rules returns the rules the session plays by
func (s *Session) Rules() *Rules {
	return s.rules
}

// InitPlayer creates the starting state for a new player
func (s *Session) InitPlayer(playerID string) (*Result, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	state := s.newState(playerID)
	return &Result{
		State: state,
		Events: []Event{newEvent(EventPlayerInitialized,
			map[string]any{"elements": s.rules.Start.Elements, "currency": s.rules.Start.Currency},
			"player initialized: %s", playerID)},
	}, nil
}

// CanStartAdventure reports whether every element meets the adventure threshold
func (s *Session) CanStartAdventure(state *wuxing.GameState) bool {
	return !state.InBattle && state.CanStartAdventure(s.rules.Adventure.Threshold)
}

// SkillUpgradeCost prices the next level of a skill branch
func (s *Session) SkillUpgradeCost(state *wuxing.GameState, element wuxing.Element, branch wuxing.SkillBranch) (UpgradeCost, error) {
	if !element.IsValid() {
		return UpgradeCost{}, errors.InvalidSelectionf(errors.ReasonUnknownElement, "unknown element: %q", element)
	}
	if !branch.IsValid() {
		return UpgradeCost{}, errors.InvalidSelectionf(errors.ReasonUnknownBranch, "unknown skill branch: %q", branch)
	}
	return s.ledger.Cost(element, branch, state.Skills[element]), nil
}

// StartAdventure moves the player and opens a battle
func (s *Session) StartAdventure(state *wuxing.GameState) (*Result, error) {
	if state.InBattle {
		return nil, errors.Validation(errors.ReasonBattleInProgress, "finish the current battle first")
	}

	next := state.Clone()
	adventure, err := s.adventures.Generate(next.Position, next.Inventory)
	if err != nil {
		return nil, err
	}
	s.battles.Begin(next, s.ids.Generate(), adventure)

	return s.result(next, newEvent(EventAdventureStarted,
		map[string]any{
			"battle_id": next.Battle.ID,
			"x":         adventure.Position.X,
			"y":         adventure.Position.Y,
			"distance":  adventure.Distance,
		},
		"adventure started: (%d, %d) distance %d", adventure.Position.X, adventure.Position.Y, adventure.Distance)), nil
}

// SelectPlayerElement commits an element to the next reveal
func (s *Session) SelectPlayerElement(state *wuxing.GameState, element wuxing.Element) (*Result, error) {
	next := state.Clone()
	if err := s.battles.SelectElement(next, element); err != nil {
		return nil, err
	}

	return s.result(next, newEvent(EventElementSelected,
		map[string]any{"element": string(element), "quantity": next.Inventory[element]},
		"element selected: %s", element)), nil
}

// RevealOpponent resolves the selected element against a slot. The third
// reveal resolves the battle; a win also rolls a currency award.
func (s *Session) RevealOpponent(state *wuxing.GameState, slotIndex int) (*Result, error) {
	next := state.Clone()
	outcome, err := s.battles.Reveal(next, slotIndex)
	if err != nil {
		return nil, err
	}

	round := outcome.Round
	events := []Event{newEvent(EventOpponentRevealed,
		map[string]any{
			"slot_index":        round.SlotIndex,
			"player_element":    string(round.PlayerElement),
			"opponent_element":  string(round.Opponent.Element),
			"player_quantity":   round.PlayerQuantity,
			"opponent_quantity": round.OpponentQuantity,
			"won":               round.Won,
		},
		"opponent revealed: %s %d vs %s %d", round.PlayerElement, round.PlayerQuantity,
		round.Opponent.Element, round.OpponentQuantity)}

	if outcome.Resolved {
		events = append(events, resolvedEvent(next.Battle, outcome.Losses))
		if outcome.Result == wuxing.ResultWin {
			awarded, err := s.award(next)
			if err != nil {
				return nil, err
			}
			events = append(events, awarded...)
		}
	}

	return s.result(next, events...), nil
}

// SelectWinningRound claims the reward of one won round and ends the battle
func (s *Session) SelectWinningRound(state *wuxing.GameState, roundIndex int) (*Result, error) {
	next := state.Clone()
	claim, err := s.battles.ClaimRound(next, roundIndex)
	if err != nil {
		return nil, err
	}

	return s.result(next, newEvent(EventRewardClaimed,
		map[string]any{"round_index": claim.RoundIndex, "element": string(claim.Element), "amount": claim.Amount},
		"reward claimed: %d %s", claim.Amount, claim.Element)), nil
}

// UseCurrencyToReverse buys back a lost round. Turning the battle into a win
// rolls the currency award as well.
func (s *Session) UseCurrencyToReverse(state *wuxing.GameState, roundIndex int, currency wuxing.Currency) (*Result, error) {
	next := state.Clone()
	reversal, err := s.battles.Reverse(next, roundIndex, currency)
	if err != nil {
		return nil, err
	}

	events := []Event{newEvent(EventBattleReversed,
		map[string]any{
			"round_index": reversal.RoundIndex,
			"currency":    string(reversal.Currency),
			"cost":        reversal.Cost,
			"result":      string(reversal.Result),
		},
		"battle reversed: round %d for %d %s, result %s", reversal.RoundIndex, reversal.Cost,
		reversal.Currency, reversal.Result)}

	if reversal.Result == wuxing.ResultWin {
		awarded, err := s.award(next)
		if err != nil {
			return nil, err
		}
		events = append(events, awarded...)
	}

	return s.result(next, events...), nil
}

// ReplenishElements tops every element up to the replenish target
func (s *Session) ReplenishElements(state *wuxing.GameState) (*Result, error) {
	next := state.Clone()
	added := s.ledger.Replenish(next.Inventory)
	if len(added) == 0 {
		return s.result(next), nil
	}

	fields := make(map[string]any, len(added))
	for e, n := range added {
		fields[string(e)] = n
	}
	return s.result(next, newEvent(EventElementsReplenished, fields,
		"elements replenished: %d elements topped up", len(added))), nil
}

// ReturnToSpawn moves the player home and abandons any battle
func (s *Session) ReturnToSpawn(state *wuxing.GameState) (*Result, error) {
	next := state.Clone()
	next.Position = wuxing.Position{}
	s.battles.End(next)

	return s.result(next, newEvent(EventSpawnReturned, nil, "returned to spawn")), nil
}

// ResetGame restores the starting state, keeping the player ID
func (s *Session) ResetGame(state *wuxing.GameState) (*Result, error) {
	next := s.newState(state.PlayerID)

	return s.result(next, newEvent(EventGameReset,
		map[string]any{"elements": s.rules.Start.Elements, "currency": s.rules.Start.Currency},
		"game reset")), nil
}

// UpgradeSkill raises a skill branch by one level. Skills are frozen while a
// battle is pending.
func (s *Session) UpgradeSkill(state *wuxing.GameState, element wuxing.Element, branch wuxing.SkillBranch) (*Result, error) {
	if state.Battle != nil && state.Battle.Result == wuxing.ResultPending {
		return nil, errors.Validation(errors.ReasonBattleInProgress, "skills cannot change during a battle")
	}

	next := state.Clone()
	cost, err := s.ledger.UpgradeSkill(next, element, branch)
	if err != nil {
		return nil, err
	}

	skill := next.Skills[element]
	return s.result(next, newEvent(EventSkillUpgraded,
		map[string]any{
			"element":       string(element),
			"branch":        string(branch),
			"level":         skill.Level(branch),
			"element_cost":  cost.Elements,
			"currency":      string(cost.Currency),
			"currency_cost": cost.Amount,
		},
		"skill upgraded: %s %s to level %d", element, branch, skill.Level(branch))), nil
}

func (s *Session) newState(playerID string) *wuxing.GameState {
	return wuxing.NewGameState(playerID, s.rules.Start.Elements, s.rules.Start.Currency)
}

func (s *Session) award(state *wuxing.GameState) ([]Event, error) {
	award, err := s.ledger.AwardCurrency(state.Wallet, state.Battle.Distance)
	if err != nil {
		return nil, err
	}
	if award == nil {
		return nil, nil
	}
	return []Event{newEvent(EventCurrencyAwarded,
		map[string]any{"currency": string(award.Currency), "amount": award.Amount},
		"currency awarded: %d %s", award.Amount, award.Currency)}, nil
}

func (s *Session) result(state *wuxing.GameState, events ...Event) *Result {
	return &Result{State: state, Events: events}
}

func resolvedEvent(battle *wuxing.BattleContext, losses map[wuxing.Element]int) Event {
	fields := map[string]any{
		"battle_id": battle.ID,
		"result":    string(battle.Result),
		"wins":      battle.Wins(),
	}
	if len(losses) > 0 {
		lost := make(map[string]any, len(losses))
		for e, n := range losses {
			lost[string(e)] = n
		}
		fields["losses"] = lost
	}
	return newEvent(EventBattleResolved, fields, "battle resolved: %s", battle.Result)
}
