package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// winsRequired is the majority of a best-of-three
const winsRequired = wuxing.RoundsPerBattle/2 + 1

// RevealOutcome describes a single reveal
type RevealOutcome struct {
	Round wuxing.BattleRound
	// Resolved is set when this reveal completed the battle
	Resolved bool
	Result   wuxing.BattleResult
	// Losses holds the elements debited when the battle was lost
	Losses map[wuxing.Element]int
}

// Claim describes a reward taken from a won round
type Claim struct {
	RoundIndex int
	Element    wuxing.Element
	Amount     int
}

// Reversal describes a lost round bought back with currency
type Reversal struct {
	RoundIndex int
	Currency   wuxing.Currency
	Cost       int
	Result     wuxing.BattleResult
}

// BattleEngine runs the round-by-round battle state machine. Every method
// mutates the state it is given, so callers pass a clone.
type BattleEngine struct {
	resolver *CounterResolver
	ledger   *EconomyLedger
}

// NewBattleEngine creates a battle engine
func NewBattleEngine(resolver *CounterResolver, ledger *EconomyLedger) *BattleEngine {
	return &BattleEngine{resolver: resolver, ledger: ledger}
}

// Begin opens a battle against the adventure's opponents
func (b *BattleEngine) Begin(state *wuxing.GameState, battleID string, adventure *Adventure) {
	state.Position = adventure.Position
	state.InBattle = true
	state.Battle = &wuxing.BattleContext{
		ID:        battleID,
		Distance:  adventure.Distance,
		Opponents: adventure.Opponents,
		Rounds:    make([]wuxing.BattleRound, 0, wuxing.RoundsPerBattle),
		Result:    wuxing.ResultPending,
	}
}

// End discards the battle
func (b *BattleEngine) End(state *wuxing.GameState) {
	state.InBattle = false
	state.Battle = nil
}

// SelectElement records the element the player commits to the next reveal
func (b *BattleEngine) SelectElement(state *wuxing.GameState, element wuxing.Element) error {
	battle, err := pendingBattle(state)
	if err != nil {
		return err
	}
	if !element.IsValid() {
		return errors.InvalidSelectionf(errors.ReasonUnknownElement, "unknown element: %q", element)
	}
	if state.Inventory[element] <= 0 {
		return errors.Resourcef(errors.ReasonInsufficientElement, "no %s left to commit", element).
			WithMeta("element", string(element))
	}

	battle.SelectedElement = element
	return nil
}

// Reveal resolves the selected element against an opponent slot. The third
// reveal decides the battle.
func (b *BattleEngine) Reveal(state *wuxing.GameState, slotIndex int) (*RevealOutcome, error) {
	battle, err := pendingBattle(state)
	if err != nil {
		return nil, err
	}
	if battle.SelectedElement == "" {
		return nil, errors.Validation(errors.ReasonNoElementSelected, "select an element before revealing")
	}
	if slotIndex < 0 || slotIndex >= len(battle.Opponents) {
		return nil, errors.InvalidSelectionf(errors.ReasonInvalidIndex,
			"slot index %d out of range [0, %d)", slotIndex, len(battle.Opponents))
	}
	slot := &battle.Opponents[slotIndex]
	if slot.Revealed {
		return nil, errors.Validationf(errors.ReasonAlreadyRevealed, "slot %d is already revealed", slotIndex)
	}

	element := battle.SelectedElement
	playerQty := state.Inventory[element]
	adjusted := b.resolver.Resolve(slot.OriginalQuantity, element, slot.Element, state.Skills[element])

	slot.Quantity = adjusted
	slot.Revealed = true

	round := wuxing.BattleRound{
		PlayerElement:    element,
		Opponent:         *slot,
		PlayerQuantity:   playerQty,
		OpponentQuantity: adjusted,
		Won:              playerQty > adjusted,
		SlotIndex:        slotIndex,
	}
	battle.Rounds = append(battle.Rounds, round)
	battle.SelectedElement = ""

	outcome := &RevealOutcome{Round: round, Result: wuxing.ResultPending}
	if !battle.IsComplete() {
		return outcome, nil
	}

	outcome.Resolved = true
	if battle.Wins() >= winsRequired {
		battle.Result = wuxing.ResultWin
	} else {
		battle.Result = wuxing.ResultLose
		battle.ReversalAvailable = true
		outcome.Losses = b.applyLosses(state.Inventory, battle.Rounds)
	}
	outcome.Result = battle.Result
	return outcome, nil
}

// ClaimRound credits the adjusted opponent quantity of a won round and ends
// the battle. Only one round may be claimed.
func (b *BattleEngine) ClaimRound(state *wuxing.GameState, roundIndex int) (*Claim, error) {
	battle, err := activeBattle(state)
	if err != nil {
		return nil, err
	}
	if battle.Result != wuxing.ResultWin {
		return nil, errors.Validationf(errors.ReasonBattleNotWon, "battle result is %q", battle.Result)
	}
	if roundIndex < 0 || roundIndex >= len(battle.Rounds) {
		return nil, errors.InvalidSelectionf(errors.ReasonInvalidIndex,
			"round index %d out of range [0, %d)", roundIndex, len(battle.Rounds))
	}
	round := battle.Rounds[roundIndex]
	if !round.Won {
		return nil, errors.InvalidSelectionf(errors.ReasonInvalidSelection, "round %d was not won", roundIndex)
	}

	b.ledger.Credit(state.Inventory, round.Opponent.Element, round.OpponentQuantity)
	b.End(state)

	return &Claim{
		RoundIndex: roundIndex,
		Element:    round.Opponent.Element,
		Amount:     round.OpponentQuantity,
	}, nil
}

// Reverse spends currency to flip a lost round. The deficit is the gap
// between the opponent and player quantities, never below zero. Elements
// lost when the battle resolved are not refunded.
func (b *BattleEngine) Reverse(state *wuxing.GameState, roundIndex int, currency wuxing.Currency) (*Reversal, error) {
	battle, err := activeBattle(state)
	if err != nil {
		return nil, err
	}
	if battle.Result != wuxing.ResultLose || !battle.ReversalAvailable {
		return nil, errors.Validation(errors.ReasonReversalUnavailable, "reversal is only available after a lost battle")
	}
	if !currency.IsValid() {
		return nil, errors.InvalidSelectionf(errors.ReasonUnknownCurrency, "unknown currency: %q", currency)
	}
	if roundIndex < 0 || roundIndex >= len(battle.Rounds) {
		return nil, errors.InvalidSelectionf(errors.ReasonInvalidIndex,
			"round index %d out of range [0, %d)", roundIndex, len(battle.Rounds))
	}
	round := &battle.Rounds[roundIndex]
	if round.Won {
		return nil, errors.Validationf(errors.ReasonRoundAlreadyWon, "round %d is already won", roundIndex)
	}

	deficit := max(0, round.OpponentQuantity-round.PlayerQuantity)
	if err := b.ledger.Spend(state.Wallet, currency, deficit); err != nil {
		return nil, errors.Wrapf(err, "reversal of round %d costs %d %s", roundIndex, deficit, currency)
	}
	round.Won = true

	won := battle.Wins() >= winsRequired
	if won {
		battle.Result = wuxing.ResultWin
	} else {
		battle.Result = wuxing.ResultLose
	}
	battle.ReversalAvailable = !won

	return &Reversal{
		RoundIndex: roundIndex,
		Currency:   currency,
		Cost:       deficit,
		Result:     battle.Result,
	}, nil
}

// applyLosses debits the committed quantity of every lost round, summed per
// element and floored at zero
func (b *BattleEngine) applyLosses(inventory wuxing.Inventory, rounds []wuxing.BattleRound) map[wuxing.Element]int {
	committed := make(map[wuxing.Element]int)
	for _, r := range rounds {
		if !r.Won {
			committed[r.PlayerElement] += r.PlayerQuantity
		}
	}

	losses := make(map[wuxing.Element]int, len(committed))
	for e, amount := range committed {
		losses[e] = b.ledger.Debit(inventory, e, amount)
	}
	return losses
}

func activeBattle(state *wuxing.GameState) (*wuxing.BattleContext, error) {
	if !state.InBattle || state.Battle == nil {
		return nil, errors.Validation(errors.ReasonNotInBattle, "no battle in progress")
	}
	return state.Battle, nil
}

func pendingBattle(state *wuxing.GameState) (*wuxing.BattleContext, error) {
	battle, err := activeBattle(state)
	if err != nil {
		return nil, err
	}
	if battle.Result != wuxing.ResultPending {
		return nil, errors.Validationf(errors.ReasonBattleNotPending, "battle is already resolved: %s", battle.Result)
	}
	return battle, nil
}
