package engine

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// UpgradeCost is the price of raising a skill branch by one level
type UpgradeCost struct {
	Element  wuxing.Element  `json:"element"`
	Elements int             `json:"elements"`
	Currency wuxing.Currency `json:"currency"`
	Amount   int             `json:"amount"`
}

// Award is currency granted after a won battle
type Award struct {
	Currency wuxing.Currency
	Amount   int
}

// EconomyLedger applies debits and credits to inventories and wallets.
// Balances never go below zero.
type EconomyLedger struct {
	rules  *Rules
	random RandomSource
}

// NewEconomyLedger creates a ledger
func NewEconomyLedger(rules *Rules, random RandomSource) *EconomyLedger {
	return &EconomyLedger{rules: rules, random: random}
}

// Replenish raises every element below the replenish target to exactly the
// target. It returns the amount added per element; an empty map means
// nothing changed.
func (l *EconomyLedger) Replenish(inventory wuxing.Inventory) map[wuxing.Element]int {
	added := make(map[wuxing.Element]int)
	target := l.rules.Adventure.ReplenishTarget
	for _, e := range wuxing.AllElements() {
		if inventory[e] < target {
			added[e] = target - inventory[e]
			inventory[e] = target
		}
	}
	return added
}

// AwardCurrency rolls the currency dropped by a battle at the given
// distance. A nil award means the roll missed.
func (l *EconomyLedger) AwardCurrency(wallet wuxing.Wallet, distance int) (*Award, error) {
	miss, err := l.random.Chance(l.rules.CurrencyAward.MissPercent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll currency award")
	}
	if miss {
		return nil, nil
	}

	lo, hi := l.rules.CurrencyAward.Amount.Bounds(distance)
	amount, err := l.random.IntBetween(lo, hi)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll currency amount")
	}
	currency, err := Choice(l.random, wuxing.AllCurrencies())
	if err != nil {
		return nil, errors.Wrap(err, "failed to choose currency")
	}

	wallet[currency] += amount
	return &Award{Currency: currency, Amount: amount}, nil
}

// Cost prices the next level of a skill branch
func (l *EconomyLedger) Cost(element wuxing.Element, branch wuxing.SkillBranch, skill wuxing.Skill) UpgradeCost {
	level := skill.Level(branch)
	return UpgradeCost{
		Element:  element,
		Elements: l.rules.SkillCost.ElementBase + l.rules.SkillCost.ElementStep*level,
		Currency: branch.Currency(),
		Amount:   l.rules.SkillCost.CurrencyBase + l.rules.SkillCost.CurrencyStep*level,
	}
}

// UpgradeSkill pays for and raises one skill branch. The element being
// upgraded and the currency of the branch are debited.
func (l *EconomyLedger) UpgradeSkill(state *wuxing.GameState, element wuxing.Element, branch wuxing.SkillBranch) (UpgradeCost, error) {
	if !element.IsValid() {
		return UpgradeCost{}, errors.InvalidSelectionf(errors.ReasonUnknownElement, "unknown element: %q", element)
	}
	if !branch.IsValid() {
		return UpgradeCost{}, errors.InvalidSelectionf(errors.ReasonUnknownBranch, "unknown skill branch: %q", branch)
	}

	skill := state.Skills[element]
	cost := l.Cost(element, branch, skill)

	if state.Inventory[element] < cost.Elements {
		return UpgradeCost{}, errors.Resourcef(errors.ReasonInsufficientElement,
			"upgrade needs %d %s, have %d", cost.Elements, element, state.Inventory[element]).
			WithMeta("element", string(element))
	}
	if err := l.Spend(state.Wallet, cost.Currency, cost.Amount); err != nil {
		return UpgradeCost{}, err
	}
	l.Debit(state.Inventory, element, cost.Elements)

	if branch == wuxing.BranchYang {
		skill.YangLevel++
	} else {
		skill.YinLevel++
	}
	state.Skills[element] = skill

	return cost, nil
}

// Credit adds amount of element
func (l *EconomyLedger) Credit(inventory wuxing.Inventory, element wuxing.Element, amount int) {
	inventory[element] += amount
}

// Debit removes up to amount of element, clamping at zero, and returns what
// was actually removed
func (l *EconomyLedger) Debit(inventory wuxing.Inventory, element wuxing.Element, amount int) int {
	before := inventory[element]
	inventory[element] = max(0, before-amount)
	return before - inventory[element]
}

// Spend debits amount of currency, failing without change when the wallet
// cannot cover it
func (l *EconomyLedger) Spend(wallet wuxing.Wallet, currency wuxing.Currency, amount int) error {
	if wallet[currency] < amount {
		return errors.Resourcef(errors.ReasonInsufficientCurrency,
			"need %d %s, have %d", amount, currency, wallet[currency]).
			WithMeta("currency", string(currency)).
			WithMeta("required", amount)
	}
	wallet[currency] -= max(0, amount)
	return nil
}
