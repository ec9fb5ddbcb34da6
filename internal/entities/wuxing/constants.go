// Package wuxing holds the data model of the five-element battle game
package wuxing

import (
	"strings"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// Element is one of the five elemental resources
type Element string

// Element constants
const (
	ElementMetal Element = "metal"
	ElementWood  Element = "wood"
	ElementWater Element = "water"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
)

// Currency is one of the two currencies
type Currency string

// Currency constants
const (
	CurrencyYin  Currency = "yin"
	CurrencyYang Currency = "yang"
)

// SkillBranch selects which level of a skill an upgrade raises
type SkillBranch string

// Skill branch constants
const (
	BranchYin  SkillBranch = "yin"
	BranchYang SkillBranch = "yang"
)

// BattleResult is the outcome of a battle
type BattleResult string

// Battle result constants. ResultNone is the zero value.
const (
	ResultNone    BattleResult = ""
	ResultPending BattleResult = "pending"
	ResultWin     BattleResult = "win"
	ResultLose    BattleResult = "lose"
)

// counters maps each element to the element it counters.
// Metal -> Wood -> Earth -> Water -> Fire -> Metal
var counters = map[Element]Element{
	ElementMetal: ElementWood,
	ElementWood:  ElementEarth,
	ElementEarth: ElementWater,
	ElementWater: ElementFire,
	ElementFire:  ElementMetal,
}

// AllElements returns the five elements in display order
func AllElements() []Element {
	return []Element{ElementMetal, ElementWood, ElementWater, ElementFire, ElementEarth}
}

// AllCurrencies returns both currencies
func AllCurrencies() []Currency {
	return []Currency{CurrencyYin, CurrencyYang}
}

// IsValid reports whether e is one of the five elements
func (e Element) IsValid() bool {
	_, ok := counters[e]
	return ok
}

// Counters returns the element that e counters
func (e Element) Counters() Element {
	return counters[e]
}

// CounteredBy returns the element that counters e
func (e Element) CounteredBy() Element {
	for attacker, target := range counters {
		if target == e {
			return attacker
		}
	}
	return ""
}

// DoesCounter reports whether a counters b
func DoesCounter(a, b Element) bool {
	return counters[a] == b
}

// IsCounteredBy reports whether a is countered by b
func IsCounteredBy(a, b Element) bool {
	return counters[b] == a
}

// IsValid reports whether c is a known currency
func (c Currency) IsValid() bool {
	return c == CurrencyYin || c == CurrencyYang
}

// IsValid reports whether b is a known skill branch
func (b SkillBranch) IsValid() bool {
	return b == BranchYin || b == BranchYang
}

// Currency returns the currency an upgrade of this branch is paid with
func (b SkillBranch) Currency() Currency {
	if b == BranchYang {
		return CurrencyYang
	}
	return CurrencyYin
}

// ParseElement converts boundary input into an Element
func ParseElement(s string) (Element, error) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", errors.InvalidSelectionf(errors.ReasonUnknownElement, "unknown element: %q", s)
	}
	return e, nil
}

// ParseCurrency converts boundary input into a Currency
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", errors.InvalidSelectionf(errors.ReasonUnknownCurrency, "unknown currency: %q", s)
	}
	return c, nil
}

// ParseBranch converts boundary input into a SkillBranch
func ParseBranch(s string) (SkillBranch, error) {
	b := SkillBranch(strings.ToLower(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", errors.InvalidSelectionf(errors.ReasonUnknownBranch, "unknown skill branch: %q", s)
	}
	return b, nil
}
