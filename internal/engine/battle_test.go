package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

type BattleEngineTestSuite struct {
	suite.Suite
	battles *engine.BattleEngine
	state   *wuxing.GameState
}

func TestBattleEngineSuite(t *testing.T) {
	suite.Run(t, new(BattleEngineTestSuite))
}

func (s *BattleEngineTestSuite) SetupTest() {
	rules := engine.DefaultRules()
	ledger := engine.NewEconomyLedger(rules, testutils.NewScriptedRandom())
	s.battles = engine.NewBattleEngine(engine.NewCounterResolver(rules.Counter), ledger)
	s.state = testutils.CreateTestBattleState(testutils.TestPlayerID,
		testutils.Opponent(wuxing.ElementWood, 10),
		testutils.Opponent(wuxing.ElementMetal, 10),
		testutils.Opponent(wuxing.ElementFire, 9),
	)
}

func (s *BattleEngineTestSuite) reveal(element wuxing.Element, slot int) *engine.RevealOutcome {
	s.Require().NoError(s.battles.SelectElement(s.state, element))
	outcome, err := s.battles.Reveal(s.state, slot)
	s.Require().NoError(err)
	return outcome
}

func (s *BattleEngineTestSuite) TestMetalBeatsWood() {
	outcome := s.reveal(wuxing.ElementMetal, 0)

	s.Equal(5, outcome.Round.OpponentQuantity)
	s.Equal(10, outcome.Round.PlayerQuantity)
	s.True(outcome.Round.Won)
	s.False(outcome.Resolved)

	slot := s.state.Battle.Opponents[0]
	s.True(slot.Revealed)
	s.Equal(5, slot.Quantity)
	s.Equal(10, slot.OriginalQuantity)
	s.Empty(s.state.Battle.SelectedElement)
	s.Equal(10, s.state.Inventory[wuxing.ElementMetal], "selection does not consume inventory")
}

func (s *BattleEngineTestSuite) TestSelectElementFailures() {
	s.state.Inventory[wuxing.ElementEarth] = 0
	err := s.battles.SelectElement(s.state, wuxing.ElementEarth)
	s.True(errors.HasReason(err, errors.ReasonInsufficientElement))
	s.True(errors.IsResourceFailure(err))

	err = s.battles.SelectElement(s.state, wuxing.Element("aether"))
	s.True(errors.HasReason(err, errors.ReasonUnknownElement))

	idle := testutils.CreateTestGameState(testutils.TestPlayerID)
	err = s.battles.SelectElement(idle, wuxing.ElementMetal)
	s.True(errors.HasReason(err, errors.ReasonNotInBattle))
	s.True(errors.IsValidationFailure(err))
}

func (s *BattleEngineTestSuite) TestRevealFailures() {
	_, err := s.battles.Reveal(s.state, 0)
	s.True(errors.HasReason(err, errors.ReasonNoElementSelected))

	s.Require().NoError(s.battles.SelectElement(s.state, wuxing.ElementMetal))
	for _, idx := range []int{-1, 3} {
		_, err = s.battles.Reveal(s.state, idx)
		s.True(errors.HasReason(err, errors.ReasonInvalidIndex))
		s.True(errors.IsInvalidArgument(err))
	}

	_, err = s.battles.Reveal(s.state, 0)
	s.Require().NoError(err)

	s.Require().NoError(s.battles.SelectElement(s.state, wuxing.ElementMetal))
	_, err = s.battles.Reveal(s.state, 0)
	s.True(errors.HasReason(err, errors.ReasonAlreadyRevealed))
}

func (s *BattleEngineTestSuite) TestThreeRevealsWin() {
	s.reveal(wuxing.ElementMetal, 0) // 10 vs 5, won
	s.reveal(wuxing.ElementWood, 1)  // 10 vs 20, lost
	outcome := s.reveal(wuxing.ElementWater, 2)

	// water counters fire: 9 -> 4
	s.True(outcome.Round.Won)
	s.True(outcome.Resolved)
	s.Equal(wuxing.ResultWin, outcome.Result)
	s.Equal(wuxing.ResultWin, s.state.Battle.Result)
	s.False(s.state.Battle.ReversalAvailable)
	s.Empty(outcome.Losses)
	s.Equal(10, s.state.Inventory[wuxing.ElementWood], "a won battle debits nothing")

	err := s.battles.SelectElement(s.state, wuxing.ElementMetal)
	s.True(errors.HasReason(err, errors.ReasonBattleNotPending))
}

func (s *BattleEngineTestSuite) TestThreeRevealsLoseDebitsCommittedQuantities() {
	s.state.Inventory[wuxing.ElementWood] = 12
	s.reveal(wuxing.ElementWood, 1) // 12 vs 20, lost
	s.reveal(wuxing.ElementWood, 0) // 12 vs 10, won
	s.state.Inventory[wuxing.ElementMetal] = 4
	outcome := s.reveal(wuxing.ElementMetal, 2) // fire counters metal: 4 vs 18, lost

	s.True(outcome.Resolved)
	s.Equal(wuxing.ResultLose, outcome.Result)
	s.True(s.state.Battle.ReversalAvailable)
	s.Equal(map[wuxing.Element]int{wuxing.ElementWood: 12, wuxing.ElementMetal: 4}, outcome.Losses)
	s.Equal(0, s.state.Inventory[wuxing.ElementWood])
	s.Equal(0, s.state.Inventory[wuxing.ElementMetal])
	s.Equal(10, s.state.Inventory[wuxing.ElementFire])
}

func (s *BattleEngineTestSuite) TestLossFloorsAtZero() {
	s.reveal(wuxing.ElementWood, 1) // 10 vs 20
	s.state.Inventory[wuxing.ElementWood] = 15
	s.reveal(wuxing.ElementWood, 0) // 15 vs 10, won
	s.state.Inventory[wuxing.ElementWood] = 3
	s.state.Inventory[wuxing.ElementMetal] = 1
	outcome := s.reveal(wuxing.ElementMetal, 2) // 1 vs 18, lost

	s.Equal(wuxing.ResultLose, outcome.Result)
	s.Equal(3, outcome.Losses[wuxing.ElementWood], "only what remains can be lost")
	s.Equal(0, s.state.Inventory[wuxing.ElementWood])
	s.Equal(0, s.state.Inventory[wuxing.ElementMetal])
}

func (s *BattleEngineTestSuite) TestClaimRound() {
	s.state = testutils.CreateTestWonBattleState(testutils.TestPlayerID)

	_, err := s.battles.ClaimRound(s.state, 1)
	s.True(errors.HasReason(err, errors.ReasonInvalidSelection))

	_, err = s.battles.ClaimRound(s.state, 3)
	s.True(errors.HasReason(err, errors.ReasonInvalidIndex))

	claim, err := s.battles.ClaimRound(s.state, 2)
	s.Require().NoError(err)
	s.Equal(wuxing.ElementEarth, claim.Element)
	s.Equal(4, claim.Amount)
	s.Equal(14, s.state.Inventory[wuxing.ElementEarth])
	s.False(s.state.InBattle)
	s.Nil(s.state.Battle)
	s.Equal(wuxing.Position{X: 1, Y: 1}, s.state.Position)

	_, err = s.battles.ClaimRound(s.state, 0)
	s.True(errors.HasReason(err, errors.ReasonNotInBattle), "only one claim per battle")
}

func (s *BattleEngineTestSuite) TestClaimRequiresWin() {
	_, err := s.battles.ClaimRound(s.state, 0)
	s.True(errors.HasReason(err, errors.ReasonBattleNotWon))

	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)
	_, err = s.battles.ClaimRound(s.state, 0)
	s.True(errors.HasReason(err, errors.ReasonBattleNotWon))
}

func (s *BattleEngineTestSuite) TestReverseInsufficientCurrency() {
	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)
	s.state.Wallet[wuxing.CurrencyYin] = 3
	before := s.state.Clone()

	_, err := s.battles.Reverse(s.state, 1, wuxing.CurrencyYin)
	s.Require().Error(err)
	s.True(errors.HasReason(err, errors.ReasonInsufficientCurrency))
	s.True(errors.IsResourceFailure(err))
	s.Equal(before, s.state)
}

func (s *BattleEngineTestSuite) TestReverseFlipsToWin() {
	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)

	reversal, err := s.battles.Reverse(s.state, 1, wuxing.CurrencyYin)
	s.Require().NoError(err)
	s.Equal(4, reversal.Cost)
	s.Equal(wuxing.ResultWin, reversal.Result)

	s.Equal(6, s.state.Wallet[wuxing.CurrencyYin])
	s.True(s.state.Battle.Rounds[1].Won)
	s.Equal(wuxing.ResultWin, s.state.Battle.Result)
	s.False(s.state.Battle.ReversalAvailable)
	s.Equal(0, s.state.Inventory[wuxing.ElementWood], "lost elements are not refunded")

	_, err = s.battles.Reverse(s.state, 2, wuxing.CurrencyYin)
	s.True(errors.HasReason(err, errors.ReasonReversalUnavailable))
}

func (s *BattleEngineTestSuite) TestReverseStillLosing() {
	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)
	s.state.Battle.Rounds[0].Won = false

	reversal, err := s.battles.Reverse(s.state, 2, wuxing.CurrencyYang)
	s.Require().NoError(err)
	s.Equal(10, reversal.Cost)
	s.Equal(wuxing.ResultLose, reversal.Result)
	s.True(s.state.Battle.ReversalAvailable)
	s.Equal(0, s.state.Wallet[wuxing.CurrencyYang])
}

func (s *BattleEngineTestSuite) TestReverseFailures() {
	_, err := s.battles.Reverse(s.state, 0, wuxing.CurrencyYin)
	s.True(errors.HasReason(err, errors.ReasonReversalUnavailable), "pending battles cannot be reversed")

	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)

	_, err = s.battles.Reverse(s.state, 0, wuxing.CurrencyYin)
	s.True(errors.HasReason(err, errors.ReasonRoundAlreadyWon))

	_, err = s.battles.Reverse(s.state, 5, wuxing.CurrencyYin)
	s.True(errors.HasReason(err, errors.ReasonInvalidIndex))

	_, err = s.battles.Reverse(s.state, 1, wuxing.Currency("gold"))
	s.True(errors.HasReason(err, errors.ReasonUnknownCurrency))
}

func (s *BattleEngineTestSuite) TestReverseDeficitNeverNegative() {
	s.state = testutils.CreateTestLostBattleState(testutils.TestPlayerID)
	s.state.Battle.Rounds[1].PlayerQuantity = 12
	s.state.Wallet[wuxing.CurrencyYin] = 0

	reversal, err := s.battles.Reverse(s.state, 1, wuxing.CurrencyYin)
	s.Require().NoError(err)
	s.Zero(reversal.Cost)
	s.Zero(s.state.Wallet[wuxing.CurrencyYin])
}
