package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

type EconomyLedgerTestSuite struct {
	suite.Suite
	random *testutils.ScriptedRandom
	ledger *engine.EconomyLedger
	state  *wuxing.GameState
}

func TestEconomyLedgerSuite(t *testing.T) {
	suite.Run(t, new(EconomyLedgerTestSuite))
}

func (s *EconomyLedgerTestSuite) SetupTest() {
	s.random = testutils.NewScriptedRandom()
	s.ledger = engine.NewEconomyLedger(engine.DefaultRules(), s.random)
	s.state = testutils.CreateTestGameState(testutils.TestPlayerID)
}

func (s *EconomyLedgerTestSuite) TestReplenishIsIdempotent() {
	s.state.Inventory[wuxing.ElementFire] = 3
	s.state.Inventory[wuxing.ElementWater] = 0
	s.state.Inventory[wuxing.ElementMetal] = 25

	added := s.ledger.Replenish(s.state.Inventory)
	s.Equal(map[wuxing.Element]int{wuxing.ElementFire: 7, wuxing.ElementWater: 10}, added)
	once := s.state.Inventory.Clone()

	s.Empty(s.ledger.Replenish(s.state.Inventory))
	s.Equal(once, s.state.Inventory)
	s.Equal(25, s.state.Inventory[wuxing.ElementMetal], "replenish never lowers an element")
	s.Equal(10, s.state.Inventory[wuxing.ElementFire], "replenish sets exactly the target")
}

func (s *EconomyLedgerTestSuite) TestAwardCurrencyMiss() {
	s.random.QueueChances(true)

	award, err := s.ledger.AwardCurrency(s.state.Wallet, 4)
	s.Require().NoError(err)
	s.Nil(award)
	s.Equal(10, s.state.Wallet[wuxing.CurrencyYin])
	s.Equal(10, s.state.Wallet[wuxing.CurrencyYang])
}

func (s *EconomyLedgerTestSuite) TestAwardCurrencyScalesWithDistance() {
	// distance 7 shifts the range to [3, 7]
	s.random.QueueChances(false).QueueInts(7, 1)

	award, err := s.ledger.AwardCurrency(s.state.Wallet, 7)
	s.Require().NoError(err)
	s.Require().NotNil(award)
	s.Equal(wuxing.CurrencyYang, award.Currency)
	s.Equal(7, award.Amount)
	s.Equal(17, s.state.Wallet[wuxing.CurrencyYang])
}

func (s *EconomyLedgerTestSuite) TestAwardCurrencyRejectsOutOfRangeRoll() {
	s.random.QueueChances(false).QueueInts(2)

	_, err := s.ledger.AwardCurrency(s.state.Wallet, 7)
	s.Error(err)
}

func (s *EconomyLedgerTestSuite) TestUpgradeCostProgression() {
	cost := s.ledger.Cost(wuxing.ElementFire, wuxing.BranchYin, s.state.Skills[wuxing.ElementFire])
	s.Equal(10, cost.Elements)
	s.Equal(3, cost.Amount)
	s.Equal(wuxing.CurrencyYin, cost.Currency)

	s.state.Inventory[wuxing.ElementFire] = 40
	paid, err := s.ledger.UpgradeSkill(s.state, wuxing.ElementFire, wuxing.BranchYin)
	s.Require().NoError(err)
	s.Equal(cost, paid)
	s.Equal(1, s.state.Skills[wuxing.ElementFire].YinLevel)
	s.Equal(0, s.state.Skills[wuxing.ElementFire].YangLevel)
	s.Equal(30, s.state.Inventory[wuxing.ElementFire])
	s.Equal(7, s.state.Wallet[wuxing.CurrencyYin])

	next := s.ledger.Cost(wuxing.ElementFire, wuxing.BranchYin, s.state.Skills[wuxing.ElementFire])
	s.Equal(15, next.Elements)
	s.Equal(5, next.Amount)
}

func (s *EconomyLedgerTestSuite) TestUpgradeYangPaysYang() {
	_, err := s.ledger.UpgradeSkill(s.state, wuxing.ElementWood, wuxing.BranchYang)
	s.Require().NoError(err)
	s.Equal(1, s.state.Skills[wuxing.ElementWood].YangLevel)
	s.Equal(0, s.state.Inventory[wuxing.ElementWood])
	s.Equal(7, s.state.Wallet[wuxing.CurrencyYang])
	s.Equal(10, s.state.Wallet[wuxing.CurrencyYin])
}

func (s *EconomyLedgerTestSuite) TestUpgradeFailuresLeaveStateUntouched() {
	testCases := []struct {
		name   string
		mutate func(*wuxing.GameState)
		reason errors.Reason
	}{
		{
			name:   "insufficient element",
			mutate: func(st *wuxing.GameState) { st.Inventory[wuxing.ElementEarth] = 9 },
			reason: errors.ReasonInsufficientElement,
		},
		{
			name:   "insufficient currency",
			mutate: func(st *wuxing.GameState) { st.Wallet[wuxing.CurrencyYin] = 2 },
			reason: errors.ReasonInsufficientCurrency,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state := testutils.CreateTestGameState(testutils.TestPlayerID)
			tc.mutate(state)
			before := state.Clone()

			_, err := s.ledger.UpgradeSkill(state, wuxing.ElementEarth, wuxing.BranchYin)
			s.Require().Error(err)
			s.True(errors.HasReason(err, tc.reason))
			s.Equal(before, state)
		})
	}
}

func (s *EconomyLedgerTestSuite) TestDebitClampsAtZero() {
	removed := s.ledger.Debit(s.state.Inventory, wuxing.ElementMetal, 25)
	s.Equal(10, removed)
	s.Equal(0, s.state.Inventory[wuxing.ElementMetal])

	s.ledger.Credit(s.state.Inventory, wuxing.ElementMetal, 4)
	s.Equal(4, s.state.Inventory[wuxing.ElementMetal])
}
