package testutils

import (
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
)

const (
	// TestPlayerID is the default player for test fixtures
	TestPlayerID = "player-test-001"

	// TestBattleID is the default battle for test fixtures
	TestBattleID = "battle-test-001"
)

// CreateTestGameState creates a fresh player at spawn with 10 of everything
func CreateTestGameState(playerID string) *wuxing.GameState {
	return wuxing.NewGameState(playerID, 10, 10)
}

// CreateTestBattleState creates a player one step from spawn with a pending
// battle against the given opponents
func CreateTestBattleState(playerID string, opponents ...wuxing.OpponentSlot) *wuxing.GameState {
	state := CreateTestGameState(playerID)
	state.Position = wuxing.Position{X: 1, Y: 1}
	state.InBattle = true
	state.Battle = &wuxing.BattleContext{
		ID:        TestBattleID,
		Distance:  2,
		Opponents: opponents,
		Rounds:    []wuxing.BattleRound{},
		Result:    wuxing.ResultPending,
	}
	return state
}

// Opponent creates an unrevealed opponent slot
func Opponent(element wuxing.Element, quantity int) wuxing.OpponentSlot {
	return wuxing.OpponentSlot{
		Element:          element,
		Quantity:         quantity,
		OriginalQuantity: quantity,
	}
}

// CreateTestLostBattleState creates a resolved, lost battle. Round 0 was won
// 10 vs 5; rounds 1 and 2 were lost 8 vs 12 and 10 vs 20. The inventory
// already reflects the loss debit.
func CreateTestLostBattleState(playerID string) *wuxing.GameState {
	state := CreateTestBattleState(playerID,
		revealed(wuxing.ElementWood, 10, 5),
		revealed(wuxing.ElementWater, 12, 12),
		revealed(wuxing.ElementMetal, 10, 20),
	)
	state.Battle.Rounds = []wuxing.BattleRound{
		round(0, wuxing.ElementMetal, 10, state.Battle.Opponents[0], true),
		round(1, wuxing.ElementWood, 8, state.Battle.Opponents[1], false),
		round(2, wuxing.ElementWood, 10, state.Battle.Opponents[2], false),
	}
	state.Battle.Result = wuxing.ResultLose
	state.Battle.ReversalAvailable = true
	state.Inventory[wuxing.ElementWood] = 0
	return state
}

// CreateTestWonBattleState creates a resolved, won battle. Rounds 0 and 2
// were won; round 1 was lost.
func CreateTestWonBattleState(playerID string) *wuxing.GameState {
	state := CreateTestBattleState(playerID,
		revealed(wuxing.ElementWood, 10, 5),
		revealed(wuxing.ElementFire, 14, 14),
		revealed(wuxing.ElementEarth, 8, 4),
	)
	state.Battle.Rounds = []wuxing.BattleRound{
		round(0, wuxing.ElementMetal, 10, state.Battle.Opponents[0], true),
		round(1, wuxing.ElementEarth, 10, state.Battle.Opponents[1], false),
		round(2, wuxing.ElementWood, 10, state.Battle.Opponents[2], true),
	}
	state.Battle.Result = wuxing.ResultWin
	return state
}

func revealed(element wuxing.Element, original, adjusted int) wuxing.OpponentSlot {
	return wuxing.OpponentSlot{
		Element:          element,
		Quantity:         adjusted,
		Revealed:         true,
		OriginalQuantity: original,
	}
}

func round(slot int, player wuxing.Element, playerQty int, opponent wuxing.OpponentSlot, won bool) wuxing.BattleRound {
	return wuxing.BattleRound{
		PlayerElement:    player,
		Opponent:         opponent,
		PlayerQuantity:   playerQty,
		OpponentQuantity: opponent.Quantity,
		Won:              won,
		SlotIndex:        slot,
	}
}
