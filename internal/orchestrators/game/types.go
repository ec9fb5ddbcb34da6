package game

import (
	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
)

// CommandOutput is returned by every state-changing command
type CommandOutput struct {
	State  *wuxing.GameState
	Events []engine.Event
}

// InitPlayerInput defines the request for creating a player
type InitPlayerInput struct {
	PlayerID string
}

// GetStateInput defines the request for reading a player's state
type GetStateInput struct {
	PlayerID string
}

// GetStateOutput defines the response for reading a player's state
type GetStateOutput struct {
	State *wuxing.GameState
}

// StartAdventureInput defines the request for starting an adventure
type StartAdventureInput struct {
	PlayerID string
}

// SelectPlayerElementInput defines the request for choosing the next element
type SelectPlayerElementInput struct {
	PlayerID string
	Element  string
}

// RevealOpponentInput defines the request for revealing an opponent slot
type RevealOpponentInput struct {
	PlayerID  string
	SlotIndex int
}

// SelectWinningRoundInput defines the request for claiming a won round
type SelectWinningRoundInput struct {
	PlayerID   string
	RoundIndex int
}

// UseCurrencyToReverseInput defines the request for buying back a lost round
type UseCurrencyToReverseInput struct {
	PlayerID   string
	RoundIndex int
	Currency   string
}

// ReplenishElementsInput defines the request for topping up elements
type ReplenishElementsInput struct {
	PlayerID string
}

// ReturnToSpawnInput defines the request for returning to the spawn point
type ReturnToSpawnInput struct {
	PlayerID string
}

// ResetGameInput defines the request for restarting from scratch
type ResetGameInput struct {
	PlayerID string
}

// UpgradeSkillInput defines the request for raising a skill branch
type UpgradeSkillInput struct {
	PlayerID string
	Element  string
	Branch   string
}

// CanStartAdventureInput defines the request for the adventure check
type CanStartAdventureInput struct {
	PlayerID string
}

// CanStartAdventureOutput defines the response for the adventure check
type CanStartAdventureOutput struct {
	CanStart  bool
	Threshold int
}

// GetSkillUpgradeCostInput defines the request for pricing an upgrade
type GetSkillUpgradeCostInput struct {
	PlayerID string
	Element  string
	Branch   string
}

// GetSkillUpgradeCostOutput defines the response for pricing an upgrade
type GetSkillUpgradeCostOutput struct {
	Cost       engine.UpgradeCost
	Affordable bool
}
