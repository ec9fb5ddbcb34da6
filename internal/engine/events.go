package engine

import (
	"fmt"
)

// EventType names a state change
type EventType string

// Event types emitted by Session commands
const (
	EventPlayerInitialized   EventType = "player.initialized"
	EventAdventureStarted    EventType = "adventure.started"
	EventElementSelected     EventType = "element.selected"
	EventOpponentRevealed    EventType = "opponent.revealed"
	EventBattleResolved      EventType = "battle.resolved"
	EventCurrencyAwarded     EventType = "currency.awarded"
	EventRewardClaimed       EventType = "reward.claimed"
	EventBattleReversed      EventType = "battle.reversed"
	EventElementsReplenished EventType = "elements.replenished"
	EventSpawnReturned       EventType = "spawn.returned"
	EventGameReset           EventType = "game.reset"
	EventSkillUpgraded       EventType = "skill.upgraded"
)

// Event describes one change made by a command. Transports relay it as is.
type Event struct {
	Type    EventType      `json:"type"`
	Summary string         `json:"summary"`
	Fields  map[string]any `json:"fields,omitempty"`
}

func newEvent(eventType EventType, fields map[string]any, format string, args ...any) Event {
	return Event{
		Type:    eventType,
		Summary: fmt.Sprintf(format, args...),
		Fields:  fields,
	}
}

// AllEventTypes returns every event type a Session can emit
func AllEventTypes() []EventType {
	return []EventType{
		EventPlayerInitialized,
		EventAdventureStarted,
		EventElementSelected,
		EventOpponentRevealed,
		EventBattleResolved,
		EventCurrencyAwarded,
		EventRewardClaimed,
		EventBattleReversed,
		EventElementsReplenished,
		EventSpawnReturned,
		EventGameReset,
		EventSkillUpgraded,
	}
}
