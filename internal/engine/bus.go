package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// PlayerEntityType is the core.Entity type of a player on the event bus
const PlayerEntityType = "player"

// ContextKeyEvent is the bus event context key holding the engine Event
const ContextKeyEvent = "wuxing.event"

// PlayerEntity identifies the player an event belongs to
type PlayerEntity struct {
	ID string
}

var _ core.Entity = (*PlayerEntity)(nil)

// GetID returns the player ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return PlayerEntityType
}

// ToBusEvent wraps an engine event for the rpg-toolkit bus. The player is
// the source; game events have no target.
func ToBusEvent(playerID string, e Event) events.Event {
	ev := events.NewGameEvent(string(e.Type), &PlayerEntity{ID: playerID}, nil)
	ev.Context().Set(ContextKeyEvent, e)
	return ev
}

// FromBusEvent unwraps an event produced by ToBusEvent. ok is false for bus
// events that did not come from a Session.
func FromBusEvent(ev events.Event) (playerID string, e Event, ok bool) {
	if ev == nil || ev.Source() == nil || ev.Source().GetType() != PlayerEntityType {
		return "", Event{}, false
	}
	raw, found := ev.Context().Get(ContextKeyEvent)
	if !found {
		return "", Event{}, false
	}
	e, ok = raw.(Event)
	if !ok {
		return "", Event{}, false
	}
	return ev.Source().GetID(), e, true
}
