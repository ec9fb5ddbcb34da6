// Package broadcast relays game events from the in-process bus to Redis
// pub/sub, one channel per player.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
	"github.com/KirkDiggler/wuxing-api/internal/redis"
)

// DefaultChannelPrefix is prepended to the player ID to form a channel name
const DefaultChannelPrefix = "wuxing:events:"

// Message is the JSON document published for each event
type Message struct {
	PlayerID string           `json:"player_id"`
	Type     engine.EventType `json:"type"`
	Summary  string           `json:"summary"`
	Fields   map[string]any   `json:"fields,omitempty"`
	SentAt   time.Time        `json:"sent_at"`
}

// Config holds the dependencies for the broadcaster
type Config struct {
	Client        redis.Client
	EventBus      events.EventBus
	ChannelPrefix string
	Clock         clock.Clock
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Broadcaster subscribes to every game event type and publishes each event
// on its player's channel
type Broadcaster struct {
	client redis.Client
	bus    events.EventBus
	prefix string
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	subIDs []string
}

// New creates a Broadcaster. Call Start to begin relaying.
func New(cfg *Config) (*Broadcaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Broadcaster{
		client: cfg.Client,
		bus:    cfg.EventBus,
		prefix: prefix,
		clock:  c,
		logger: logger,
	}, nil
}

// Channel returns the pub/sub channel of a player
func (b *Broadcaster) Channel(playerID string) string {
	return b.prefix + playerID
}

// Start subscribes to the bus. Calling it twice is a no-op.
func (b *Broadcaster) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.subIDs) > 0 {
		return
	}
	for _, et := range engine.AllEventTypes() {
		b.subIDs = append(b.subIDs, b.bus.SubscribeFunc(string(et), 0, b.relay))
	}
	b.logger.Info("Broadcaster started", "channel_prefix", b.prefix, "event_types", len(b.subIDs))
}

// Stop removes the bus subscriptions
func (b *Broadcaster) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for _, id := range b.subIDs {
		if err := b.bus.Unsubscribe(id); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	b.subIDs = nil
	return firstErr
}

func (b *Broadcaster) relay(ctx context.Context, ev events.Event) error {
	playerID, e, ok := engine.FromBusEvent(ev)
	if !ok {
		return nil
	}

	data, err := json.Marshal(Message{
		PlayerID: playerID,
		Type:     e.Type,
		Summary:  e.Summary,
		Fields:   e.Fields,
		SentAt:   b.clock.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s event", e.Type)
	}

	if err := b.client.Publish(ctx, b.Channel(playerID), data).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish event")
	}
	return nil
}

// Decode parses a payload published by a Broadcaster
func Decode(payload string) (*Message, error) {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode event message")
	}
	return &msg, nil
}
