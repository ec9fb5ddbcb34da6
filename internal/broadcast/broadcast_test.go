package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/broadcast"
	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
	"github.com/KirkDiggler/wuxing-api/internal/redis"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

type BroadcastTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	bus     events.EventBus
	caster  *broadcast.Broadcaster
	ctx     context.Context
	sentAt  time.Time
}

func TestBroadcastTestSuite(t *testing.T) {
	suite.Run(t, new(BroadcastTestSuite))
}

func (s *BroadcastTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.sentAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	var err error
	s.caster, err = broadcast.New(&broadcast.Config{
		Client:   s.client,
		EventBus: s.bus,
		Clock:    &clock.Fixed{At: s.sentAt},
	})
	s.Require().NoError(err)
	s.caster.Start()
}

func (s *BroadcastTestSuite) TearDownTest() {
	s.NoError(s.caster.Stop())
	s.cleanup()
}

func (s *BroadcastTestSuite) subscribe(playerID string) *goredis.PubSub {
	sub := s.client.Subscribe(s.ctx, s.caster.Channel(playerID))
	_, err := sub.Receive(s.ctx)
	s.Require().NoError(err)
	return sub
}

func (s *BroadcastTestSuite) receive(sub *goredis.PubSub) *broadcast.Message {
	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()

	raw, err := sub.ReceiveMessage(ctx)
	s.Require().NoError(err)

	msg, err := broadcast.Decode(raw.Payload)
	s.Require().NoError(err)
	return msg
}

func (s *BroadcastTestSuite) TestRelaysToPlayerChannel() {
	sub := s.subscribe("p1")
	defer func() { _ = sub.Close() }()

	s.Equal("wuxing:events:p1", s.caster.Channel("p1"))

	err := s.bus.Publish(s.ctx, engine.ToBusEvent("p1", engine.Event{
		Type:    engine.EventCurrencyAwarded,
		Summary: "currency awarded: 3 yang",
		Fields:  map[string]any{"currency": "yang", "amount": 3},
	}))
	s.Require().NoError(err)

	msg := s.receive(sub)
	s.Equal("p1", msg.PlayerID)
	s.Equal(engine.EventCurrencyAwarded, msg.Type)
	s.Equal("currency awarded: 3 yang", msg.Summary)
	s.Equal("yang", msg.Fields["currency"])
	s.EqualValues(3, msg.Fields["amount"])
	s.True(s.sentAt.Equal(msg.SentAt))
}

func (s *BroadcastTestSuite) TestChannelsArePerPlayer() {
	sub := s.subscribe("p2")
	defer func() { _ = sub.Close() }()

	s.Require().NoError(s.bus.Publish(s.ctx, engine.ToBusEvent("p1", engine.Event{Type: engine.EventGameReset})))
	s.Require().NoError(s.bus.Publish(s.ctx, engine.ToBusEvent("p2", engine.Event{Type: engine.EventSpawnReturned})))

	msg := s.receive(sub)
	s.Equal("p2", msg.PlayerID)
	s.Equal(engine.EventSpawnReturned, msg.Type)
}

func (s *BroadcastTestSuite) TestForeignEventsAreIgnored() {
	ev := events.NewGameEvent(string(engine.EventGameReset), &engine.PlayerEntity{ID: "p1"}, nil)
	s.NoError(s.bus.Publish(s.ctx, ev))
}

func (s *BroadcastTestSuite) TestStopUnsubscribes() {
	sub := s.subscribe("p1")
	defer func() { _ = sub.Close() }()

	s.Require().NoError(s.caster.Stop())
	s.Require().NoError(s.bus.Publish(s.ctx, engine.ToBusEvent("p1", engine.Event{Type: engine.EventGameReset})))

	ctx, cancel := context.WithTimeout(s.ctx, 100*time.Millisecond)
	defer cancel()
	_, err := sub.ReceiveMessage(ctx)
	s.Error(err)

	// restart so TearDownTest has something to stop
	s.caster.Start()
}

func (s *BroadcastTestSuite) TestNewValidation() {
	_, err := broadcast.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = broadcast.New(&broadcast.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Client")
	s.Contains(err.Error(), "EventBus")
}

func (s *BroadcastTestSuite) TestDecodeRejectsGarbage() {
	_, err := broadcast.Decode("not json")
	s.Error(err)
}
