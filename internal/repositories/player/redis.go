package player

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/wuxing-api/internal/redis"
)

const (
	// Key pattern: player:{player_id}
	playerKeyPrefix = "player:"
	playerIndexKey  = "players"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// PlayerKey returns the Redis key holding a player's record
func PlayerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	now := r.clock.Now()
	record := &Record{State: input.State, CreatedAt: now, UpdatedAt: now}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player record")
	}

	// the index add runs even when the key exists, so it also heals a
	// record that was stored without its index entry
	pipe := r.client.TxPipeline()
	set := pipe.SetNX(ctx, PlayerKey(input.State.PlayerID), data, 0)
	pipe.SAdd(ctx, playerIndexKey, input.State.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}
	if !set.Val() {
		return nil, errors.AlreadyExistsf("player %s already exists", input.State.PlayerID)
	}

	return &CreateOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, PlayerKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}

	existing, err := r.Get(ctx, GetInput{PlayerID: input.State.PlayerID})
	if err != nil {
		return nil, err
	}

	record := &Record{
		State:     input.State,
		CreatedAt: existing.Record.CreatedAt,
		UpdatedAt: r.clock.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player record")
	}

	// SetXX never recreates a player deleted since the read
	updated, err := r.client.SetXX(ctx, PlayerKey(input.State.PlayerID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}
	if !updated {
		return nil, errors.NotFoundf("player %s not found", input.State.PlayerID)
	}

	return &UpdateOutput{Record: record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, PlayerKey(input.PlayerID))
	pipe.SRem(ctx, playerIndexKey, input.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID)
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}
	sort.Strings(ids)
	return &ListOutput{PlayerIDs: ids}, nil
}
