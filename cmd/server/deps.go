package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wuxing-api/internal/broadcast"
	"github.com/KirkDiggler/wuxing-api/internal/config"
	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/handlers/wuxing/v1alpha1"
	"github.com/KirkDiggler/wuxing-api/internal/orchestrators/game"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/idgen"
	"github.com/KirkDiggler/wuxing-api/internal/redis"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
)

// dependencies is the wired object graph of the server
type dependencies struct {
	handler     *v1alpha1.Handler
	broadcaster *broadcast.Broadcaster
	closers     []func() error
}

// Close releases everything in reverse order of creation
func (d *dependencies) Close() {
	if d.broadcaster != nil {
		if err := d.broadcaster.Stop(); err != nil {
			slog.Warn("Failed to stop broadcaster", "error", err)
		}
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("Failed to close dependency", "error", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	var redisClient redis.Client
	if cfg.NeedsRedis() {
		client, err := redis.New(&redis.Config{
			Addrs:      cfg.RedisAddrs,
			MasterName: cfg.RedisMaster,
		})
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, client.Close)
		if err := redis.Ping(ctx, client); err != nil {
			deps.Close()
			return nil, err
		}
		redisClient = client
	}

	repo, err := newPlayerRepository(cfg, redisClient, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		deps.Close()
		return nil, err
	}

	session, err := engine.NewSession(&engine.Config{
		Rules:       rules,
		Random:      newRandomSource(cfg.RandomSeed),
		IDGenerator: newIDGenerator(cfg.RandomSeed),
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	bus := events.NewBus()
	if cfg.Broadcast {
		deps.broadcaster, err = broadcast.New(&broadcast.Config{
			Client:   redisClient,
			EventBus: bus,
			Logger:   logger,
		})
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.broadcaster.Start()
	}

	orch, err := game.NewOrchestrator(&game.Config{
		PlayerRepo: repo,
		Session:    session,
		EventBus:   bus,
		Logger:     logger,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: orch})
	if err != nil {
		deps.Close()
		return nil, err
	}

	logger.Info("Dependencies ready",
		"store", cfg.Store,
		"broadcast", cfg.Broadcast,
		"seeded", cfg.RandomSeed != 0,
		"rules_file", cfg.RulesFile)
	return deps, nil
}

func newPlayerRepository(cfg *config.Config, client redis.Client, deps *dependencies) (player.Repository, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		repo, err := player.NewSQLite(&player.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, repo.Close)
		return repo, nil
	case config.StoreRedis:
		return player.NewRedis(&player.RedisConfig{Client: client})
	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}

// newRandomSource returns the toolkit's crypto roller, or a reproducible
// roller when a seed is configured
func newRandomSource(seed uint64) engine.RandomSource {
	if seed == 0 {
		return engine.NewDiceSource(dice.DefaultRoller)
	}
	return engine.NewDiceSource(engine.NewSeededRoller(seed))
}

// newIDGenerator keeps battle IDs repeatable alongside a seeded roller
func newIDGenerator(seed uint64) idgen.Generator {
	if seed == 0 {
		return idgen.NewUUID("battle")
	}
	return idgen.NewSequential("battle")
}
