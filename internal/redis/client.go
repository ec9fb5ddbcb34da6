// Package redis wraps the go-redis client behind a small interface so the
// player store and the event broadcaster can share one connection.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// Config configures the Redis connection.
// One address gives a single node, several give a cluster, and a
// MasterName switches to Sentinel failover.
type Config struct {
	Addrs           []string
	MasterName      string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("redis config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(c.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	for i, addr := range c.Addrs {
		if addr == "" {
			vb.Fieldf("addrs", "address %d is empty", i)
		}
	}
	errors.ValidateNonNegative("db", c.DB, vb)
	errors.ValidateNonNegative("pool_size", c.PoolSize, vb)
	errors.ValidateNonNegative("max_retries", c.MaxRetries, vb)
	return vb.Build()
}

// New creates a client for the configured topology. go-redis connects lazily;
// call Ping to fail fast on a bad address.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &redis.UniversalOptions{
		Addrs:           cfg.Addrs,
		MasterName:      cfg.MasterName,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		MaxRetries:      cfg.MaxRetries,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // self-signed certs
		}
	}

	return redis.NewUniversalClient(opts), nil
}

// NewClient creates a single-node client for addr
func NewClient(addr string) (Client, error) {
	return New(&Config{Addrs: []string{addr}})
}

// Ping checks the connection
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
