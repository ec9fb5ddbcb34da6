// Package config loads service settings from the environment and game
// rules from an optional YAML file.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds the server settings
type Config struct {
	GRPCPort    int      `env:"WUXING_GRPC_PORT" envDefault:"50051"`
	Store       string   `env:"WUXING_STORE" envDefault:"redis"`
	RedisAddrs  []string `env:"WUXING_REDIS_ADDR" envSeparator:"," envDefault:"localhost:6379"`
	RedisMaster string   `env:"WUXING_REDIS_MASTER"`
	SQLitePath  string   `env:"WUXING_SQLITE_PATH" envDefault:"wuxing.db"`
	RulesFile   string   `env:"WUXING_RULES_FILE"`
	// RandomSeed of 0 uses the non-deterministic toolkit roller
	RandomSeed uint64 `env:"WUXING_RANDOM_SEED" envDefault:"0"`
	Broadcast  bool   `env:"WUXING_BROADCAST" envDefault:"true"`
	LogLevel   string `env:"WUXING_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"WUXING_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable together
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	errors.ValidateEnum("log_format", c.LogFormat, []string{"text", "json"}, vb)

	if c.Store == StoreSQLite {
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	}
	if (c.Store == StoreRedis || c.Broadcast) && len(c.RedisAddrs) == 0 {
		vb.Field("redis_addr", "is required for the redis store and broadcasting")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}

	return vb.Build()
}

// NeedsRedis reports whether any configured component talks to Redis
func (c *Config) NeedsRedis() bool {
	return c.Store == StoreRedis || c.Broadcast
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds the process logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// LoadRules reads a YAML rules file over DefaultRules. An empty path returns
// the defaults. Unknown keys are rejected.
func LoadRules(path string) (*engine.Rules, error) {
	rules := engine.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("rules file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	return ParseRules(data)
}

// ParseRules decodes YAML rules over DefaultRules
func ParseRules(data []byte) (*engine.Rules, error) {
	rules := engine.DefaultRules()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rules); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid rules file")
	}

	if err := rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules")
	}
	return rules, nil
}
