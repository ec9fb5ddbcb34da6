package player

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
)

//go:embed schema.sql
var schema string

// SQLiteConfig contains configuration for the SQLite player repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" gives a private in-memory store
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository stores player records in a SQLite database
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	db, err := sql.Open("sqlite", sqliteDSN(cfg.Path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if cfg.Path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// sqliteDSN applies the connection pragmas. The driver runs every _pragma
// on each new pooled connection.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	return filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=synchronous(NORMAL)"
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create inserts the first snapshot of a player
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player state")
	}

	now := toMillis(r.clock.Now())
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO players (player_id, state, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		input.State.PlayerID, string(data), now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("player %s already exists", input.State.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to create player")
	}

	return &CreateOutput{Record: &Record{
		State:     input.State,
		CreatedAt: fromMillis(now),
		UpdatedAt: fromMillis(now),
	}}, nil
}

// Get loads a player's snapshot
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	var (
		data      string
		createdAt int64
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT state, created_at, updated_at FROM players WHERE player_id = ?`,
		input.PlayerID).Scan(&data, &createdAt, &updatedAt)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var state wuxing.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player state")
	}

	return &GetOutput{Record: &Record{
		State:     &state,
		CreatedAt: fromMillis(createdAt),
		UpdatedAt: fromMillis(updatedAt),
	}}, nil
}

// Update replaces a player's snapshot
func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player state")
	}

	now := toMillis(r.clock.Now())
	var createdAt int64
	err = r.db.QueryRowContext(ctx,
		`UPDATE players SET state = ?, updated_at = ? WHERE player_id = ? RETURNING created_at`,
		string(data), now, input.State.PlayerID).Scan(&createdAt)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player %s not found", input.State.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Record: &Record{
		State:     input.State,
		CreatedAt: fromMillis(createdAt),
		UpdatedAt: fromMillis(now),
	}}, nil
}

// Delete removes a player
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count deleted rows")
	}
	if n == 0 {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID)
	}
	return &DeleteOutput{}, nil
}

// List returns every stored player ID
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT player_id FROM players ORDER BY player_id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "failed to scan player id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}
	return &ListOutput{PlayerIDs: ids}, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
