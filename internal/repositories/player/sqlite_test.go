package player_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	repositorySuite
	sqlite *player.SQLiteRepository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: testEpoch}

	repo, err := player.NewSQLite(&player.SQLiteConfig{
		Path:  filepath.Join(s.T().TempDir(), "players.db"),
		Clock: s.clock,
	})
	s.Require().NoError(err)
	s.sqlite = repo
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.NoError(s.sqlite.Close())
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func TestSQLiteReopenKeepsPlayers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "players.db")

	first, err := player.NewSQLite(&player.SQLiteConfig{Path: path})
	require.NoError(t, err)
	_, err = first.Create(ctx, player.CreateInput{
		State: testutils.CreateTestGameState(testutils.TestPlayerID),
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := player.NewSQLite(&player.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, err := second.Get(ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	require.NoError(t, err)
	assert.Equal(t, testutils.TestPlayerID, got.Record.State.PlayerID)
}

func TestSQLiteInMemory(t *testing.T) {
	repo, err := player.NewSQLite(&player.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()

	_, err = repo.Create(context.Background(), player.CreateInput{
		State: testutils.CreateTestGameState("mem"),
	})
	require.NoError(t, err)

	out, err := repo.List(context.Background(), player.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mem"}, out.PlayerIDs)
}

func TestNewSQLiteValidation(t *testing.T) {
	_, err := player.NewSQLite(&player.SQLiteConfig{Path: "  "})
	assert.True(t, errors.IsInvalidArgument(err))
}
