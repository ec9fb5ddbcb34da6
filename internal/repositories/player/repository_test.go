package player_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/pkg/clock"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
	"github.com/KirkDiggler/wuxing-api/internal/testutils"
)

// repositorySuite runs the same behavior checks against every backend.
// Embedding suites set repo and clock in SetupTest.
type repositorySuite struct {
	suite.Suite
	repo  player.Repository
	clock *clock.Fixed
	ctx   context.Context
}

var testEpoch = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func (s *repositorySuite) advance(d time.Duration) {
	s.clock.At = s.clock.At.Add(d)
}

func (s *repositorySuite) TestCreateAndGet() {
	state := testutils.CreateTestGameState(testutils.TestPlayerID)

	created, err := s.repo.Create(s.ctx, player.CreateInput{State: state})
	s.Require().NoError(err)
	s.True(testEpoch.Equal(created.Record.CreatedAt))
	s.True(testEpoch.Equal(created.Record.UpdatedAt))

	got, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(state, got.Record.State)
	s.True(testEpoch.Equal(got.Record.CreatedAt))
}

func (s *repositorySuite) TestBattleSnapshotRoundTrips() {
	state := testutils.CreateTestLostBattleState(testutils.TestPlayerID)
	state.Skills[wuxing.ElementWood] = wuxing.Skill{YinLevel: 2, YangLevel: 1}

	_, err := s.repo.Create(s.ctx, player.CreateInput{State: state})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(state, got.Record.State)
	s.NoError(got.Record.State.Validate())
}

func (s *repositorySuite) TestCreateDuplicate() {
	state := testutils.CreateTestGameState(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, player.CreateInput{State: state})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, player.CreateInput{State: state})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *repositorySuite) TestCreateInvalidInput() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, player.CreateInput{State: &wuxing.GameState{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, player.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositorySuite) TestUpdateKeepsCreatedAt() {
	state := testutils.CreateTestGameState(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, player.CreateInput{State: state})
	s.Require().NoError(err)

	s.advance(time.Minute)
	next := state.Clone()
	next.Position = wuxing.Position{X: -1, Y: 1}
	next.Inventory[wuxing.ElementFire] = 3

	updated, err := s.repo.Update(s.ctx, player.UpdateInput{State: next})
	s.Require().NoError(err)
	s.True(testEpoch.Equal(updated.Record.CreatedAt))
	s.True(testEpoch.Add(time.Minute).Equal(updated.Record.UpdatedAt))

	got, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(next, got.Record.State)
	s.True(testEpoch.Equal(got.Record.CreatedAt))
	s.True(testEpoch.Add(time.Minute).Equal(got.Record.UpdatedAt))
}

func (s *repositorySuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, player.UpdateInput{
		State: testutils.CreateTestGameState("ghost"),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, player.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositorySuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{
		State: testutils.CreateTestGameState(testutils.TestPlayerID),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsNotFound(err))

	// a deleted player can be created again
	_, err = s.repo.Create(s.ctx, player.CreateInput{
		State: testutils.CreateTestGameState(testutils.TestPlayerID),
	})
	s.NoError(err)
}

func (s *repositorySuite) TestList() {
	out, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.PlayerIDs)

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		_, err := s.repo.Create(s.ctx, player.CreateInput{State: testutils.CreateTestGameState(id)})
		s.Require().NoError(err)
	}
	_, err = s.repo.Delete(s.ctx, player.DeleteInput{PlayerID: "bravo"})
	s.Require().NoError(err)

	out, err = s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"alpha", "charlie"}, out.PlayerIDs)
}
