// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
	playermock "github.com/KirkDiggler/wuxing-api/internal/repositories/player/mock"
)

// ExpectPlayerLoad expects one Get for state's player and returns a copy of it
func ExpectPlayerLoad(ctx context.Context, repo *playermock.MockRepository, state *wuxing.GameState) *gomock.Call {
	now := time.Now().UTC()
	return repo.EXPECT().
		Get(ctx, player.GetInput{PlayerID: state.PlayerID}).
		Return(&player.GetOutput{Record: &player.Record{
			State:     state.Clone(),
			CreatedAt: now,
			UpdatedAt: now,
		}}, nil)
}

// SavedState records the snapshot handed to Update
type SavedState struct {
	State *wuxing.GameState
}

// ExpectPlayerSave expects one Update and captures the saved snapshot
func ExpectPlayerSave(ctx context.Context, repo *playermock.MockRepository) (*gomock.Call, *SavedState) {
	saved := &SavedState{}
	call := repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input player.UpdateInput) (*player.UpdateOutput, error) {
			saved.State = input.State.Clone()
			now := time.Now().UTC()
			return &player.UpdateOutput{Record: &player.Record{
				State:     input.State,
				CreatedAt: now,
				UpdatedAt: now,
			}}, nil
		})
	return call, saved
}

// ExpectNoSave fails the test if anything is written
func ExpectNoSave(repo *playermock.MockRepository) {
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
}
