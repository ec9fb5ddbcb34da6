// Package v1alpha1 serves the game service over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GameServiceServer on top of the game orchestrator
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{gameService: cfg.GameService}, nil
}

// InitPlayer creates a player with the starting inventory and wallet
func (h *Handler) InitPlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.InitPlayer(ctx, &game.InitPlayerInput{PlayerID: playerID}))
}

// GetState returns a player's current snapshot
func (h *Handler) GetState(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.GetState(ctx, &game.GetStateInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(stateResponse{State: out.State})
}

// StartAdventure moves the player and opens a battle
func (h *Handler) StartAdventure(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.StartAdventure(ctx, &game.StartAdventureInput{PlayerID: playerID}))
}

// SelectPlayerElement chooses the element for the next reveal
func (h *Handler) SelectPlayerElement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	element, err := requiredString(req, FieldElement)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.SelectPlayerElement(ctx, &game.SelectPlayerElementInput{
		PlayerID: playerID,
		Element:  element,
	}))
}

// RevealOpponent plays the selected element against an opponent slot
func (h *Handler) RevealOpponent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	slot, err := intField(req, FieldSlotIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.RevealOpponent(ctx, &game.RevealOpponentInput{
		PlayerID:  playerID,
		SlotIndex: slot,
	}))
}

// SelectWinningRound claims the reward of a won round
func (h *Handler) SelectWinningRound(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	round, err := intField(req, FieldRoundIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.SelectWinningRound(ctx, &game.SelectWinningRoundInput{
		PlayerID:   playerID,
		RoundIndex: round,
	}))
}

// UseCurrencyToReverse buys back a lost round
func (h *Handler) UseCurrencyToReverse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	round, err := intField(req, FieldRoundIndex)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	currency, err := requiredString(req, FieldCurrency)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.UseCurrencyToReverse(ctx, &game.UseCurrencyToReverseInput{
		PlayerID:   playerID,
		RoundIndex: round,
		Currency:   currency,
	}))
}

// ReplenishElements tops up every element
func (h *Handler) ReplenishElements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.ReplenishElements(ctx, &game.ReplenishElementsInput{PlayerID: playerID}))
}

// ReturnToSpawn moves the player home
func (h *Handler) ReturnToSpawn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.ReturnToSpawn(ctx, &game.ReturnToSpawnInput{PlayerID: playerID}))
}

// ResetGame restores the starting state
func (h *Handler) ResetGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.ResetGame(ctx, &game.ResetGameInput{PlayerID: playerID}))
}

// UpgradeSkill raises one skill branch
func (h *Handler) UpgradeSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	element, err := requiredString(req, FieldElement)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	branch, err := requiredString(req, FieldBranch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return h.command(h.gameService.UpgradeSkill(ctx, &game.UpgradeSkillInput{
		PlayerID: playerID,
		Element:  element,
		Branch:   branch,
	}))
}

// CanStartAdventure reports whether the adventure threshold is met
func (h *Handler) CanStartAdventure(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.CanStartAdventure(ctx, &game.CanStartAdventureInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(canStartResponse{CanStart: out.CanStart, Threshold: out.Threshold})
}

// GetSkillUpgradeCost prices the next level of a skill branch
func (h *Handler) GetSkillUpgradeCost(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requiredString(req, FieldPlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	element, err := requiredString(req, FieldElement)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	branch, err := requiredString(req, FieldBranch)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.GetSkillUpgradeCost(ctx, &game.GetSkillUpgradeCostInput{
		PlayerID: playerID,
		Element:  element,
		Branch:   branch,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(upgradeCostResponse{Cost: out.Cost, Affordable: out.Affordable})
}

func (h *Handler) command(out *game.CommandOutput, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	evts := out.Events
	if evts == nil {
		evts = []engine.Event{}
	}
	return respond(commandResponse{State: out.State, Events: evts})
}

func respond(v any) (*structpb.Struct, error) {
	s, err := toStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
