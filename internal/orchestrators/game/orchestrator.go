// Package game runs game commands against stored player state
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/wuxing-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wuxing-api/internal/engine"
	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
)

// Service defines the game operations available to transports
type Service interface {
	InitPlayer(ctx context.Context, input *InitPlayerInput) (*CommandOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	StartAdventure(ctx context.Context, input *StartAdventureInput) (*CommandOutput, error)
	SelectPlayerElement(ctx context.Context, input *SelectPlayerElementInput) (*CommandOutput, error)
	RevealOpponent(ctx context.Context, input *RevealOpponentInput) (*CommandOutput, error)
	SelectWinningRound(ctx context.Context, input *SelectWinningRoundInput) (*CommandOutput, error)
	UseCurrencyToReverse(ctx context.Context, input *UseCurrencyToReverseInput) (*CommandOutput, error)

	ReplenishElements(ctx context.Context, input *ReplenishElementsInput) (*CommandOutput, error)
	ReturnToSpawn(ctx context.Context, input *ReturnToSpawnInput) (*CommandOutput, error)
	ResetGame(ctx context.Context, input *ResetGameInput) (*CommandOutput, error)
	UpgradeSkill(ctx context.Context, input *UpgradeSkillInput) (*CommandOutput, error)

	CanStartAdventure(ctx context.Context, input *CanStartAdventureInput) (*CanStartAdventureOutput, error)
	GetSkillUpgradeCost(ctx context.Context, input *GetSkillUpgradeCostInput) (*GetSkillUpgradeCostOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	PlayerRepo player.Repository
	Session    *engine.Session
	// EventBus is optional; without it events are only returned to the caller
	EventBus events.EventBus
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Session == nil {
		vb.RequiredField("Session")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo player.Repository
	session    *engine.Session
	eventBus   events.EventBus
	logger     *slog.Logger
	locks      *playerLocks
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		session:    cfg.Session,
		eventBus:   cfg.EventBus,
		logger:     logger,
		locks:      newPlayerLocks(),
	}, nil
}

// command is one Session call against a loaded snapshot
type command func(state *wuxing.GameState) (*engine.Result, error)

func (o *orchestrator) InitPlayer(ctx context.Context, input *InitPlayerInput) (*CommandOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.lock(input.PlayerID)
	defer unlock()

	result, err := o.session.InitPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Create(ctx, player.CreateInput{State: result.State}); err != nil {
		return nil, errors.Wrapf(err, "failed to create player %s", input.PlayerID)
	}

	o.logger.Info("Player initialized", "player_id", input.PlayerID)
	o.publish(ctx, input.PlayerID, result.Events)

	return &CommandOutput{State: result.State, Events: result.Events}, nil
}

func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	state, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: state}, nil
}

func (o *orchestrator) StartAdventure(ctx context.Context, input *StartAdventureInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "start_adventure", input.PlayerID, o.session.StartAdventure)
}

func (o *orchestrator) SelectPlayerElement(ctx context.Context, input *SelectPlayerElementInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	element, err := wuxing.ParseElement(input.Element)
	if err != nil {
		return nil, err
	}
	return o.execute(ctx, "select_player_element", input.PlayerID, func(state *wuxing.GameState) (*engine.Result, error) {
		return o.session.SelectPlayerElement(state, element)
	})
}

func (o *orchestrator) RevealOpponent(ctx context.Context, input *RevealOpponentInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "reveal_opponent", input.PlayerID, func(state *wuxing.GameState) (*engine.Result, error) {
		return o.session.RevealOpponent(state, input.SlotIndex)
	})
}

func (o *orchestrator) SelectWinningRound(ctx context.Context, input *SelectWinningRoundInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "select_winning_round", input.PlayerID, func(state *wuxing.GameState) (*engine.Result, error) {
		return o.session.SelectWinningRound(state, input.RoundIndex)
	})
}

func (o *orchestrator) UseCurrencyToReverse(ctx context.Context, input *UseCurrencyToReverseInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	currency, err := wuxing.ParseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}
	return o.execute(ctx, "use_currency_to_reverse", input.PlayerID, func(state *wuxing.GameState) (*engine.Result, error) {
		return o.session.UseCurrencyToReverse(state, input.RoundIndex, currency)
	})
}

func (o *orchestrator) ReplenishElements(ctx context.Context, input *ReplenishElementsInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "replenish_elements", input.PlayerID, o.session.ReplenishElements)
}

func (o *orchestrator) ReturnToSpawn(ctx context.Context, input *ReturnToSpawnInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "return_to_spawn", input.PlayerID, o.session.ReturnToSpawn)
}

func (o *orchestrator) ResetGame(ctx context.Context, input *ResetGameInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.execute(ctx, "reset_game", input.PlayerID, o.session.ResetGame)
}

func (o *orchestrator) UpgradeSkill(ctx context.Context, input *UpgradeSkillInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	element, err := wuxing.ParseElement(input.Element)
	if err != nil {
		return nil, err
	}
	branch, err := wuxing.ParseBranch(input.Branch)
	if err != nil {
		return nil, err
	}
	return o.execute(ctx, "upgrade_skill", input.PlayerID, func(state *wuxing.GameState) (*engine.Result, error) {
		return o.session.UpgradeSkill(state, element, branch)
	})
}

func (o *orchestrator) CanStartAdventure(ctx context.Context, input *CanStartAdventureInput) (*CanStartAdventureOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	state, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &CanStartAdventureOutput{
		CanStart:  o.session.CanStartAdventure(state),
		Threshold: o.session.Rules().Adventure.Threshold,
	}, nil
}

func (o *orchestrator) GetSkillUpgradeCost(ctx context.Context, input *GetSkillUpgradeCostInput) (*GetSkillUpgradeCostOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	element, err := wuxing.ParseElement(input.Element)
	if err != nil {
		return nil, err
	}
	branch, err := wuxing.ParseBranch(input.Branch)
	if err != nil {
		return nil, err
	}

	state, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	cost, err := o.session.SkillUpgradeCost(state, element, branch)
	if err != nil {
		return nil, err
	}

	affordable := state.Inventory[cost.Element] >= cost.Elements &&
		state.Wallet[cost.Currency] >= cost.Amount

	return &GetSkillUpgradeCostOutput{
		Cost:       cost,
		Affordable: affordable,
	}, nil
}

// execute runs one command under the player's lock: load, apply, save, publish.
// A rejected command saves nothing.
func (o *orchestrator) execute(ctx context.Context, name, playerID string, cmd command) (*CommandOutput, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.lock(playerID)
	defer unlock()

	state, err := o.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result, err := cmd(state)
	if err != nil {
		level := slog.LevelDebug
		if errors.IsResourceFailure(err) {
			level = slog.LevelInfo
		}
		o.logger.Log(ctx, level, "Command rejected",
			"command", name,
			"player_id", playerID,
			"failure", failureKind(err),
			"reason", errors.GetReason(err),
			"error", errors.GetMessage(err))
		return nil, err
	}

	if _, err := o.playerRepo.Update(ctx, player.UpdateInput{State: result.State}); err != nil {
		return nil, errors.Wrapf(err, "failed to save player %s", playerID)
	}

	o.logger.Info("Command applied",
		"command", name,
		"player_id", playerID,
		"in_battle", result.State.InBattle,
		"events", len(result.Events))
	o.publish(ctx, playerID, result.Events)

	return &CommandOutput{State: result.State, Events: result.Events}, nil
}

func failureKind(err error) string {
	switch {
	case errors.IsResourceFailure(err):
		return "resource"
	case errors.IsValidationFailure(err):
		return "validation"
	default:
		return string(errors.GetCode(err))
	}
}

func (o *orchestrator) load(ctx context.Context, playerID string) (*wuxing.GameState, error) {
	out, err := o.playerRepo.Get(ctx, player.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load player %s", playerID)
	}

	if err := out.Record.State.Validate(); err != nil {
		o.logger.Error("Stored player state is invalid", "player_id", playerID, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored player state is invalid")
	}
	return out.Record.State, nil
}

// publish relays events on the bus. The command has already been saved, so a
// failed publish is logged and not returned.
func (o *orchestrator) publish(ctx context.Context, playerID string, evts []engine.Event) {
	if o.eventBus == nil {
		return
	}
	for _, e := range evts {
		if err := o.eventBus.Publish(ctx, engine.ToBusEvent(playerID, e)); err != nil {
			o.logger.Warn("Failed to publish event",
				"player_id", playerID,
				"event", e.Type,
				"error", err)
		}
	}
}
