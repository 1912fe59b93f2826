package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dodiwadhwa-maker/q-block-master/internal/engine"
	"github.com/dodiwadhwa-maker/q-block-master/internal/entity"
	"github.com/dodiwadhwa-maker/q-block-master/internal/pkg"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	UpdateHighScore(ctx context.Context, playerID string, score int) error
}

type shapeCatalog interface {
	DrawBatch() []engine.Shape
}

// GameManager drives a puzzle session: it owns the per-turn pipeline
// (resolve shape, place, clear, score, refill the pool, detect game
// over) on top of the stored entities.
type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepo
	gameRepo   gameRepo
	scoreRepo  scoreRepo
	catalog    shapeCatalog
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, scoreRepo scoreRepo, catalog shapeCatalog) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		scoreRepo:  scoreRepo,
		catalog:    catalog,
	}
}

// GetOrCreatePlayer returns the stored player or registers a new one
// when the ID is empty.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GeneratePlayerID()}
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// GetOrCreateGame returns the player's current game, starting a fresh
// one with an empty board and a full pool batch when none is active.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return that.createGame(ctx, player)
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID(), that.catalog.DrawBatch())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("started new game", "game_id", game.ID, "player_id", player.ID)

	return game, nil
}

// PlaceShape runs one full turn for the player: place the shape from
// the given slot at origin (x, y), clear lines, update score/combo/
// keys, refill the pool once it empties and finish the game when no
// move remains. The returned line count is for this turn.
func (that *GameManager) PlaceShape(ctx context.Context, playerID string, slot, x, y int) (*entity.Game, int, error) {
	game, err := that.activeGame(ctx, playerID)
	if err != nil {
		return nil, 0, err
	}

	lines, err := game.Place(slot, x, y)
	if err != nil {
		return game, 0, fmt.Errorf("failed to place shape: %w", err)
	}

	if len(game.Pool) == 0 {
		game.Pool = that.catalog.DrawBatch()
	}

	if engine.IsGameOver(game.Grid, game.Pool, game.Hold) {
		return game, lines, that.finishGame(ctx, playerID, game)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, 0, fmt.Errorf("failed to update game: %w", err)
	}

	return game, lines, nil
}

// RotateShape turns the shape in the given slot clockwise, spending
// keys. Rejections leave the game untouched.
func (that *GameManager) RotateShape(ctx context.Context, playerID string, slot int) (*entity.Game, error) {
	game, err := that.activeGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.Rotate(slot); err != nil {
		return game, fmt.Errorf("failed to rotate shape: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// SwapHold moves the pool shape at poolIndex into the hold slot,
// trading with the held shape when one is present. Emptying the pool
// this way triggers a refill, like a placement would.
func (that *GameManager) SwapHold(ctx context.Context, playerID string, poolIndex int) (*entity.Game, error) {
	game, err := that.activeGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.SwapHold(poolIndex); err != nil {
		return game, fmt.Errorf("failed to swap hold: %w", err)
	}

	if len(game.Pool) == 0 {
		game.Pool = that.catalog.DrawBatch()
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) activeGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// finishGame marks the game over, writes the high score back and
// detaches the player so the next request starts a fresh session. The
// final state stays with the caller for one last response.
func (that *GameManager) finishGame(ctx context.Context, playerID string, game *entity.Game) error {
	game.Status = entity.StatusFinished

	if err := that.scoreRepo.UpdateHighScore(ctx, playerID, game.Score); err != nil {
		return fmt.Errorf("failed to update high score: %w", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	player.GameID = ""
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("game over", "game_id", game.ID, "player_id", playerID, "score", game.Score)

	return nil
}
