package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type GameStore interface {
	InsertGame(ctx context.Context, g gameDomain.Game) error
	GetGamesByOwner(ctx context.Context, ownerID string) ([]gameDomain.Game, error)
	GetGameByID(ctx context.Context, ownerID string, gameID string) (gameDomain.Game, error)
	UpdateGame(ctx context.Context, g gameDomain.Game) error
	DeleteGame(ctx context.Context, ownerID string, gameID string) error
}

type MatchCounter interface {
	CountMatchesByGame(ctx context.Context, ownerID string, gameID string) (int64, error)
}

type GameUseCase struct {
	store   GameStore
	matches MatchCounter
}

func NewGameUseCase(store GameStore, matches MatchCounter) *GameUseCase {
	return &GameUseCase{store: store, matches: matches}
}

type CreateGameRequest struct {
	Name         string `json:"name"`
	PointsPerWin int    `json:"points_per_win"`
	MinPlayers   int    `json:"min_players"`
	MaxPlayers   int    `json:"max_players,omitempty"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

func (u *GameUseCase) CreateGame(ctx context.Context, ownerID string, req CreateGameRequest) (gameDomain.Game, error) {
	newGame := gameDomain.Game{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         req.Name,
		PointsPerWin: req.PointsPerWin,
		MinPlayers:   req.MinPlayers,
		MaxPlayers:   req.MaxPlayers,
		Description:  req.Description,
		Icon:         req.Icon,
		CreatedAt:    time.Now(),
	}
	if newGame.PointsPerWin <= 0 {
		newGame.PointsPerWin = 1
	}
	if newGame.MinPlayers <= 0 {
		newGame.MinPlayers = 1
	}

	if err := u.store.InsertGame(ctx, newGame); err != nil {
		return gameDomain.Game{}, err
	}
	return newGame, nil
}

func (u *GameUseCase) ListGames(ctx context.Context, ownerID string) ([]gameDomain.Game, error) {
	return u.store.GetGamesByOwner(ctx, ownerID)
}

func (u *GameUseCase) UpdateGame(ctx context.Context, ownerID string, updated gameDomain.Game) (gameDomain.Game, error) {
	existing, err := u.store.GetGameByID(ctx, ownerID, updated.ID)
	if err != nil {
		return gameDomain.Game{}, err
	}
	updated.OwnerID = existing.OwnerID
	updated.CreatedAt = existing.CreatedAt
	if err := u.store.UpdateGame(ctx, updated); err != nil {
		return gameDomain.Game{}, err
	}
	return updated, nil
}

// DeleteGame declines when the game is still referenced by any match. The
// guard is an existence query at the application layer, not a database
// constraint.
func (u *GameUseCase) DeleteGame(ctx context.Context, ownerID string, gameID string) error {
	if _, err := u.store.GetGameByID(ctx, ownerID, gameID); err != nil {
		return err
	}
	count, err := u.matches.CountMatchesByGame(ctx, ownerID, gameID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.ErrGameHasMatches
	}
	return u.store.DeleteGame(ctx, ownerID, gameID)
}

// GameExists backs tournament creation.
func (u *GameUseCase) GameExists(ctx context.Context, ownerID string, gameID string) (bool, error) {
	_, err := u.store.GetGameByID(ctx, ownerID, gameID)
	if err != nil {
		if errors.Is(err, errs.ErrGameNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
