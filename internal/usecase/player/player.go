package player

import (
	"context"
	"time"

	"github.com/google/uuid"

	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
)

type PlayerStore interface {
	InsertPlayer(ctx context.Context, p playerDomain.Player) error
	GetPlayersByOwner(ctx context.Context, ownerID string) ([]playerDomain.Player, error)
	GetPlayerByID(ctx context.Context, ownerID string, playerID string) (playerDomain.Player, error)
	UpdatePlayer(ctx context.Context, p playerDomain.Player) error
	DeletePlayer(ctx context.Context, ownerID string, playerID string) error
}

type PlayerUseCase struct {
	store PlayerStore
}

func NewPlayerUseCase(store PlayerStore) *PlayerUseCase {
	return &PlayerUseCase{store: store}
}

type CreatePlayerRequest struct {
	Name             string  `json:"name"`
	AvatarURL        string  `json:"avatar_url,omitempty"`
	BaselineWinRate  float64 `json:"baseline_win_rate,omitempty"`
	BaselineAvgScore float64 `json:"baseline_avg_score,omitempty"`
}

func (u *PlayerUseCase) CreatePlayer(ctx context.Context, ownerID string, req CreatePlayerRequest) (playerDomain.Player, error) {
	newPlayer := playerDomain.Player{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		Name:             req.Name,
		AvatarURL:        req.AvatarURL,
		BaselineWinRate:  req.BaselineWinRate,
		BaselineAvgScore: req.BaselineAvgScore,
		CreatedAt:        time.Now(),
	}
	if err := u.store.InsertPlayer(ctx, newPlayer); err != nil {
		return playerDomain.Player{}, err
	}
	return newPlayer, nil
}

func (u *PlayerUseCase) ListPlayers(ctx context.Context, ownerID string) ([]playerDomain.Player, error) {
	return u.store.GetPlayersByOwner(ctx, ownerID)
}

func (u *PlayerUseCase) UpdatePlayer(ctx context.Context, ownerID string, updated playerDomain.Player) (playerDomain.Player, error) {
	existing, err := u.store.GetPlayerByID(ctx, ownerID, updated.ID)
	if err != nil {
		return playerDomain.Player{}, err
	}
	updated.OwnerID = existing.OwnerID
	updated.CreatedAt = existing.CreatedAt
	if err := u.store.UpdatePlayer(ctx, updated); err != nil {
		return playerDomain.Player{}, err
	}
	return updated, nil
}

// DeletePlayer removes the roster entry only. Historical matches keep the
// id; leaderboards resolve it to the Unknown Player fallback afterwards.
func (u *PlayerUseCase) DeletePlayer(ctx context.Context, ownerID string, playerID string) error {
	if _, err := u.store.GetPlayerByID(ctx, ownerID, playerID); err != nil {
		return err
	}
	return u.store.DeletePlayer(ctx, ownerID, playerID)
}
