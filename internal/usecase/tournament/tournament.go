package tournament

import (
	"context"
	"time"

	"github.com/google/uuid"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/statuses"
)

type TournamentStore interface {
	InsertTournament(ctx context.Context, t tournamentDomain.Tournament) error
	GetTournamentsByOwner(ctx context.Context, ownerID string) ([]tournamentDomain.Tournament, error)
}

type GameChecker interface {
	GameExists(ctx context.Context, ownerID string, gameID string) (bool, error)
}

type TournamentUseCase struct {
	store TournamentStore
	games GameChecker
}

func NewTournamentUseCase(store TournamentStore, games GameChecker) *TournamentUseCase {
	return &TournamentUseCase{store: store, games: games}
}

type CreateTournamentRequest struct {
	Name         string `json:"name"`
	GameID       string `json:"game_id"`
	TargetPoints int    `json:"target_points"`
}

// CreateTournament starts an active tournament in the given scope.
func (t *TournamentUseCase) CreateTournament(ctx context.Context, ownerID string, req CreateTournamentRequest, scope spaceDomain.Scope) (tournamentDomain.Tournament, error) {
	ok, err := t.games.GameExists(ctx, ownerID, req.GameID)
	if err != nil {
		return tournamentDomain.Tournament{}, err
	}
	if !ok {
		return tournamentDomain.Tournament{}, errs.ErrGameNotFound
	}

	newTournament := tournamentDomain.Tournament{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         req.Name,
		GameID:       req.GameID,
		TargetPoints: req.TargetPoints,
		SpaceID:      scope.SpaceID(),
		Status:       statuses.StatusActive,
		CreatedAt:    time.Now(),
	}

	if err := t.store.InsertTournament(ctx, newTournament); err != nil {
		return tournamentDomain.Tournament{}, err
	}
	return newTournament, nil
}

// ListTournaments returns the owner's tournaments visible in the scope.
func (t *TournamentUseCase) ListTournaments(ctx context.Context, ownerID string, scope spaceDomain.Scope) ([]tournamentDomain.Tournament, error) {
	all, err := t.store.GetTournamentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []tournamentDomain.Tournament
	for _, tr := range all {
		if scope.Contains(tr.SpaceID) {
			out = append(out, tr)
		}
	}
	return out, nil
}
