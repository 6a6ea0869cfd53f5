package state

import (
	"context"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
)

// Snapshot is the full-collection view pushed to subscribed clients after
// every committed write. Deltas are never sent; consumers always recompute
// derived views from the whole snapshot.
type Snapshot struct {
	Players     []playerDomain.Player         `json:"players"`
	Games       []gameDomain.Game             `json:"games"`
	Matches     []matchDomain.Match           `json:"matches"`
	Spaces      []spaceDomain.Space           `json:"spaces"`
	Tournaments []tournamentDomain.Tournament `json:"tournaments"`
}

type PlayerLister interface {
	GetPlayersByOwner(ctx context.Context, ownerID string) ([]playerDomain.Player, error)
}

type GameLister interface {
	GetGamesByOwner(ctx context.Context, ownerID string) ([]gameDomain.Game, error)
}

type MatchLister interface {
	GetMatchesByOwner(ctx context.Context, ownerID string) ([]matchDomain.Match, error)
}

type SpaceLister interface {
	GetSpacesByOwner(ctx context.Context, ownerID string) ([]spaceDomain.Space, error)
}

type TournamentLister interface {
	GetTournamentsByOwner(ctx context.Context, ownerID string) ([]tournamentDomain.Tournament, error)
}

// StateUseCase assembles per-user snapshots from the entity store. It owns
// no caches: every snapshot is read fresh, so no ordering guarantees are
// needed between concurrent writes.
type StateUseCase struct {
	players     PlayerLister
	games       GameLister
	matches     MatchLister
	spaces      SpaceLister
	tournaments TournamentLister
}

func NewStateUseCase(players PlayerLister, games GameLister, matches MatchLister, spaces SpaceLister, tournaments TournamentLister) *StateUseCase {
	return &StateUseCase{
		players:     players,
		games:       games,
		matches:     matches,
		spaces:      spaces,
		tournaments: tournaments,
	}
}

func (s *StateUseCase) LoadSnapshot(ctx context.Context, ownerID string) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Players, err = s.players.GetPlayersByOwner(ctx, ownerID); err != nil {
		return Snapshot{}, err
	}
	if snap.Games, err = s.games.GetGamesByOwner(ctx, ownerID); err != nil {
		return Snapshot{}, err
	}
	if snap.Matches, err = s.matches.GetMatchesByOwner(ctx, ownerID); err != nil {
		return Snapshot{}, err
	}
	if snap.Spaces, err = s.spaces.GetSpacesByOwner(ctx, ownerID); err != nil {
		return Snapshot{}, err
	}
	if snap.Tournaments, err = s.tournaments.GetTournamentsByOwner(ctx, ownerID); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
