package match

import (
	"context"
	"time"

	"github.com/google/uuid"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	tournamentUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/tournament"
)

type MatchStore interface {
	InsertMatch(ctx context.Context, m matchDomain.Match) error
	GetMatchesByOwner(ctx context.Context, ownerID string) ([]matchDomain.Match, error)
	GetMatchByID(ctx context.Context, ownerID string, matchID string) (matchDomain.Match, error)
	UpdateMatchResult(ctx context.Context, ownerID string, matchID string, winnerIDs []string, awards []matchDomain.PointsAward) error
}

type PlayerStore interface {
	GetPlayersByOwner(ctx context.Context, ownerID string) ([]playerDomain.Player, error)
}

type GameStore interface {
	GetGameByID(ctx context.Context, ownerID string, gameID string) (gameDomain.Game, error)
}

type TournamentLister interface {
	GetTournamentsByOwner(ctx context.Context, ownerID string) ([]tournamentDomain.Tournament, error)
}

type MatchUseCase struct {
	store       MatchStore
	players     PlayerStore
	games       GameStore
	tournaments TournamentLister
	monitor     *tournamentUC.Monitor
}

func NewMatchUseCase(store MatchStore, players PlayerStore, games GameStore, tournaments TournamentLister, monitor *tournamentUC.Monitor) *MatchUseCase {
	return &MatchUseCase{
		store:       store,
		players:     players,
		games:       games,
		tournaments: tournaments,
		monitor:     monitor,
	}
}

type RecordMatchRequest struct {
	GameID        string                    `json:"game_id"`
	PlayerIDs     []string                  `json:"player_ids"`
	WinnerIDs     []string                  `json:"winner_ids"`
	PointsAwarded []matchDomain.PointsAward `json:"points_awarded,omitempty"`
	Handicaps     []matchDomain.Handicap    `json:"handicaps,omitempty"`
}

// RecordMatch validates and commits a match, then runs the tournament
// monitor once over the refreshed list. The completed tournaments (possibly
// none) are returned alongside the match so the caller can surface them.
func (u *MatchUseCase) RecordMatch(ctx context.Context, ownerID string, req RecordMatchRequest, scope spaceDomain.Scope) (matchDomain.Match, []tournamentDomain.Tournament, error) {
	foundGame, err := u.games.GetGameByID(ctx, ownerID, req.GameID)
	if err != nil {
		return matchDomain.Match{}, nil, err
	}

	if err := validateParticipants(req.PlayerIDs, req.WinnerIDs, req.PointsAwarded); err != nil {
		return matchDomain.Match{}, nil, err
	}

	roster, err := u.players.GetPlayersByOwner(ctx, ownerID)
	if err != nil {
		return matchDomain.Match{}, nil, err
	}
	known := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		known[p.ID] = struct{}{}
	}
	for _, id := range req.PlayerIDs {
		if _, ok := known[id]; !ok {
			return matchDomain.Match{}, nil, errs.ErrParticipantNotFound
		}
	}

	awards := req.PointsAwarded
	if len(awards) == 0 {
		// default scoring: points-per-win to every winner
		for _, winnerID := range req.WinnerIDs {
			awards = append(awards, matchDomain.PointsAward{PlayerID: winnerID, Points: foundGame.PointsPerWin})
		}
	}

	newMatch := matchDomain.Match{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		GameID:        req.GameID,
		Timestamp:     time.Now(),
		SpaceID:       scope.SpaceID(),
		PlayerIDs:     req.PlayerIDs,
		WinnerIDs:     req.WinnerIDs,
		PointsAwarded: awards,
		Handicaps:     req.Handicaps,
	}

	if err := u.store.InsertMatch(ctx, newMatch); err != nil {
		return matchDomain.Match{}, nil, err
	}

	completed := u.runMonitor(ctx, ownerID, newMatch)
	return newMatch, completed, nil
}

// CorrectMatch is the only mutation a recorded match admits: fixing winners
// and point awards. Participants are immutable.
func (u *MatchUseCase) CorrectMatch(ctx context.Context, ownerID string, matchID string, winnerIDs []string, awards []matchDomain.PointsAward) (matchDomain.Match, []tournamentDomain.Tournament, error) {
	existing, err := u.store.GetMatchByID(ctx, ownerID, matchID)
	if err != nil {
		return matchDomain.Match{}, nil, err
	}

	if err := validateParticipants(existing.PlayerIDs, winnerIDs, awards); err != nil {
		return matchDomain.Match{}, nil, err
	}

	if err := u.store.UpdateMatchResult(ctx, ownerID, matchID, winnerIDs, awards); err != nil {
		return matchDomain.Match{}, nil, err
	}

	existing.WinnerIDs = winnerIDs
	existing.PointsAwarded = awards
	completed := u.runMonitor(ctx, ownerID, existing)
	return existing, completed, nil
}

// ListMatches returns the owner's matches visible in the scope, newest last.
func (u *MatchUseCase) ListMatches(ctx context.Context, ownerID string, scope spaceDomain.Scope) ([]matchDomain.Match, error) {
	all, err := u.store.GetMatchesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []matchDomain.Match
	for _, m := range all {
		if scope.Contains(m.SpaceID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (u *MatchUseCase) runMonitor(ctx context.Context, ownerID string, committed matchDomain.Match) []tournamentDomain.Tournament {
	allMatches, err := u.store.GetMatchesByOwner(ctx, ownerID)
	if err != nil {
		// the match write has already committed; the monitor just skips this turn
		allMatches = []matchDomain.Match{committed}
	} else if !containsMatch(allMatches, committed.ID) {
		allMatches = append(allMatches, committed)
	}

	tournaments, err := u.tournaments.GetTournamentsByOwner(ctx, ownerID)
	if err != nil {
		return nil
	}
	players, err := u.players.GetPlayersByOwner(ctx, ownerID)
	if err != nil {
		players = nil
	}

	return u.monitor.CheckAfterMatch(ctx, committed, allMatches, tournaments, players)
}

func containsMatch(matches []matchDomain.Match, id string) bool {
	for _, m := range matches {
		if m.ID == id {
			return true
		}
	}
	return false
}

func validateParticipants(playerIDs, winnerIDs []string, awards []matchDomain.PointsAward) error {
	if len(playerIDs) == 0 {
		return errs.ErrNoParticipants
	}
	participants := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		participants[id] = struct{}{}
	}
	for _, id := range winnerIDs {
		if _, ok := participants[id]; !ok {
			return errs.ErrWinnerNotParticipant
		}
	}
	for _, award := range awards {
		if _, ok := participants[award.PlayerID]; !ok {
			return errs.ErrAwardNotParticipant
		}
	}
	return nil
}
