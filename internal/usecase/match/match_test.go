package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/statuses"
	tournamentUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/tournament"
)

type fakeStores struct {
	matches     []matchDomain.Match
	players     []playerDomain.Player
	games       map[string]gameDomain.Game
	tournaments []tournamentDomain.Tournament
	completed   map[string]string
	insertErr   error
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		games:     make(map[string]gameDomain.Game),
		completed: make(map[string]string),
	}
}

func (f *fakeStores) InsertMatch(_ context.Context, m matchDomain.Match) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.matches = append(f.matches, m)
	return nil
}

func (f *fakeStores) GetMatchesByOwner(_ context.Context, _ string) ([]matchDomain.Match, error) {
	return f.matches, nil
}

func (f *fakeStores) GetMatchByID(_ context.Context, _ string, matchID string) (matchDomain.Match, error) {
	for _, m := range f.matches {
		if m.ID == matchID {
			return m, nil
		}
	}
	return matchDomain.Match{}, errs.ErrMatchNotFound
}

func (f *fakeStores) UpdateMatchResult(_ context.Context, _ string, matchID string, winnerIDs []string, awards []matchDomain.PointsAward) error {
	for i := range f.matches {
		if f.matches[i].ID == matchID {
			f.matches[i].WinnerIDs = winnerIDs
			f.matches[i].PointsAwarded = awards
			return nil
		}
	}
	return errs.ErrMatchNotFound
}

func (f *fakeStores) GetPlayersByOwner(_ context.Context, _ string) ([]playerDomain.Player, error) {
	return f.players, nil
}

func (f *fakeStores) GetGameByID(_ context.Context, _ string, gameID string) (gameDomain.Game, error) {
	g, ok := f.games[gameID]
	if !ok {
		return gameDomain.Game{}, errs.ErrGameNotFound
	}
	return g, nil
}

func (f *fakeStores) GetTournamentsByOwner(_ context.Context, _ string) ([]tournamentDomain.Tournament, error) {
	return f.tournaments, nil
}

type completionFunc func(tournamentID, winnerID string) error

func (fn completionFunc) CompleteTournament(_ context.Context, _ string, tournamentID string, winnerID string, _ time.Time) error {
	return fn(tournamentID, winnerID)
}

func newUseCase(f *fakeStores) *MatchUseCase {
	monitor := tournamentUC.NewMonitor(completionFunc(func(tournamentID, winnerID string) error {
		f.completed[tournamentID] = winnerID
		return nil
	}), zap.NewNop().Sugar())
	return NewMatchUseCase(f, f, f, f, monitor)
}

func TestRecordMatchRejectsWinnerOutsideParticipants(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 3}

	_, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "g1",
		PlayerIDs: []string{"a", "b"},
		WinnerIDs: []string{"c"},
	}, spaceDomain.GlobalScope())

	if !errors.Is(err, errs.ErrWinnerNotParticipant) {
		t.Fatalf("got %v, want ErrWinnerNotParticipant", err)
	}
	if len(f.matches) != 0 {
		t.Error("invalid match must not be written")
	}
}

func TestRecordMatchRejectsAwardOutsideParticipants(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 3}

	_, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:        "g1",
		PlayerIDs:     []string{"a", "b"},
		WinnerIDs:     []string{"a"},
		PointsAwarded: []matchDomain.PointsAward{{PlayerID: "ghost", Points: 5}},
	}, spaceDomain.GlobalScope())

	if !errors.Is(err, errs.ErrAwardNotParticipant) {
		t.Fatalf("got %v, want ErrAwardNotParticipant", err)
	}
}

func TestRecordMatchRejectsUnknownParticipant(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 3}
	f.players = []playerDomain.Player{{ID: "real", Name: "Real"}}

	_, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "g1",
		PlayerIDs: []string{"ghost-1", "ghost-2"},
		WinnerIDs: []string{"ghost-1"},
	}, spaceDomain.GlobalScope())

	if !errors.Is(err, errs.ErrParticipantNotFound) {
		t.Fatalf("got %v, want ErrParticipantNotFound", err)
	}
	if len(f.matches) != 0 {
		t.Error("match with off-roster participants must not be written")
	}
}

func TestRecordMatchDefaultsAwardsToPointsPerWin(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 3}
	f.players = []playerDomain.Player{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}

	committed, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "g1",
		PlayerIDs: []string{"a", "b"},
		WinnerIDs: []string{"a"},
	}, spaceDomain.GlobalScope())
	if err != nil {
		t.Fatal(err)
	}
	if len(committed.PointsAwarded) != 1 || committed.PointsAwarded[0].PlayerID != "a" || committed.PointsAwarded[0].Points != 3 {
		t.Errorf("default awards: %v", committed.PointsAwarded)
	}
}

func TestRecordMatchStampsActiveScope(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 1}
	f.players = []playerDomain.Player{{ID: "a", Name: "A"}}

	committed, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "g1",
		PlayerIDs: []string{"a"},
		WinnerIDs: []string{"a"},
	}, spaceDomain.ScopeFor("office"))
	if err != nil {
		t.Fatal(err)
	}
	if committed.SpaceID != "office" {
		t.Errorf("space id: got %q, want office", committed.SpaceID)
	}
}

func TestRecordMatchUnknownGame(t *testing.T) {
	f := newFakeStores()

	_, _, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "missing",
		PlayerIDs: []string{"a"},
	}, spaceDomain.GlobalScope())
	if !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("got %v, want ErrGameNotFound", err)
	}
}

func TestRecordMatchTriggersMonitor(t *testing.T) {
	f := newFakeStores()
	f.games["g1"] = gameDomain.Game{ID: "g1", PointsPerWin: 10}
	f.players = []playerDomain.Player{{ID: "a", Name: "A"}}
	f.tournaments = []tournamentDomain.Tournament{
		{ID: "t1", OwnerID: "owner", GameID: "g1", TargetPoints: 10, Status: statuses.StatusActive},
	}

	_, completed, err := newUseCase(f).RecordMatch(context.Background(), "owner", RecordMatchRequest{
		GameID:    "g1",
		PlayerIDs: []string{"a"},
		WinnerIDs: []string{"a"},
	}, spaceDomain.GlobalScope())
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 1 || completed[0].ID != "t1" || completed[0].WinnerID != "a" {
		t.Fatalf("expected t1 completed by a, got %v", completed)
	}
	if f.completed["t1"] != "a" {
		t.Error("completion not persisted")
	}
}

func TestCorrectMatchRevalidatesWinners(t *testing.T) {
	f := newFakeStores()
	f.matches = []matchDomain.Match{{ID: "m1", OwnerID: "owner", GameID: "g1", PlayerIDs: []string{"a", "b"}}}

	_, _, err := newUseCase(f).CorrectMatch(context.Background(), "owner", "m1", []string{"ghost"}, nil)
	if !errors.Is(err, errs.ErrWinnerNotParticipant) {
		t.Fatalf("got %v, want ErrWinnerNotParticipant", err)
	}
}

func TestListMatchesFiltersByScope(t *testing.T) {
	f := newFakeStores()
	f.matches = []matchDomain.Match{
		{ID: "global", PlayerIDs: []string{"a"}},
		{ID: "scoped", PlayerIDs: []string{"a"}, SpaceID: "s1"},
	}

	uc := newUseCase(f)
	got, err := uc.ListMatches(context.Background(), "owner", spaceDomain.GlobalScope())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "global" {
		t.Errorf("global scope: %v", got)
	}

	got, _ = uc.ListMatches(context.Background(), "owner", spaceDomain.ScopeFor("s1"))
	if len(got) != 1 || got[0].ID != "scoped" {
		t.Errorf("space scope: %v", got)
	}
}
