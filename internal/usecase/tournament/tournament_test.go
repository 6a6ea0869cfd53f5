package tournament

import (
	"context"
	"errors"
	"testing"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/statuses"
)

type fakeTournamentStore struct {
	inserted []tournamentDomain.Tournament
}

func (f *fakeTournamentStore) InsertTournament(_ context.Context, t tournamentDomain.Tournament) error {
	f.inserted = append(f.inserted, t)
	return nil
}

func (f *fakeTournamentStore) GetTournamentsByOwner(_ context.Context, _ string) ([]tournamentDomain.Tournament, error) {
	return f.inserted, nil
}

type fakeGameChecker struct {
	known map[string]bool
}

func (f *fakeGameChecker) GameExists(_ context.Context, _ string, gameID string) (bool, error) {
	return f.known[gameID], nil
}

func TestCreateTournamentStampsScopeAndStatus(t *testing.T) {
	store := &fakeTournamentStore{}
	uc := NewTournamentUseCase(store, &fakeGameChecker{known: map[string]bool{"g1": true}})

	created, err := uc.CreateTournament(context.Background(), "owner",
		CreateTournamentRequest{Name: "Spring Cup", GameID: "g1", TargetPoints: 50},
		spaceDomain.ScopeFor("office"))
	if err != nil {
		t.Fatalf("CreateTournament: %v", err)
	}
	if created.Status != statuses.StatusActive {
		t.Errorf("Status = %q, want active", created.Status)
	}
	if created.SpaceID != "office" {
		t.Errorf("SpaceID = %q, want office", created.SpaceID)
	}
	if created.WinnerID != "" || created.CompletedAt != nil {
		t.Error("a fresh tournament must not carry a winner")
	}
}

func TestCreateTournamentUnknownGame(t *testing.T) {
	uc := NewTournamentUseCase(&fakeTournamentStore{}, &fakeGameChecker{known: map[string]bool{}})

	_, err := uc.CreateTournament(context.Background(), "owner",
		CreateTournamentRequest{Name: "Cup", GameID: "ghost", TargetPoints: 10},
		spaceDomain.GlobalScope())
	if !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("err = %v, want ErrGameNotFound", err)
	}
}

func TestListTournamentsFollowsScope(t *testing.T) {
	store := &fakeTournamentStore{inserted: []tournamentDomain.Tournament{
		{ID: "t1", SpaceID: ""},
		{ID: "t2", SpaceID: "office"},
		{ID: "t3", SpaceID: "club"},
	}}
	uc := NewTournamentUseCase(store, &fakeGameChecker{})

	global, err := uc.ListTournaments(context.Background(), "owner", spaceDomain.GlobalScope())
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if len(global) != 1 || global[0].ID != "t1" {
		t.Errorf("global scope returned %v, want just t1", global)
	}

	office, err := uc.ListTournaments(context.Background(), "owner", spaceDomain.ScopeFor("office"))
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if len(office) != 1 || office[0].ID != "t2" {
		t.Errorf("office scope returned %v, want just t2", office)
	}
}
