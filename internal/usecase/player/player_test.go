package player

import (
	"context"
	"errors"
	"testing"

	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type fakePlayerStore struct {
	players map[string]playerDomain.Player
}

func newFakePlayerStore() *fakePlayerStore {
	return &fakePlayerStore{players: make(map[string]playerDomain.Player)}
}

func (f *fakePlayerStore) InsertPlayer(_ context.Context, p playerDomain.Player) error {
	f.players[p.ID] = p
	return nil
}

func (f *fakePlayerStore) GetPlayersByOwner(_ context.Context, ownerID string) ([]playerDomain.Player, error) {
	var out []playerDomain.Player
	for _, p := range f.players {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlayerStore) GetPlayerByID(_ context.Context, ownerID string, playerID string) (playerDomain.Player, error) {
	p, ok := f.players[playerID]
	if !ok || p.OwnerID != ownerID {
		return playerDomain.Player{}, errs.ErrPlayerNotFound
	}
	return p, nil
}

func (f *fakePlayerStore) UpdatePlayer(_ context.Context, p playerDomain.Player) error {
	f.players[p.ID] = p
	return nil
}

func (f *fakePlayerStore) DeletePlayer(_ context.Context, ownerID string, playerID string) error {
	delete(f.players, playerID)
	return nil
}

func TestCreatePlayerStampsIdentity(t *testing.T) {
	uc := NewPlayerUseCase(newFakePlayerStore())

	created, err := uc.CreatePlayer(context.Background(), "owner", CreatePlayerRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated player id")
	}
	if created.OwnerID != "owner" {
		t.Errorf("OwnerID = %q, want owner", created.OwnerID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestUpdatePlayerPreservesOwnership(t *testing.T) {
	store := newFakePlayerStore()
	uc := NewPlayerUseCase(store)

	created, err := uc.CreatePlayer(context.Background(), "owner", CreatePlayerRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	updated, err := uc.UpdatePlayer(context.Background(), "owner", playerDomain.Player{
		ID:      created.ID,
		OwnerID: "someone-else",
		Name:    "Alice B.",
	})
	if err != nil {
		t.Fatalf("UpdatePlayer: %v", err)
	}
	if updated.OwnerID != "owner" {
		t.Errorf("OwnerID = %q, want owner", updated.OwnerID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected CreatedAt to survive the update")
	}
	if updated.Name != "Alice B." {
		t.Errorf("Name = %q, want Alice B.", updated.Name)
	}
}

func TestUpdateUnknownPlayer(t *testing.T) {
	uc := NewPlayerUseCase(newFakePlayerStore())

	_, err := uc.UpdatePlayer(context.Background(), "owner", playerDomain.Player{ID: "ghost"})
	if !errors.Is(err, errs.ErrPlayerNotFound) {
		t.Fatalf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestDeletePlayerRemovesRosterEntry(t *testing.T) {
	store := newFakePlayerStore()
	uc := NewPlayerUseCase(store)

	created, err := uc.CreatePlayer(context.Background(), "owner", CreatePlayerRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if err := uc.DeletePlayer(context.Background(), "owner", created.ID); err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}

	if err := uc.DeletePlayer(context.Background(), "owner", created.ID); !errors.Is(err, errs.ErrPlayerNotFound) {
		t.Fatalf("second delete err = %v, want ErrPlayerNotFound", err)
	}
}
