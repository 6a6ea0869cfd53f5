package space

import (
	"context"
	"errors"
	"testing"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type fakeSpaceStore struct {
	spaces map[string]spaceDomain.Space
	active map[string]string
}

func newFakeSpaceStore() *fakeSpaceStore {
	return &fakeSpaceStore{spaces: make(map[string]spaceDomain.Space), active: make(map[string]string)}
}

func (f *fakeSpaceStore) InsertSpace(_ context.Context, s spaceDomain.Space) error {
	f.spaces[s.ID] = s
	return nil
}

func (f *fakeSpaceStore) GetSpacesByOwner(_ context.Context, _ string) ([]spaceDomain.Space, error) {
	var out []spaceDomain.Space
	for _, s := range f.spaces {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSpaceStore) GetSpaceByID(_ context.Context, _ string, spaceID string) (spaceDomain.Space, error) {
	s, ok := f.spaces[spaceID]
	if !ok {
		return spaceDomain.Space{}, errs.ErrSpaceNotFound
	}
	return s, nil
}

func (f *fakeSpaceStore) DeleteSpace(_ context.Context, _ string, spaceID string) error {
	delete(f.spaces, spaceID)
	return nil
}

func (f *fakeSpaceStore) StoreActiveSpace(sessionID string, spaceID string) {
	f.active[sessionID] = spaceID
}

func (f *fakeSpaceStore) GetActiveSpace(sessionID string) string {
	return f.active[sessionID]
}

func TestActivateAndResolveScope(t *testing.T) {
	f := newFakeSpaceStore()
	f.spaces["s1"] = spaceDomain.Space{ID: "s1", OwnerID: "owner", Name: "Office"}
	uc := NewSpaceUseCase(f, f)

	if scope := uc.ActiveScope("sess"); !scope.IsGlobal() {
		t.Error("fresh session must resolve to the global scope")
	}

	if err := uc.Activate(context.Background(), "owner", "sess", "s1"); err != nil {
		t.Fatal(err)
	}
	scope := uc.ActiveScope("sess")
	if scope.IsGlobal() || scope.SpaceID() != "s1" {
		t.Errorf("active scope: %+v", scope)
	}

	if err := uc.Activate(context.Background(), "owner", "sess", ""); err != nil {
		t.Fatal(err)
	}
	if !uc.ActiveScope("sess").IsGlobal() {
		t.Error("empty id must switch back to global")
	}
}

func TestActivateUnknownSpace(t *testing.T) {
	uc := NewSpaceUseCase(newFakeSpaceStore(), newFakeSpaceStore())
	err := uc.Activate(context.Background(), "owner", "sess", "missing")
	if !errors.Is(err, errs.ErrSpaceNotFound) {
		t.Fatalf("got %v, want ErrSpaceNotFound", err)
	}
}

func TestDeleteActiveSpaceClearsSelection(t *testing.T) {
	f := newFakeSpaceStore()
	f.spaces["s1"] = spaceDomain.Space{ID: "s1", OwnerID: "owner"}
	uc := NewSpaceUseCase(f, f)

	if err := uc.Activate(context.Background(), "owner", "sess", "s1"); err != nil {
		t.Fatal(err)
	}
	if err := uc.DeleteSpace(context.Background(), "owner", "sess", "s1"); err != nil {
		t.Fatal(err)
	}
	if !uc.ActiveScope("sess").IsGlobal() {
		t.Error("deleting the active space must fall back to global")
	}
}
