package space

import (
	"context"
	"time"

	"github.com/google/uuid"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type SpaceStore interface {
	InsertSpace(ctx context.Context, s spaceDomain.Space) error
	GetSpacesByOwner(ctx context.Context, ownerID string) ([]spaceDomain.Space, error)
	GetSpaceByID(ctx context.Context, ownerID string, spaceID string) (spaceDomain.Space, error)
	DeleteSpace(ctx context.Context, ownerID string, spaceID string) error
}

// ActiveSpaceStore keeps the session's active space selection. An empty
// value means no space is active and the session sees the global context.
type ActiveSpaceStore interface {
	StoreActiveSpace(sessionID string, spaceID string)
	GetActiveSpace(sessionID string) string
}

type SpaceUseCase struct {
	store  SpaceStore
	active ActiveSpaceStore
}

func NewSpaceUseCase(store SpaceStore, active ActiveSpaceStore) *SpaceUseCase {
	return &SpaceUseCase{store: store, active: active}
}

func (u *SpaceUseCase) CreateSpace(ctx context.Context, ownerID string, name string) (spaceDomain.Space, error) {
	newSpace := spaceDomain.Space{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := u.store.InsertSpace(ctx, newSpace); err != nil {
		return spaceDomain.Space{}, err
	}
	return newSpace, nil
}

func (u *SpaceUseCase) ListSpaces(ctx context.Context, ownerID string) ([]spaceDomain.Space, error) {
	return u.store.GetSpacesByOwner(ctx, ownerID)
}

// DeleteSpace also clears the selection if the deleted space was active.
func (u *SpaceUseCase) DeleteSpace(ctx context.Context, ownerID string, sessionID string, spaceID string) error {
	if _, err := u.store.GetSpaceByID(ctx, ownerID, spaceID); err != nil {
		return err
	}
	if err := u.store.DeleteSpace(ctx, ownerID, spaceID); err != nil {
		return err
	}
	if u.active.GetActiveSpace(sessionID) == spaceID {
		u.active.StoreActiveSpace(sessionID, "")
	}
	return nil
}

// Activate selects the session's active space; an empty id switches the
// session back to the global context.
func (u *SpaceUseCase) Activate(ctx context.Context, ownerID string, sessionID string, spaceID string) error {
	if spaceID != "" {
		if _, err := u.store.GetSpaceByID(ctx, ownerID, spaceID); err != nil {
			return errs.ErrSpaceNotFound
		}
	}
	u.active.StoreActiveSpace(sessionID, spaceID)
	return nil
}

// ActiveScope resolves the session's current scope.
func (u *SpaceUseCase) ActiveScope(sessionID string) spaceDomain.Scope {
	return spaceDomain.ScopeFor(u.active.GetActiveSpace(sessionID))
}
