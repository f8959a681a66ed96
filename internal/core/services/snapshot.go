package services

import (
	"context"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
	"github.com/custodia-labs/lexport/internal/core/ports/driving"
)

// Ensure SnapshotService implements the interface.
var _ driving.SnapshotService = (*SnapshotService)(nil)

// SnapshotService reads archived exports.
type SnapshotService struct {
	store driven.SnapshotStore
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(store driven.SnapshotStore) *SnapshotService {
	return &SnapshotService{store: store}
}

// List returns snapshots for a bot, most recent first.
func (s *SnapshotService) List(ctx context.Context, botName string, limit int) ([]domain.Snapshot, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if botName == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.List(ctx, botName, limit)
}

// Get retrieves a snapshot by ID.
func (s *SnapshotService) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}
