package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string]domain.Snapshot),
	}
}

// Save stores a snapshot.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[snapshot.ID]; ok {
		return fmt.Errorf("snapshot %s: %w", snapshot.ID, domain.ErrInvalidInput)
	}
	stored := *snapshot
	stored.Document = slices.Clone(snapshot.Document)
	s.snapshots[snapshot.ID] = stored
	return nil
}

// Get retrieves a snapshot by ID.
func (s *SnapshotStore) Get(_ context.Context, id string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &snapshot, nil
}

// List returns snapshots for a bot, most recent first.
func (s *SnapshotStore) List(_ context.Context, botName string, limit int) ([]domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Snapshot, 0)
	for _, snapshot := range s.snapshots {
		if snapshot.BotName == botName {
			result = append(result, snapshot)
		}
	}

	slices.SortFunc(result, func(a, b domain.Snapshot) int {
		return b.ExportedAt.Compare(a.ExportedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
