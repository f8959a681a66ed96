package driven

import (
	"context"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// SnapshotStore persists archived exports.
type SnapshotStore interface {
	// Save stores a snapshot. IDs are unique; saving an existing ID fails.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Get retrieves a snapshot by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Snapshot, error)

	// List returns snapshots for a bot, most recent first.
	// A limit of zero or less returns every snapshot.
	List(ctx context.Context, botName string, limit int) ([]domain.Snapshot, error)
}
