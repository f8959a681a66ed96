package driving

import (
	"context"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// SnapshotService reads archived exports.
type SnapshotService interface {
	// List returns snapshots for a bot, most recent first.
	List(ctx context.Context, botName string, limit int) ([]domain.Snapshot, error)

	// Get retrieves a snapshot by ID.
	Get(ctx context.Context, id string) (*domain.Snapshot, error)
}
