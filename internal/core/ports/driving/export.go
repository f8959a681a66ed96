package driving

import (
	"context"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// ExportService turns a bot into a self-contained JSON document.
type ExportService interface {
	// Export fetches the bot, resolves its intents and slot types, and
	// encodes the result. Nothing is returned if any fetch fails.
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)

	// Archive records a completed export in the snapshot store.
	// Returns domain.ErrNotImplemented when no store is configured.
	Archive(ctx context.Context, result *ExportResult) (*domain.Snapshot, error)
}

// ExportRequest selects the bot and output format.
type ExportRequest struct {
	// BotName is required.
	BotName string

	// Version is a version number or alias. Empty means $LATEST.
	Version string

	// Pretty selects key-sorted, indented JSON.
	Pretty bool

	// Raw skips normalisation and keeps service order.
	Raw bool
}

// ExportResult is a resolved bot and its encoding.
type ExportResult struct {
	Request  ExportRequest
	Bot      *domain.Bot
	Document []byte
}
