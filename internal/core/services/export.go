package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
	"github.com/custodia-labs/lexport/internal/core/ports/driving"
	"github.com/custodia-labs/lexport/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService fetches a bot, resolves its dependencies, normalises and
// encodes the result.
type ExportService struct {
	models    driven.BotModelService
	resolver  *Resolver
	snapshots driven.SnapshotStore
	now       func() time.Time
}

// NewExportService creates a new export service.
// snapshots may be nil, in which case Archive is unavailable.
func NewExportService(
	models driven.BotModelService,
	snapshots driven.SnapshotStore,
	concurrency int,
) *ExportService {
	return &ExportService{
		models:    models,
		resolver:  NewResolver(models, concurrency),
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Export runs the full pipeline. Any fetch failure is returned as a
// *domain.FetchError and no document is produced.
func (s *ExportService) Export(ctx context.Context, req driving.ExportRequest) (*driving.ExportResult, error) {
	if s.models == nil {
		return nil, domain.ErrNotImplemented
	}
	if req.BotName == "" {
		return nil, fmt.Errorf("%w: bot name is required", domain.ErrInvalidInput)
	}
	if req.Version == "" {
		req.Version = domain.LatestVersion
	}

	logger.Section("Bot")
	logger.Debug("fetching bot %s version %s", req.BotName, req.Version)

	bot, err := s.models.GetBot(ctx, req.BotName, req.Version)
	if err != nil {
		return nil, &domain.FetchError{
			Kind:    domain.KindBot,
			Name:    req.BotName,
			Version: req.Version,
			Err:     err,
		}
	}

	if err := s.resolver.Resolve(ctx, bot); err != nil {
		return nil, err
	}

	if !req.Raw {
		Normalise(bot)
	}

	doc, err := Encode(bot, req.Pretty)
	if err != nil {
		return nil, err
	}

	logger.Info("exported bot %s with %d intents and %d slot types",
		bot.Name, len(bot.Dependencies.Intents), len(bot.Dependencies.SlotTypes))

	return &driving.ExportResult{
		Request:  req,
		Bot:      bot,
		Document: doc,
	}, nil
}

// Archive stores the export as a new snapshot.
func (s *ExportService) Archive(ctx context.Context, result *driving.ExportResult) (*domain.Snapshot, error) {
	if s.snapshots == nil {
		return nil, domain.ErrNotImplemented
	}
	if result == nil || result.Bot == nil {
		return nil, domain.ErrInvalidInput
	}

	snapshot := &domain.Snapshot{
		ID:         uuid.New().String(),
		BotName:    result.Bot.Name,
		BotVersion: result.Request.Version,
		Checksum:   result.Bot.Checksum,
		Pretty:     result.Request.Pretty,
		ExportedAt: s.now().UTC(),
		Document:   result.Document,
	}
	if deps := result.Bot.Dependencies; deps != nil {
		snapshot.IntentCount = len(deps.Intents)
		snapshot.SlotTypeCount = len(deps.SlotTypes)
	}

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	logger.Debug("archived snapshot %s for bot %s", snapshot.ID, snapshot.BotName)
	return snapshot, nil
}
