package driven

import (
	"context"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// BotModelService reads bot, intent and slot type definitions from the
// remote model building service. Implementations must be safe for
// concurrent use; the resolver issues sibling reads in parallel.
type BotModelService interface {
	// GetBot returns the bot definition for a version number or alias.
	GetBot(ctx context.Context, name, versionOrAlias string) (*domain.Bot, error)

	// GetIntent returns one version of an intent.
	GetIntent(ctx context.Context, name, version string) (*domain.Intent, error)

	// GetSlotType returns one version of a custom slot type.
	GetSlotType(ctx context.Context, name, version string) (*domain.SlotType, error)
}
