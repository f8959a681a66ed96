package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
	"github.com/custodia-labs/lexport/internal/logger"
)

// Resolver expands a bot into its dependency closure: every referenced
// intent, then every distinct custom slot type used by those intents.
type Resolver struct {
	models      driven.BotModelService
	concurrency int
}

// NewResolver creates a resolver. A concurrency of zero or less leaves the
// number of in-flight requests bounded only by the fan-out of each stage.
func NewResolver(models driven.BotModelService, concurrency int) *Resolver {
	return &Resolver{models: models, concurrency: concurrency}
}

// Resolve fetches the bot's dependencies and attaches them to bot.
// The first failed fetch aborts resolution and bot is left unchanged.
func (r *Resolver) Resolve(ctx context.Context, bot *domain.Bot) error {
	if bot == nil {
		return domain.ErrInvalidInput
	}

	deps := &domain.Dependencies{
		Intents:   []domain.Intent{},
		SlotTypes: []domain.SlotType{},
	}

	if len(bot.Intents) == 0 {
		logger.Debug("bot %s has no intents, skipping dependency resolution", bot.Name)
		bot.Dependencies = deps
		return nil
	}

	intents, err := r.fetchIntents(ctx, bot.Intents)
	if err != nil {
		return err
	}
	deps.Intents = intents

	refs := CollectSlotTypeRefs(intents)
	if len(refs) > 0 {
		slotTypes, err := r.fetchSlotTypes(ctx, refs)
		if err != nil {
			return err
		}
		deps.SlotTypes = slotTypes
	}

	bot.Dependencies = deps
	return nil
}

// fetchIntents issues one read per reference. Duplicate references are
// fetched and stored once per occurrence.
func (r *Resolver) fetchIntents(ctx context.Context, refs []domain.IntentReference) ([]domain.Intent, error) {
	logger.Section("Intents")

	results := make([]domain.Intent, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	for i, ref := range refs {
		g.Go(func() error {
			logger.Debug("fetching intent %s version %s", ref.IntentName, ref.IntentVersion)
			intent, err := r.models.GetIntent(gctx, ref.IntentName, ref.IntentVersion)
			if err != nil {
				return &domain.FetchError{
					Kind:    domain.KindIntent,
					Name:    ref.IntentName,
					Version: ref.IntentVersion,
					Err:     err,
				}
			}
			results[i] = *intent
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("fetched %d intents", len(results))
	return results, nil
}

func (r *Resolver) fetchSlotTypes(ctx context.Context, refs []domain.SlotTypeReference) ([]domain.SlotType, error) {
	logger.Section("Slot Types")

	results := make([]domain.SlotType, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	for i, ref := range refs {
		g.Go(func() error {
			logger.Debug("fetching slot type %s version %s", ref.Name, ref.Version)
			slotType, err := r.models.GetSlotType(gctx, ref.Name, ref.Version)
			if err != nil {
				return &domain.FetchError{
					Kind:    domain.KindSlotType,
					Name:    ref.Name,
					Version: ref.Version,
					Err:     err,
				}
			}
			results[i] = *slotType
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("fetched %d slot types", len(results))
	return results, nil
}

// CollectSlotTypeRefs returns the distinct custom slot type references used
// by intents, in first-seen order. Two versions of the same slot type are
// distinct references. Built-in slot types are skipped.
func CollectSlotTypeRefs(intents []domain.Intent) []domain.SlotTypeReference {
	seen := make(map[domain.SlotTypeReference]struct{})
	var refs []domain.SlotTypeReference

	for i := range intents {
		for _, slot := range intents[i].Slots {
			if !slot.IsCustom() {
				continue
			}
			ref := slot.SlotTypeRef()
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			refs = append(refs, ref)
		}
	}

	return refs
}
