package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
)

// Ensure ModelService implements the interface.
var _ driven.BotModelService = (*ModelService)(nil)

// ModelService is an in-memory implementation of driven.BotModelService.
// It records every call so tests can assert on fan-out and deduplication,
// and can be told to fail individual reads.
type ModelService struct {
	mu        sync.Mutex
	bots      map[string]domain.Bot
	intents   map[string]domain.Intent
	slotTypes map[string]domain.SlotType
	failures  map[string]error
	calls     map[string]int
}

// NewModelService creates an empty in-memory model service.
func NewModelService() *ModelService {
	return &ModelService{
		bots:      make(map[string]domain.Bot),
		intents:   make(map[string]domain.Intent),
		slotTypes: make(map[string]domain.SlotType),
		failures:  make(map[string]error),
		calls:     make(map[string]int),
	}
}

// AddBot stores a bot under its name and version.
func (m *ModelService) AddBot(bot domain.Bot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bots[Key(domain.KindBot, bot.Name, bot.Version)] = bot
}

// AddIntent stores an intent under its name and version.
func (m *ModelService) AddIntent(intent domain.Intent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[Key(domain.KindIntent, intent.Name, intent.Version)] = intent
}

// AddSlotType stores a slot type under its name and version.
func (m *ModelService) AddSlotType(slotType domain.SlotType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slotTypes[Key(domain.KindSlotType, slotType.Name, slotType.Version)] = slotType
}

// FailOn makes the read identified by kind, name and version return err.
func (m *ModelService) FailOn(kind, name, version string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[Key(kind, name, version)] = err
}

// Calls returns how many times the read identified by kind, name and
// version was issued.
func (m *ModelService) Calls(kind, name, version string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[Key(kind, name, version)]
}

// TotalCalls returns the number of reads issued for a kind.
func (m *ModelService) TotalCalls(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	prefix := kind + "/"
	for k, n := range m.calls {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			total += n
		}
	}
	return total
}

// GetBot returns a copy of a stored bot.
func (m *ModelService) GetBot(_ context.Context, name, versionOrAlias string) (*domain.Bot, error) {
	key := Key(domain.KindBot, name, versionOrAlias)
	if err := m.record(key); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	bot, ok := m.bots[key]
	if !ok {
		return nil, fmt.Errorf("bot %s: %w", name, domain.ErrNotFound)
	}
	return cloneBot(bot), nil
}

// GetIntent returns a copy of a stored intent.
func (m *ModelService) GetIntent(ctx context.Context, name, version string) (*domain.Intent, error) {
	key := Key(domain.KindIntent, name, version)
	if err := m.record(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	intent, ok := m.intents[key]
	if !ok {
		return nil, fmt.Errorf("intent %s: %w", name, domain.ErrNotFound)
	}
	intent.SampleUtterances = slices.Clone(intent.SampleUtterances)
	intent.Slots = slices.Clone(intent.Slots)
	return &intent, nil
}

// GetSlotType returns a copy of a stored slot type.
func (m *ModelService) GetSlotType(ctx context.Context, name, version string) (*domain.SlotType, error) {
	key := Key(domain.KindSlotType, name, version)
	if err := m.record(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	slotType, ok := m.slotTypes[key]
	if !ok {
		return nil, fmt.Errorf("slot type %s: %w", name, domain.ErrNotFound)
	}
	slotType.EnumerationValues = slices.Clone(slotType.EnumerationValues)
	return &slotType, nil
}

// record counts the call and returns any configured failure.
func (m *ModelService) record(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[key]++
	return m.failures[key]
}

// Key builds the lookup key for a read.
func Key(kind, name, version string) string {
	return kind + "/" + name + "@" + version
}

func cloneBot(bot domain.Bot) *domain.Bot {
	bot.Intents = slices.Clone(bot.Intents)
	if bot.AbortStatement != nil {
		stmt := *bot.AbortStatement
		stmt.Messages = slices.Clone(stmt.Messages)
		bot.AbortStatement = &stmt
	}
	if bot.ClarificationPrompt != nil {
		prompt := *bot.ClarificationPrompt
		prompt.Messages = slices.Clone(prompt.Messages)
		bot.ClarificationPrompt = &prompt
	}
	bot.Dependencies = nil
	return &bot
}
