package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexport/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexport/internal/core/domain"
)

func customSlot(name, slotType, version string) domain.Slot {
	return domain.Slot{Name: name, SlotType: slotType, SlotTypeVersion: version, SlotConstraint: "Required"}
}

func TestResolver_NoIntents(t *testing.T) {
	models := memory.NewModelService()
	resolver := NewResolver(models, 0)
	bot := &domain.Bot{Name: "EmptyBot"}

	require.NoError(t, resolver.Resolve(context.Background(), bot))

	require.NotNil(t, bot.Dependencies)
	assert.NotNil(t, bot.Dependencies.Intents)
	assert.NotNil(t, bot.Dependencies.SlotTypes)
	assert.Empty(t, bot.Dependencies.Intents)
	assert.Empty(t, bot.Dependencies.SlotTypes)
	assert.Equal(t, 0, models.TotalCalls(domain.KindIntent))
	assert.Equal(t, 0, models.TotalCalls(domain.KindSlotType))
}

func TestResolver_NilBot(t *testing.T) {
	resolver := NewResolver(memory.NewModelService(), 0)
	assert.ErrorIs(t, resolver.Resolve(context.Background(), nil), domain.ErrInvalidInput)
}

func TestResolver_BuiltInSlotsOnly(t *testing.T) {
	models := memory.NewModelService()
	models.AddIntent(domain.Intent{
		Name:    "BookMeeting",
		Version: "1",
		Slots:   []domain.Slot{{Name: "date", SlotType: "AMAZON.DATE"}},
	})
	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name:    "CalendarBot",
		Intents: []domain.IntentReference{{IntentName: "BookMeeting", IntentVersion: "1"}},
	}

	require.NoError(t, resolver.Resolve(context.Background(), bot))

	assert.Len(t, bot.Dependencies.Intents, 1)
	assert.NotNil(t, bot.Dependencies.SlotTypes)
	assert.Empty(t, bot.Dependencies.SlotTypes)
	assert.Equal(t, 0, models.TotalCalls(domain.KindSlotType))
}

func TestResolver_SharedSlotTypeFetchedOnce(t *testing.T) {
	models := memory.NewModelService()
	models.AddIntent(domain.Intent{Name: "OrderCoffee", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "2")}})
	models.AddIntent(domain.Intent{Name: "OrderTea", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "2")}})
	models.AddSlotType(domain.SlotType{Name: "CoffeeSize", Version: "2"})

	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name: "PressoBot",
		Intents: []domain.IntentReference{
			{IntentName: "OrderCoffee", IntentVersion: "1"},
			{IntentName: "OrderTea", IntentVersion: "1"},
		},
	}

	require.NoError(t, resolver.Resolve(context.Background(), bot))

	assert.Len(t, bot.Dependencies.SlotTypes, 1)
	assert.Equal(t, 1, models.Calls(domain.KindSlotType, "CoffeeSize", "2"))
}

func TestResolver_SameSlotTypeDifferentVersions(t *testing.T) {
	models := memory.NewModelService()
	models.AddIntent(domain.Intent{Name: "OrderCoffee", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "1")}})
	models.AddIntent(domain.Intent{Name: "OrderTea", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "2")}})
	models.AddSlotType(domain.SlotType{Name: "CoffeeSize", Version: "1"})
	models.AddSlotType(domain.SlotType{Name: "CoffeeSize", Version: "2"})

	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name: "PressoBot",
		Intents: []domain.IntentReference{
			{IntentName: "OrderCoffee", IntentVersion: "1"},
			{IntentName: "OrderTea", IntentVersion: "1"},
		},
	}

	require.NoError(t, resolver.Resolve(context.Background(), bot))

	require.Len(t, bot.Dependencies.SlotTypes, 2)
	versions := []string{bot.Dependencies.SlotTypes[0].Version, bot.Dependencies.SlotTypes[1].Version}
	assert.ElementsMatch(t, []string{"1", "2"}, versions)
}

func TestResolver_DuplicateIntentReferencesKept(t *testing.T) {
	models := memory.NewModelService()
	models.AddIntent(domain.Intent{Name: "OrderCoffee", Version: "1"})

	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name: "PressoBot",
		Intents: []domain.IntentReference{
			{IntentName: "OrderCoffee", IntentVersion: "1"},
			{IntentName: "OrderCoffee", IntentVersion: "1"},
		},
	}

	require.NoError(t, resolver.Resolve(context.Background(), bot))

	assert.Len(t, bot.Dependencies.Intents, 2)
	assert.Equal(t, 2, models.Calls(domain.KindIntent, "OrderCoffee", "1"))
}

func TestResolver_IntentFailureAborts(t *testing.T) {
	models := memory.NewModelService()
	boom := errors.New("AccessDeniedException")
	models.AddIntent(domain.Intent{Name: "OrderCoffee", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "1")}})
	models.AddIntent(domain.Intent{Name: "OrderTea", Version: "1"})
	models.AddSlotType(domain.SlotType{Name: "CoffeeSize", Version: "1"})
	models.FailOn(domain.KindIntent, "OrderTea", "1", boom)

	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name: "PressoBot",
		Intents: []domain.IntentReference{
			{IntentName: "OrderCoffee", IntentVersion: "1"},
			{IntentName: "OrderTea", IntentVersion: "1"},
		},
	}

	err := resolver.Resolve(context.Background(), bot)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.KindIntent, fetchErr.Kind)
	assert.Equal(t, "OrderTea", fetchErr.Name)
	assert.ErrorIs(t, err, boom)

	assert.Nil(t, bot.Dependencies)
	assert.Equal(t, 0, models.TotalCalls(domain.KindSlotType))
}

func TestResolver_SlotTypeFailureAborts(t *testing.T) {
	models := memory.NewModelService()
	models.AddIntent(domain.Intent{Name: "OrderCoffee", Version: "1", Slots: []domain.Slot{customSlot("size", "CoffeeSize", "1")}})

	resolver := NewResolver(models, 0)
	bot := &domain.Bot{
		Name:    "PressoBot",
		Intents: []domain.IntentReference{{IntentName: "OrderCoffee", IntentVersion: "1"}},
	}

	err := resolver.Resolve(context.Background(), bot)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.KindSlotType, fetchErr.Kind)
	assert.Equal(t, "CoffeeSize", fetchErr.Name)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, bot.Dependencies)
}

func TestResolver_BoundedConcurrency(t *testing.T) {
	models := memory.NewModelService()
	var refs []domain.IntentReference
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		models.AddIntent(domain.Intent{Name: name, Version: "1"})
		refs = append(refs, domain.IntentReference{IntentName: name, IntentVersion: "1"})
	}

	resolver := NewResolver(models, 2)
	bot := &domain.Bot{Name: "LetterBot", Intents: refs}

	require.NoError(t, resolver.Resolve(context.Background(), bot))
	assert.Len(t, bot.Dependencies.Intents, 5)
	assert.Equal(t, 5, models.TotalCalls(domain.KindIntent))
}

func TestCollectSlotTypeRefs(t *testing.T) {
	intents := []domain.Intent{
		{Name: "A", Slots: []domain.Slot{
			customSlot("s1", "Size", "1"),
			{Name: "s2", SlotType: "AMAZON.NUMBER"},
			customSlot("s3", "Size", "1"),
		}},
		{Name: "B", Slots: []domain.Slot{
			customSlot("s1", "Size", "2"),
			customSlot("s2", "Milk", "1"),
		}},
		{Name: "C"},
	}

	refs := CollectSlotTypeRefs(intents)

	assert.Equal(t, []domain.SlotTypeReference{
		{Name: "Size", Version: "1"},
		{Name: "Size", Version: "2"},
		{Name: "Milk", Version: "1"},
	}, refs)
}

func TestCollectSlotTypeRefs_Empty(t *testing.T) {
	assert.Empty(t, CollectSlotTypeRefs(nil))
}
