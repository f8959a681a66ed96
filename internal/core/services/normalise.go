package services

import (
	"cmp"
	"slices"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// Normalise sorts every list whose order the service does not guarantee,
// so exports of identical bots are byte-identical. Comparison is
// case-sensitive and byte-wise. Sorts are stable.
func Normalise(bot *domain.Bot) {
	if bot == nil {
		return
	}

	if bot.AbortStatement != nil {
		sortMessages(bot.AbortStatement.Messages)
	}
	if bot.ClarificationPrompt != nil {
		sortMessages(bot.ClarificationPrompt.Messages)
	}

	slices.SortStableFunc(bot.Intents, func(a, b domain.IntentReference) int {
		return cmp.Compare(a.IntentName, b.IntentName)
	})

	if bot.Dependencies == nil {
		return
	}

	for i := range bot.Dependencies.Intents {
		slices.Sort(bot.Dependencies.Intents[i].SampleUtterances)
	}
	slices.SortStableFunc(bot.Dependencies.Intents, func(a, b domain.Intent) int {
		return cmp.Compare(a.Name, b.Name)
	})

	for i := range bot.Dependencies.SlotTypes {
		slices.SortStableFunc(bot.Dependencies.SlotTypes[i].EnumerationValues, func(a, b domain.EnumerationValue) int {
			return cmp.Compare(a.Value, b.Value)
		})
	}
	slices.SortStableFunc(bot.Dependencies.SlotTypes, func(a, b domain.SlotType) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Version, b.Version))
	})
}

func sortMessages(messages []domain.Message) {
	slices.SortStableFunc(messages, func(a, b domain.Message) int {
		return cmp.Compare(a.Content, b.Content)
	})
}
