package lex

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	lexmodels "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice/types"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// The converters below copy SDK output into domain types field by field.
// Nothing is renamed or dropped; absent values stay absent.

func botFromOutput(out *lexmodels.GetBotOutput) *domain.Bot {
	bot := &domain.Bot{
		Name:                         aws.ToString(out.Name),
		Version:                      aws.ToString(out.Version),
		Description:                  aws.ToString(out.Description),
		Locale:                       string(out.Locale),
		Status:                       string(out.Status),
		FailureReason:                aws.ToString(out.FailureReason),
		Checksum:                     aws.ToString(out.Checksum),
		VoiceID:                      aws.ToString(out.VoiceId),
		ChildDirected:                out.ChildDirected,
		DetectSentiment:              out.DetectSentiment,
		EnableModelImprovements:      out.EnableModelImprovements,
		IdleSessionTTLInSeconds:      out.IdleSessionTTLInSeconds,
		NluIntentConfidenceThreshold: out.NluIntentConfidenceThreshold,
		AbortStatement:               convertStatement(out.AbortStatement),
		ClarificationPrompt:          convertPrompt(out.ClarificationPrompt),
		CreatedDate:                  domain.TimestampOf(out.CreatedDate),
		LastUpdatedDate:              domain.TimestampOf(out.LastUpdatedDate),
	}

	if len(out.Intents) > 0 {
		bot.Intents = make([]domain.IntentReference, 0, len(out.Intents))
		for _, ref := range out.Intents {
			bot.Intents = append(bot.Intents, domain.IntentReference{
				IntentName:    aws.ToString(ref.IntentName),
				IntentVersion: aws.ToString(ref.IntentVersion),
			})
		}
	}

	return bot
}

func intentFromOutput(out *lexmodels.GetIntentOutput) *domain.Intent {
	intent := &domain.Intent{
		Name:                  aws.ToString(out.Name),
		Version:               aws.ToString(out.Version),
		Description:           aws.ToString(out.Description),
		Checksum:              aws.ToString(out.Checksum),
		ParentIntentSignature: aws.ToString(out.ParentIntentSignature),
		SampleUtterances:      out.SampleUtterances,
		ConfirmationPrompt:    convertPrompt(out.ConfirmationPrompt),
		RejectionStatement:    convertStatement(out.RejectionStatement),
		ConclusionStatement:   convertStatement(out.ConclusionStatement),
		DialogCodeHook:        convertCodeHook(out.DialogCodeHook),
		CreatedDate:           domain.TimestampOf(out.CreatedDate),
		LastUpdatedDate:       domain.TimestampOf(out.LastUpdatedDate),
	}

	if out.FollowUpPrompt != nil {
		intent.FollowUpPrompt = &domain.FollowUpPrompt{
			Prompt:             convertPrompt(out.FollowUpPrompt.Prompt),
			RejectionStatement: convertStatement(out.FollowUpPrompt.RejectionStatement),
		}
	}

	if out.FulfillmentActivity != nil {
		intent.FulfillmentActivity = &domain.FulfillmentActivity{
			Type:     string(out.FulfillmentActivity.Type),
			CodeHook: convertCodeHook(out.FulfillmentActivity.CodeHook),
		}
	}

	if out.KendraConfiguration != nil {
		intent.KendraConfiguration = &domain.KendraConfiguration{
			KendraIndex:       aws.ToString(out.KendraConfiguration.KendraIndex),
			Role:              aws.ToString(out.KendraConfiguration.Role),
			QueryFilterString: aws.ToString(out.KendraConfiguration.QueryFilterString),
		}
	}

	for _, slot := range out.Slots {
		intent.Slots = append(intent.Slots, convertSlot(slot))
	}
	for _, c := range out.InputContexts {
		intent.InputContexts = append(intent.InputContexts, domain.InputContext{Name: aws.ToString(c.Name)})
	}
	for _, c := range out.OutputContexts {
		intent.OutputContexts = append(intent.OutputContexts, domain.OutputContext{
			Name:                aws.ToString(c.Name),
			TimeToLiveInSeconds: c.TimeToLiveInSeconds,
			TurnsToLive:         c.TurnsToLive,
		})
	}

	return intent
}

func slotTypeFromOutput(out *lexmodels.GetSlotTypeOutput) *domain.SlotType {
	slotType := &domain.SlotType{
		Name:                    aws.ToString(out.Name),
		Version:                 aws.ToString(out.Version),
		Description:             aws.ToString(out.Description),
		Checksum:                aws.ToString(out.Checksum),
		ParentSlotTypeSignature: aws.ToString(out.ParentSlotTypeSignature),
		ValueSelectionStrategy:  string(out.ValueSelectionStrategy),
		CreatedDate:             domain.TimestampOf(out.CreatedDate),
		LastUpdatedDate:         domain.TimestampOf(out.LastUpdatedDate),
	}

	for _, v := range out.EnumerationValues {
		slotType.EnumerationValues = append(slotType.EnumerationValues, domain.EnumerationValue{
			Value:    aws.ToString(v.Value),
			Synonyms: v.Synonyms,
		})
	}

	for _, c := range out.SlotTypeConfigurations {
		cfg := domain.SlotTypeConfiguration{}
		if c.RegexConfiguration != nil {
			cfg.RegexConfiguration = &domain.RegexConfiguration{Pattern: aws.ToString(c.RegexConfiguration.Pattern)}
		}
		slotType.SlotTypeConfigurations = append(slotType.SlotTypeConfigurations, cfg)
	}

	return slotType
}

func convertSlot(s types.Slot) domain.Slot {
	slot := domain.Slot{
		Name:                   aws.ToString(s.Name),
		Description:            aws.ToString(s.Description),
		SlotConstraint:         string(s.SlotConstraint),
		SlotType:               aws.ToString(s.SlotType),
		SlotTypeVersion:        aws.ToString(s.SlotTypeVersion),
		Priority:               s.Priority,
		SampleUtterances:       s.SampleUtterances,
		ResponseCard:           aws.ToString(s.ResponseCard),
		ObfuscationSetting:     string(s.ObfuscationSetting),
		ValueElicitationPrompt: convertPrompt(s.ValueElicitationPrompt),
	}

	if s.DefaultValueSpec != nil {
		spec := &domain.DefaultValueSpec{DefaultValueList: []domain.DefaultValue{}}
		for _, v := range s.DefaultValueSpec.DefaultValueList {
			spec.DefaultValueList = append(spec.DefaultValueList, domain.DefaultValue{DefaultValue: aws.ToString(v.DefaultValue)})
		}
		slot.DefaultValueSpec = spec
	}

	return slot
}

func convertStatement(s *types.Statement) *domain.Statement {
	if s == nil {
		return nil
	}
	return &domain.Statement{
		Messages:     convertMessages(s.Messages),
		ResponseCard: aws.ToString(s.ResponseCard),
	}
}

func convertPrompt(p *types.Prompt) *domain.Prompt {
	if p == nil {
		return nil
	}
	return &domain.Prompt{
		MaxAttempts:  p.MaxAttempts,
		Messages:     convertMessages(p.Messages),
		ResponseCard: aws.ToString(p.ResponseCard),
	}
}

func convertMessages(in []types.Message) []domain.Message {
	out := make([]domain.Message, 0, len(in))
	for _, m := range in {
		out = append(out, domain.Message{
			ContentType: string(m.ContentType),
			Content:     aws.ToString(m.Content),
			GroupNumber: m.GroupNumber,
		})
	}
	return out
}

func convertCodeHook(h *types.CodeHook) *domain.CodeHook {
	if h == nil {
		return nil
	}
	return &domain.CodeHook{
		URI:            aws.ToString(h.Uri),
		MessageVersion: aws.ToString(h.MessageVersion),
	}
}
