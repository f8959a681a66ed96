package domain

// LatestVersion is the alias that resolves to the working draft of a bot.
const LatestVersion = "$LATEST"

// Bot is the root definition of a conversational bot as returned by the
// model building service. Field names mirror the service's wire format so
// an exported document can be compared with the service response directly.
type Bot struct {
	Name                         string            `json:"name"`
	Version                      string            `json:"version,omitempty"`
	Description                  string            `json:"description,omitempty"`
	Locale                       string            `json:"locale,omitempty"`
	Status                       string            `json:"status,omitempty"`
	FailureReason                string            `json:"failureReason,omitempty"`
	Checksum                     string            `json:"checksum,omitempty"`
	VoiceID                      string            `json:"voiceId,omitempty"`
	ChildDirected                *bool             `json:"childDirected,omitempty"`
	DetectSentiment              *bool             `json:"detectSentiment,omitempty"`
	EnableModelImprovements      *bool             `json:"enableModelImprovements,omitempty"`
	IdleSessionTTLInSeconds      *int32            `json:"idleSessionTTLInSeconds,omitempty"`
	NluIntentConfidenceThreshold *float64          `json:"nluIntentConfidenceThreshold,omitempty"`
	AbortStatement               *Statement        `json:"abortStatement,omitempty"`
	ClarificationPrompt          *Prompt           `json:"clarificationPrompt,omitempty"`
	Intents                      []IntentReference `json:"intents,omitempty"`
	CreatedDate                  *Timestamp        `json:"createdDate,omitempty"`
	LastUpdatedDate              *Timestamp        `json:"lastUpdatedDate,omitempty"`

	// Dependencies is synthesized by the exporter and is never sent to the service.
	Dependencies *Dependencies `json:"dependencies,omitempty"`
}

// IntentReference identifies one intent version used by a bot.
type IntentReference struct {
	IntentName    string `json:"intentName"`
	IntentVersion string `json:"intentVersion"`
}

// Dependencies holds the resolved definitions a bot refers to.
type Dependencies struct {
	Intents   []Intent   `json:"intents"`
	SlotTypes []SlotType `json:"slotTypes"`
}

// Message is a single prompt or statement message.
type Message struct {
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content"`
	GroupNumber *int32 `json:"groupNumber,omitempty"`
}

// Statement is a set of messages sent without expecting a response.
type Statement struct {
	Messages     []Message `json:"messages"`
	ResponseCard string    `json:"responseCard,omitempty"`
}

// Prompt is a set of messages that elicit a response from the user.
type Prompt struct {
	MaxAttempts  *int32    `json:"maxAttempts,omitempty"`
	Messages     []Message `json:"messages"`
	ResponseCard string    `json:"responseCard,omitempty"`
}
