package domain

// Intent is a versioned intent definition.
type Intent struct {
	Name                  string               `json:"name"`
	Version               string               `json:"version,omitempty"`
	Description           string               `json:"description,omitempty"`
	Checksum              string               `json:"checksum,omitempty"`
	ParentIntentSignature string               `json:"parentIntentSignature,omitempty"`
	SampleUtterances      []string             `json:"sampleUtterances,omitempty"`
	Slots                 []Slot               `json:"slots,omitempty"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt,omitempty"`
	RejectionStatement    *Statement           `json:"rejectionStatement,omitempty"`
	ConclusionStatement   *Statement           `json:"conclusionStatement,omitempty"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt,omitempty"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook,omitempty"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity,omitempty"`
	InputContexts         []InputContext       `json:"inputContexts,omitempty"`
	OutputContexts        []OutputContext      `json:"outputContexts,omitempty"`
	KendraConfiguration   *KendraConfiguration `json:"kendraConfiguration,omitempty"`
	CreatedDate           *Timestamp           `json:"createdDate,omitempty"`
	LastUpdatedDate       *Timestamp           `json:"lastUpdatedDate,omitempty"`
}

// Slot is a parameter of an intent.
type Slot struct {
	Name                   string            `json:"name"`
	Description            string            `json:"description,omitempty"`
	SlotConstraint         string            `json:"slotConstraint,omitempty"`
	SlotType               string            `json:"slotType,omitempty"`
	SlotTypeVersion        string            `json:"slotTypeVersion,omitempty"`
	Priority               *int32            `json:"priority,omitempty"`
	SampleUtterances       []string          `json:"sampleUtterances,omitempty"`
	ResponseCard           string            `json:"responseCard,omitempty"`
	ObfuscationSetting     string            `json:"obfuscationSetting,omitempty"`
	ValueElicitationPrompt *Prompt           `json:"valueElicitationPrompt,omitempty"`
	DefaultValueSpec       *DefaultValueSpec `json:"defaultValueSpec,omitempty"`
}

// IsCustom reports whether the slot is typed by a custom slot type.
// Built-in slot types carry no version.
func (s Slot) IsCustom() bool {
	return s.SlotTypeVersion != ""
}

// SlotTypeRef returns the slot type reference of a custom slot.
func (s Slot) SlotTypeRef() SlotTypeReference {
	return SlotTypeReference{Name: s.SlotType, Version: s.SlotTypeVersion}
}

// DefaultValueSpec lists default values for a slot.
type DefaultValueSpec struct {
	DefaultValueList []DefaultValue `json:"defaultValueList"`
}

// DefaultValue is a single slot default.
type DefaultValue struct {
	DefaultValue string `json:"defaultValue"`
}

// FollowUpPrompt is asked after the intent is fulfilled.
type FollowUpPrompt struct {
	Prompt             *Prompt    `json:"prompt,omitempty"`
	RejectionStatement *Statement `json:"rejectionStatement,omitempty"`
}

// CodeHook points at a Lambda function.
type CodeHook struct {
	URI            string `json:"uri"`
	MessageVersion string `json:"messageVersion"`
}

// FulfillmentActivity describes how an intent is fulfilled.
type FulfillmentActivity struct {
	Type     string    `json:"type"`
	CodeHook *CodeHook `json:"codeHook,omitempty"`
}

// InputContext must be active for the intent to be recognised.
type InputContext struct {
	Name string `json:"name"`
}

// OutputContext is activated when the intent is fulfilled.
type OutputContext struct {
	Name                string `json:"name"`
	TimeToLiveInSeconds *int32 `json:"timeToLiveInSeconds,omitempty"`
	TurnsToLive         *int32 `json:"turnsToLive,omitempty"`
}

// KendraConfiguration connects the built-in Kendra search intent to an index.
type KendraConfiguration struct {
	KendraIndex       string `json:"kendraIndex"`
	Role              string `json:"role"`
	QueryFilterString string `json:"queryFilterString,omitempty"`
}
