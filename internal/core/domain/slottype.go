package domain

// SlotTypeReference identifies one version of a custom slot type.
// It is comparable and used as a set key when collecting dependencies.
type SlotTypeReference struct {
	Name    string
	Version string
}

// SlotType is a versioned enumeration of valid slot values.
type SlotType struct {
	Name                    string                  `json:"name"`
	Version                 string                  `json:"version,omitempty"`
	Description             string                  `json:"description,omitempty"`
	Checksum                string                  `json:"checksum,omitempty"`
	ParentSlotTypeSignature string                  `json:"parentSlotTypeSignature,omitempty"`
	ValueSelectionStrategy  string                  `json:"valueSelectionStrategy,omitempty"`
	EnumerationValues       []EnumerationValue      `json:"enumerationValues,omitempty"`
	SlotTypeConfigurations  []SlotTypeConfiguration `json:"slotTypeConfigurations,omitempty"`
	CreatedDate             *Timestamp              `json:"createdDate,omitempty"`
	LastUpdatedDate         *Timestamp              `json:"lastUpdatedDate,omitempty"`
}

// EnumerationValue is one allowed value with optional synonyms.
type EnumerationValue struct {
	Value    string   `json:"value"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// SlotTypeConfiguration extends a built-in parent slot type.
type SlotTypeConfiguration struct {
	RegexConfiguration *RegexConfiguration `json:"regexConfiguration,omitempty"`
}

// RegexConfiguration restricts slot values to a pattern.
type RegexConfiguration struct {
	Pattern string `json:"pattern"`
}
