package domain

import "time"

// Snapshot is a stored copy of one successful export.
type Snapshot struct {
	// ID is a unique identifier (UUID).
	ID string

	// BotName is the exported bot.
	BotName string

	// BotVersion is the version or alias that was requested.
	BotVersion string

	// Checksum is the bot checksum reported by the service.
	Checksum string

	// IntentCount is the number of resolved intents.
	IntentCount int

	// SlotTypeCount is the number of resolved slot types.
	SlotTypeCount int

	// Pretty records whether Document is the pretty encoding.
	Pretty bool

	// ExportedAt is when the export completed.
	ExportedAt time.Time

	// Document is the encoded export.
	Document []byte
}
