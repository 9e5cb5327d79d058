package models

import "time"

// Journal event types.
const (
	EventExecute = "EXECUTE"
	EventUndo    = "UNDO"
	EventRedo    = "REDO"
	EventSkipped = "SKIPPED" // undo/redo requested with an empty history
	EventReading = "READING" // weather station reading
)

// HomeEvent is a single journal entry.
type HomeEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // EXECUTE | UNDO | REDO | SKIPPED | READING
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
