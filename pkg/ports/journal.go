package ports

import (
	"context"
	"time"
)

// JournalEntry is one recorded execution.
type JournalEntry struct {
	UseCase string    `json:"use_case"`
	Status  string    `json:"status"`
	Tag     string    `json:"tag,omitempty"`
	At      time.Time `json:"at"`
}

// Journal persists execution records for auditing and inspection.
// Implementations must be safe for concurrent use.
type Journal interface {
	// Record appends an entry.
	Record(ctx context.Context, entry JournalEntry) error

	// List returns all entries for a use case, oldest first.
	// An unknown use case yields an empty slice, not an error.
	List(ctx context.Context, useCase string) ([]JournalEntry, error)
}
