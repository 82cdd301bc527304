package memory

import (
	"context"
	"sync"

	"github.com/cjohansen/use-case/pkg/ports"
)

// Journal implements ports.Journal in memory.
// Safe for concurrent use.
type Journal struct {
	entries map[string][]ports.JournalEntry
	mu      sync.RWMutex
}

// NewJournal creates a new in-memory journal.
func NewJournal() *Journal {
	return &Journal{
		entries: make(map[string][]ports.JournalEntry),
	}
}

// Record appends the entry under its use case name.
func (j *Journal) Record(ctx context.Context, entry ports.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[entry.UseCase] = append(j.entries[entry.UseCase], entry)
	return nil
}

// List returns the entries for a use case, oldest first.
func (j *Journal) List(ctx context.Context, useCase string) ([]ports.JournalEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	stored := j.entries[useCase]
	// Copy on read so callers can't mutate journal state through the slice.
	entries := make([]ports.JournalEntry, len(stored))
	copy(entries, stored)
	return entries, nil
}
