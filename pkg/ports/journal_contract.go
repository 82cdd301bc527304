package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunJournalContract runs a suite of tests to verify that a Journal
// implementation adheres to the defined interface contract.
func RunJournalContract(t *testing.T, journal Journal) {
	ctx := context.Background()
	name := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Record and List", func(t *testing.T) {
		first := JournalEntry{
			UseCase: name,
			Status:  "success",
			At:      time.Now().UTC().Truncate(time.Second),
		}
		second := JournalEntry{
			UseCase: name,
			Status:  "precondition_failed",
			Tag:     "user_logged_in",
			At:      time.Now().UTC().Truncate(time.Second),
		}

		require.NoError(t, journal.Record(ctx, first), "Record should not return error")
		require.NoError(t, journal.Record(ctx, second))

		entries, err := journal.List(ctx, name)
		require.NoError(t, err, "List should not return error")
		require.Len(t, entries, 2)

		// Oldest first
		assert.Equal(t, "success", entries[0].Status)
		assert.Equal(t, "precondition_failed", entries[1].Status)
		assert.Equal(t, "user_logged_in", entries[1].Tag)
	})

	t.Run("List Unknown Use Case", func(t *testing.T) {
		entries, err := journal.List(ctx, "unknown-"+name)
		require.NoError(t, err)
		assert.Empty(t, entries, "unknown use case should yield no entries, not an error")
	})

	t.Run("Isolation Between Use Cases", func(t *testing.T) {
		other := name + "-other"
		require.NoError(t, journal.Record(ctx, JournalEntry{UseCase: other, Status: "failed", At: time.Now()}))

		entries, err := journal.List(ctx, other)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "failed", entries[0].Status)
	})
}
