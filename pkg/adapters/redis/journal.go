package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/cjohansen/use-case/pkg/ports"
)

// Journal implements ports.Journal using Redis. Entries are stored as JSON
// in one list per use case, keyed by prefix + use case name.
type Journal struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Journal)

// WithTTL sets the expiration for a use case's entry list. The clock
// restarts on every Record.
func WithTTL(ttl time.Duration) Option {
	return func(j *Journal) {
		j.ttl = ttl
	}
}

// WithPrefix sets the key prefix for entry lists.
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// New creates a new Redis journal with options.
func New(address, password string, db int, opts ...Option) *Journal {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a new Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	journal := &Journal{
		client: client,
		prefix: "usecase:journal:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(journal)
	}

	return journal
}

func (j *Journal) key(useCase string) string {
	return j.prefix + useCase
}

// Record appends the entry to its use case's list.
func (j *Journal) Record(ctx context.Context, entry ports.JournalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := j.client.Pipeline()
	pipe.RPush(ctx, j.key(entry.UseCase), data)
	if j.ttl > 0 {
		pipe.Expire(ctx, j.key(entry.UseCase), j.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record to redis: %w", err)
	}
	return nil
}

// List returns the entries for a use case, oldest first. A missing key
// yields an empty slice.
func (j *Journal) List(ctx context.Context, useCase string) ([]ports.JournalEntry, error) {
	raw, err := j.client.LRange(ctx, j.key(useCase), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list from redis: %w", err)
	}

	entries := make([]ports.JournalEntry, 0, len(raw))
	for _, item := range raw {
		var entry ports.JournalEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
