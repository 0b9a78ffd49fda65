package domain

import (
	"context"
	"time"
)

// TaskStore owns durable persistence of the task collection as a single
// serialized record. Every operation is safe to call concurrently; each
// read-modify-write runs in the store's critical section so concurrent
// mutations serialize (at-most-one-writer).
type TaskStore interface {
	// GetAll returns the full persisted collection. An absent or
	// malformed record yields an empty collection, not an error.
	GetAll(ctx context.Context) ([]Task, error)

	// SaveAll atomically replaces the persisted record with the given
	// collection.
	SaveAll(ctx context.Context, tasks []Task) error

	// Create builds a new task from the trimmed text, prepends it, and
	// persists. Returns ErrEmptyText if nothing remains after trimming.
	Create(ctx context.Context, text string) (*Task, error)

	// Update merges the patch onto the task with the given ID, stamps
	// Updated, and persists. Returns ErrTaskNotFound if absent.
	Update(ctx context.Context, id string, patch TaskPatch) (*Task, error)

	// Delete removes the task with the given ID. Absent IDs are a no-op,
	// not an error.
	Delete(ctx context.Context, id string) error

	// ClearCompleted removes every completed task and returns the
	// remaining collection.
	ClearCompleted(ctx context.Context) ([]Task, error)

	// SeedFrom fetches up to limit sample records from the named source
	// and destructively replaces the persisted collection with them.
	// Returns ErrSeedUnreachable on transport failure; the existing
	// record is untouched in that case.
	SeedFrom(ctx context.Context, source string, limit int) ([]Task, error)
}

// TaskPatch describes a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Text      *string
	Completed *bool
}

// SeedRecord is one remote sample record from a seed source.
type SeedRecord struct {
	Title     string `json:"title"`
	ID        int    `json:"id"`
	Completed bool   `json:"completed"`
}

// SeedFetcher retrieves sample records from a remote seed source.
// Implementations differ only in transport mechanics; their observable
// behavior is identical.
type SeedFetcher interface {
	Fetch(ctx context.Context, limit int) ([]SeedRecord, error)
}

// Known seed source identifiers.
const (
	SeedSourceFetch  = "fetch"  // single request/response round-trip
	SeedSourceStream = "stream" // incremental decode with per-record callbacks
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
