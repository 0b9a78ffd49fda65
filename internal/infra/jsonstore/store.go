// Package jsonstore provides a JSON file-based implementation of TaskStore.
//
// The whole collection is persisted as one JSON array under a single file
// path; every write replaces the entire record. A single mutex guards each
// read-modify-write sequence so concurrently issued mutations serialize
// instead of racing on the shared record.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rgplazas/TaskMaster/internal/domain"
)

// Store implements domain.TaskStore using a JSON file.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock    domain.Clock
	logger   *slog.Logger
	delay    func(context.Context)
	fetchers map[string]domain.SeedFetcher
	path     string
	mu       sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for timestamps.
func WithClock(clock domain.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// WithDelay installs a delay called before each operation touches the
// record. Used to simulate storage latency; nil disables it.
func WithDelay(delay func(context.Context)) Option {
	return func(s *Store) { s.delay = delay }
}

// WithFetcher registers a seed fetcher under a source identifier.
func WithFetcher(source string, fetcher domain.SeedFetcher) Option {
	return func(s *Store) { s.fetchers[source] = fetcher }
}

// WithLogger sets the logger for non-fatal store events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		clock:    domain.RealClock{},
		fetchers: make(map[string]domain.SeedFetcher),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll returns the full persisted collection.
func (s *Store) GetAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	return s.read()
}

// SaveAll atomically replaces the persisted record.
func (s *Store) SaveAll(ctx context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	return s.write(tasks)
}

// Create builds a new task from the trimmed text, prepends it to the
// collection, and persists. The returned task is only valid if the write
// succeeded.
func (s *Store) Create(ctx context.Context, text string) (*domain.Task, error) {
	trimmed, ok := domain.NormalizeText(text)
	if !ok {
		return nil, domain.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	tasks, err := s.read()
	if err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:      uuid.NewString(),
		Text:    trimmed,
		Created: s.clock.Now(),
	}

	// Newest first.
	tasks = append([]domain.Task{task}, tasks...)
	if err := s.write(tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update merges the patch onto the task with the given ID and persists.
func (s *Store) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	tasks, err := s.read()
	if err != nil {
		return nil, err
	}

	idx := domain.IndexByID(tasks, id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	if patch.Text != nil {
		trimmed, ok := domain.NormalizeText(*patch.Text)
		if !ok {
			return nil, domain.ErrEmptyText
		}
		tasks[idx].Text = trimmed
	}
	if patch.Completed != nil {
		tasks[idx].Completed = *patch.Completed
	}
	tasks[idx].Updated = s.clock.Now()

	if err := s.write(tasks); err != nil {
		return nil, err
	}
	task := tasks[idx]
	return &task, nil
}

// Delete removes the task with the given ID. Absent IDs are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	tasks, err := s.read()
	if err != nil {
		return err
	}

	idx := domain.IndexByID(tasks, id)
	if idx < 0 {
		return nil
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	return s.write(tasks)
}

// ClearCompleted removes every completed task and returns the remainder.
func (s *Store) ClearCompleted(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	tasks, err := s.read()
	if err != nil {
		return nil, err
	}

	remaining := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}

	if err := s.write(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// SeedFrom fetches up to limit sample records from the named source and
// destructively replaces the persisted collection. The fetch happens
// outside the record lock; on any fetch failure the existing record is
// left untouched.
func (s *Store) SeedFrom(ctx context.Context, source string, limit int) ([]domain.Task, error) {
	fetcher, ok := s.fetchers[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeedSource, source)
	}

	records, err := fetcher.Fetch(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSeedUnreachable, err)
	}

	now := s.clock.Now()
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		text, ok := domain.NormalizeText(r.Title)
		if !ok {
			continue
		}
		tasks = append(tasks, domain.Task{
			ID:        uuid.NewString(),
			Text:      text,
			Completed: r.Completed,
			Created:   now,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait(ctx)

	if err := s.write(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// wait applies the configured latency, if any.
func (s *Store) wait(ctx context.Context) {
	if s.delay != nil {
		s.delay(ctx)
	}
}

// read loads the persisted collection. An absent or malformed record
// yields an empty collection; any other failure is ErrStorageUnavailable.
func (s *Store) read() ([]domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("%w: read record: %v", domain.ErrStorageUnavailable, err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		if s.logger != nil {
			s.logger.Warn("discarding malformed task record", "path", s.path, "error", err)
		}
		return []domain.Task{}, nil
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// write replaces the persisted record atomically (temp file + rename).
func (s *Store) write(tasks []domain.Task) error {
	content, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal record: %v", domain.ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create directory: %v", domain.ErrStorageUnavailable, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("%w: write temp file: %v", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("%w: rename temp file: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
