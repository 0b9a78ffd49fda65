// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStore is an in-memory test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	GetErr    error
	SaveErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ClearErr  error
	SeedErr   error
	Tasks     []domain.Task
	Seeded    []domain.Task
	NextIDN   int
}

// NewMockStore creates a new MockStore.
func NewMockStore(tasks ...domain.Task) *MockStore {
	return &MockStore{Tasks: tasks, NextIDN: 1}
}

// GetAll returns the in-memory collection.
func (m *MockStore) GetAll(_ context.Context) ([]domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return domain.CloneTasks(m.Tasks), nil
}

// SaveAll replaces the in-memory collection.
func (m *MockStore) SaveAll(_ context.Context, tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = domain.CloneTasks(tasks)
	return nil
}

// Create prepends a new task with a deterministic id.
func (m *MockStore) Create(_ context.Context, text string) (*domain.Task, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	trimmed, ok := domain.NormalizeText(text)
	if !ok {
		return nil, domain.ErrEmptyText
	}
	task := domain.Task{
		ID:      fmt.Sprintf("mock-%d", m.NextIDN),
		Text:    trimmed,
		Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, m.NextIDN),
	}
	m.NextIDN++
	m.Tasks = append([]domain.Task{task}, m.Tasks...)
	return &task, nil
}

// Update merges a patch onto the identified task.
func (m *MockStore) Update(_ context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	idx := domain.IndexByID(m.Tasks, id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	if patch.Text != nil {
		trimmed, ok := domain.NormalizeText(*patch.Text)
		if !ok {
			return nil, domain.ErrEmptyText
		}
		m.Tasks[idx].Text = trimmed
	}
	if patch.Completed != nil {
		m.Tasks[idx].Completed = *patch.Completed
	}
	m.Tasks[idx].Updated = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	task := m.Tasks[idx]
	return &task, nil
}

// Delete removes the identified task if present.
func (m *MockStore) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if idx := domain.IndexByID(m.Tasks, id); idx >= 0 {
		m.Tasks = append(m.Tasks[:idx], m.Tasks[idx+1:]...)
	}
	return nil
}

// ClearCompleted drops completed tasks and returns the remainder.
func (m *MockStore) ClearCompleted(_ context.Context) ([]domain.Task, error) {
	if m.ClearErr != nil {
		return nil, m.ClearErr
	}
	remaining := make([]domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}
	m.Tasks = remaining
	return domain.CloneTasks(remaining), nil
}

// SeedFrom replaces the collection with the configured Seeded tasks.
func (m *MockStore) SeedFrom(_ context.Context, _ string, _ int) ([]domain.Task, error) {
	if m.SeedErr != nil {
		return nil, m.SeedErr
	}
	m.Tasks = domain.CloneTasks(m.Seeded)
	return domain.CloneTasks(m.Seeded), nil
}

// Ensure MockStore implements TaskStore.
var _ domain.TaskStore = (*MockStore)(nil)

// MockFetcher is a test double for domain.SeedFetcher.
type MockFetcher struct {
	Err     error
	Records []domain.SeedRecord
}

// Fetch returns the configured records up to limit.
func (m *MockFetcher) Fetch(_ context.Context, limit int) ([]domain.SeedRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit >= 0 && limit < len(m.Records) {
		return m.Records[:limit], nil
	}
	return m.Records, nil
}
