package usecase

import (
	"context"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// AddTask creates a new task from the given text. Whitespace-only text is
// rejected with domain.ErrEmptyText before the store is touched. On
// success the store's returned task is prepended to the in-memory
// collection; the store's id and timestamps are authoritative. On store
// failure the collection is left unchanged.
func (m *Manager) AddTask(ctx context.Context, text string) error {
	m.mu.Lock()
	err := m.addLocked(ctx, text)
	snap, l := m.snapshotLocked(OpAdd, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) addLocked(ctx context.Context, text string) error {
	if _, ok := domain.NormalizeText(text); !ok {
		return domain.ErrEmptyText
	}

	task, err := m.store.Create(ctx, text)
	if err != nil {
		m.logError(OpAdd, err)
		return err
	}

	// No provisional insert happened, so nothing to roll back above.
	m.tasks = append([]domain.Task{*task}, m.tasks...)
	m.logInfo(OpAdd, "id", task.ID)
	return nil
}
