package usecase

import (
	"context"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// DeleteTask removes the task with the given id. Deleting an id that is
// already gone is a successful no-op at both layers.
func (m *Manager) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	err := m.deleteLocked(ctx, id)
	snap, l := m.snapshotLocked(OpDelete, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) deleteLocked(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		m.logError(OpDelete, err)
		return err
	}

	if idx := domain.IndexByID(m.tasks, id); idx >= 0 {
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	}
	m.logInfo(OpDelete, "id", id)
	return nil
}
