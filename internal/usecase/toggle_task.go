package usecase

import (
	"context"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// ToggleTask inverts the completion flag of the task with the given id.
// An id absent from memory is a no-op. The in-memory entry is replaced
// with the store's confirmed task only on success, so the view never shows
// a flip the store did not persist.
func (m *Manager) ToggleTask(ctx context.Context, id string) error {
	m.mu.Lock()
	err := m.toggleLocked(ctx, id)
	snap, l := m.snapshotLocked(OpToggle, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) toggleLocked(ctx context.Context, id string) error {
	idx := domain.IndexByID(m.tasks, id)
	if idx < 0 {
		return nil
	}

	completed := !m.tasks[idx].Completed
	task, err := m.store.Update(ctx, id, domain.TaskPatch{Completed: &completed})
	if err != nil {
		m.logError(OpToggle, err)
		return err
	}

	m.tasks[idx] = *task
	m.logInfo(OpToggle, "id", id, "completed", task.Completed)
	return nil
}
