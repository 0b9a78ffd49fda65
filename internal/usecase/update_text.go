package usecase

import (
	"context"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// UpdateText replaces the text of the task with the given id.
// Whitespace-only text is rejected with domain.ErrEmptyText before the
// store is touched. Editing never changes the completion flag.
func (m *Manager) UpdateText(ctx context.Context, id, text string) error {
	m.mu.Lock()
	err := m.updateTextLocked(ctx, id, text)
	snap, l := m.snapshotLocked(OpEdit, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) updateTextLocked(ctx context.Context, id, text string) error {
	trimmed, ok := domain.NormalizeText(text)
	if !ok {
		return domain.ErrEmptyText
	}

	task, err := m.store.Update(ctx, id, domain.TaskPatch{Text: &trimmed})
	if err != nil {
		m.logError(OpEdit, err)
		return err
	}

	if idx := domain.IndexByID(m.tasks, id); idx >= 0 {
		m.tasks[idx] = *task
	}
	m.logInfo(OpEdit, "id", id)
	return nil
}
