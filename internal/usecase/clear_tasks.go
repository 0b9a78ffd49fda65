package usecase

import (
	"context"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// ClearCompleted removes every completed task. The in-memory collection is
// replaced wholesale with the store's confirmed remainder rather than
// filtered locally, so any store-side concurrent change is reflected.
func (m *Manager) ClearCompleted(ctx context.Context) error {
	m.mu.Lock()
	err := m.clearCompletedLocked(ctx)
	snap, l := m.snapshotLocked(OpClearCompleted, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) clearCompletedLocked(ctx context.Context) error {
	remaining, err := m.store.ClearCompleted(ctx)
	if err != nil {
		m.logError(OpClearCompleted, err)
		return err
	}

	m.tasks = remaining
	m.logInfo(OpClearCompleted, "remaining", len(remaining))
	return nil
}

// ClearAll empties the whole collection.
func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	err := m.clearAllLocked(ctx)
	snap, l := m.snapshotLocked(OpClearAll, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) clearAllLocked(ctx context.Context) error {
	if err := m.store.SaveAll(ctx, []domain.Task{}); err != nil {
		m.logError(OpClearAll, err)
		return err
	}

	m.tasks = []domain.Task{}
	m.logInfo(OpClearAll)
	return nil
}
