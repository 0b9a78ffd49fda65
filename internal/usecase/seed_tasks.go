package usecase

import (
	"context"
)

// Seed replaces the whole collection with demo records fetched from the
// named source. On failure the in-memory collection and the persisted
// record are both untouched.
//
// The manager provides no guard against two seeds racing in flight; the
// later completion wins the destructive overwrite. Views that expose
// multiple seed triggers disable them while one is outstanding.
func (m *Manager) Seed(ctx context.Context, source string, limit int) error {
	m.mu.Lock()
	err := m.seedLocked(ctx, source, limit)
	snap, l := m.snapshotLocked(OpSeed, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

func (m *Manager) seedLocked(ctx context.Context, source string, limit int) error {
	tasks, err := m.store.SeedFrom(ctx, source, limit)
	if err != nil {
		m.logError(OpSeed, err)
		return err
	}

	m.tasks = tasks
	m.logInfo(OpSeed, "source", source, "count", len(tasks))
	return nil
}
