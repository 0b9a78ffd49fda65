// Package usecase contains the application's task manager: the
// authoritative in-memory mirror of the persisted collection and the
// operations a presentation layer invokes against it.
package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// Operation identifies which manager operation produced an outcome.
type Operation string

// Manager operations.
const (
	OpLoad           Operation = "load"
	OpAdd            Operation = "add"
	OpToggle         Operation = "toggle"
	OpEdit           Operation = "edit"
	OpDelete         Operation = "delete"
	OpClearCompleted Operation = "clear-completed"
	OpClearAll       Operation = "clear-all"
	OpSeed           Operation = "seed"
)

// Outcome is the success/failure signal attached to each snapshot.
type Outcome struct {
	Err error
	Op  Operation
}

// Snapshot is the plain-data contract handed to the view after every
// mutating operation, successful or not: the full collection, the derived
// view under the active filter, and the outcome.
type Snapshot struct {
	Outcome Outcome
	Tasks   []domain.Task
	View    domain.DerivedView
}

// Listener receives a snapshot after each mutating operation. It is
// invoked outside the manager's critical section and must treat the
// snapshot as read-only.
type Listener func(Snapshot)

// Manager owns the in-memory task collection and the active filter. Every
// mutation goes through the injected store, and the in-memory state is
// reconciled from the store's returned value, never from a local guess.
// A mutex serializes operations end-to-end so their continuations apply
// in the order operations entered the critical section.
type Manager struct {
	store    domain.TaskStore
	logger   *slog.Logger
	listener Listener
	tasks    []domain.Task
	filter   domain.Filter
	mu       sync.Mutex
}

// NewManager creates a Manager backed by the given store.
func NewManager(store domain.TaskStore, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		tasks:  []domain.Task{},
		filter: domain.FilterAll,
	}
}

// SetListener registers the view callback. Passing nil unregisters it.
func (m *Manager) SetListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = l
}

// Initialize loads the persisted collection into memory. On store failure
// the in-memory collection stays empty and the error is returned; there is
// no automatic retry.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	tasks, err := m.store.GetAll(ctx)
	if err != nil {
		m.tasks = []domain.Task{}
		m.logError(OpLoad, err)
	} else {
		m.tasks = tasks
	}
	snap, l := m.snapshotLocked(OpLoad, err)
	m.mu.Unlock()

	emit(l, snap)
	return err
}

// SetFilter selects the active filter and notifies the view. It never
// touches the collection.
func (m *Manager) SetFilter(f domain.Filter) {
	m.mu.Lock()
	m.filter = f
	snap, l := m.snapshotLocked("", nil)
	m.mu.Unlock()

	emit(l, snap)
}

// Filter returns the active filter.
func (m *Manager) Filter() domain.Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// Tasks returns a copy of the full in-memory collection.
func (m *Manager) Tasks() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.CloneTasks(m.tasks)
}

// View computes the derived view of the current state under the active
// filter.
func (m *Manager) View() domain.DerivedView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.DeriveView(m.tasks, m.filter)
}

// snapshotLocked builds the view snapshot. Callers hold the mutex and are
// expected to emit the snapshot after releasing it.
func (m *Manager) snapshotLocked(op Operation, err error) (Snapshot, Listener) {
	return Snapshot{
		Tasks:   domain.CloneTasks(m.tasks),
		View:    domain.DeriveView(m.tasks, m.filter),
		Outcome: Outcome{Op: op, Err: err},
	}, m.listener
}

// emit delivers a snapshot outside the critical section.
func emit(l Listener, snap Snapshot) {
	if l != nil {
		l(snap)
	}
}

func (m *Manager) logError(op Operation, err error) {
	if m.logger != nil {
		m.logger.Error("operation failed", "op", string(op), "error", err)
	}
}

func (m *Manager) logInfo(op Operation, args ...any) {
	if m.logger != nil {
		m.logger.Info(string(op), args...)
	}
}
