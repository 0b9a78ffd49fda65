package usecase

import (
	"context"
	"testing"

	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	store := newMockStore()
	m := NewManager(store, nil)

	err := m.AddTask(context.Background(), "  Write report  ")

	require.NoError(t, err)
	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Text)
	assert.Equal(t, store.tasks[0].ID, tasks[0].ID, "manager trusts the store's id")
}

func TestAddTask_EmptyText(t *testing.T) {
	store := newMockStore()
	m := NewManager(store, nil)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t"} {
		err := m.AddTask(ctx, text)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
	}

	assert.Empty(t, m.Tasks())
	assert.Empty(t, store.tasks, "validation rejection never reaches the store")
}

func TestAddTask_StoreFailureLeavesMemoryUnchanged(t *testing.T) {
	store := newMockStore(domain.Task{ID: "a", Text: "A"})
	m := NewManager(store, nil)
	ctx := context.Background()
	require.NoError(t, m.Initialize(ctx))
	before := m.Tasks()

	store.createErr = domain.ErrStorageUnavailable
	err := m.AddTask(ctx, "doomed")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, before, m.Tasks(), "no provisional insert survives a store failure")
}
