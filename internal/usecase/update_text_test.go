package usecase

import (
	"context"
	"testing"

	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateText(t *testing.T) {
	m := NewManager(newMockStore(), nil)
	ctx := context.Background()
	require.NoError(t, m.AddTask(ctx, "old text"))
	id := m.Tasks()[0].ID

	require.NoError(t, m.UpdateText(ctx, id, "  new text  "))

	task := m.Tasks()[0]
	assert.Equal(t, "new text", task.Text)
	assert.False(t, task.Completed, "editing never changes the completion flag")
}

func TestUpdateText_EmptyText(t *testing.T) {
	m := NewManager(newMockStore(), nil)
	ctx := context.Background()
	require.NoError(t, m.AddTask(ctx, "keep me"))
	id := m.Tasks()[0].ID
	before := m.Tasks()

	err := m.UpdateText(ctx, id, "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyText)
	assert.Equal(t, before, m.Tasks())
}

func TestUpdateText_NotFound(t *testing.T) {
	m := NewManager(newMockStore(), nil)

	err := m.UpdateText(context.Background(), "missing", "text")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUpdateText_StoreFailureLeavesMemoryUnchanged(t *testing.T) {
	m := NewManager(newMockStore(), nil)
	ctx := context.Background()
	require.NoError(t, m.AddTask(ctx, "stable"))
	id := m.Tasks()[0].ID
	before := m.Tasks()

	storeOf(m).updateErr = domain.ErrStorageUnavailable
	err := m.UpdateText(ctx, id, "never lands")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Equal(t, before, m.Tasks())
}
