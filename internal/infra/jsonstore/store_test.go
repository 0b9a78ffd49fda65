package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock is a test double for domain.Clock.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// stubFetcher is a test double for domain.SeedFetcher.
type stubFetcher struct {
	records []domain.SeedRecord
	err     error
}

func (f *stubFetcher) Fetch(_ context.Context, limit int) ([]domain.SeedRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return New(path, opts...)
}

func TestGetAll_NoFile(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetAll_MalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := New(path)

	tasks, err := store.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveAll_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := []domain.Task{
		{ID: "b", Text: "B", Completed: true, Created: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "a", Text: "A", Created: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.SaveAll(ctx, want))

	got, err := store.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreate(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(t, WithClock(clock))
	ctx := context.Background()

	task, err := store.Create(ctx, "  Buy milk  ")

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, clock.now, task.Created)
	assert.True(t, task.Updated.IsZero())

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *task, tasks[0])
}

func TestCreate_EmptyText(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := store.Create(ctx, text)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
	}

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreate_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, "A")
	require.NoError(t, err)
	_, err = store.Create(ctx, "B")
	require.NoError(t, err)

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[0].Text)
	assert.Equal(t, "A", tasks[1].Text)
}

func TestCreate_UniqueIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 50 {
		task, err := store.Create(ctx, "task")
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestCreate_ConcurrentCallersSerialize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, "task")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, n, "a lost update dropped a concurrently created task")
}

func TestUpdate(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(t, WithClock(clock))
	ctx := context.Background()

	task, err := store.Create(ctx, "Buy milk")
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	done := true
	updated, err := store.Update(ctx, task.ID, domain.TaskPatch{Completed: &done})

	require.NoError(t, err)
	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, task.Created, updated.Created)
	assert.True(t, updated.Completed)
	assert.Equal(t, clock.now, updated.Updated)
}

func TestUpdate_Text(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.Create(ctx, "old")
	require.NoError(t, err)

	text := "  new text  "
	updated, err := store.Update(ctx, task.ID, domain.TaskPatch{Text: &text})

	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Text)
	assert.False(t, updated.Completed)
}

func TestUpdate_NotFound(t *testing.T) {
	store := newTestStore(t)

	done := true
	_, err := store.Update(context.Background(), "missing", domain.TaskPatch{Completed: &done})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUpdate_EmptyText(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.Create(ctx, "keep me")
	require.NoError(t, err)

	empty := "   "
	_, err = store.Update(ctx, task.ID, domain.TaskPatch{Text: &empty})
	assert.ErrorIs(t, err, domain.ErrEmptyText)

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "keep me", tasks[0].Text)
}

func TestDelete_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.Create(ctx, "doomed")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, task.ID))
	require.NoError(t, store.Delete(ctx, task.ID)) // second delete is a no-op

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClearCompleted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.Create(ctx, "A")
	require.NoError(t, err)
	b, err := store.Create(ctx, "B")
	require.NoError(t, err)

	done := true
	_, err = store.Update(ctx, b.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)

	remaining, err := store.ClearCompleted(ctx)

	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, a.ID, remaining[0].ID)

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, remaining, tasks)
}

func TestSeedFrom_ReplacesCollection(t *testing.T) {
	fetcher := &stubFetcher{records: []domain.SeedRecord{
		{ID: 1, Title: "first", Completed: false},
		{ID: 2, Title: "second", Completed: true},
		{ID: 3, Title: "third", Completed: false},
	}}
	store := newTestStore(t, WithFetcher(domain.SeedSourceFetch, fetcher))
	ctx := context.Background()

	_, err := store.Create(ctx, "pre-existing")
	require.NoError(t, err)

	tasks, err := store.SeedFrom(ctx, domain.SeedSourceFetch, 3)

	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.NotEmpty(t, task.ID)
		assert.NotEmpty(t, task.Text)
		assert.False(t, task.Created.IsZero())
	}
	assert.Equal(t, "first", tasks[0].Text)
	assert.True(t, tasks[1].Completed)

	// The pre-existing task is gone: seeding is a destructive overwrite.
	persisted, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, persisted)
}

func TestSeedFrom_FetchFailureLeavesRecordUntouched(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	store := newTestStore(t, WithFetcher(domain.SeedSourceFetch, fetcher))
	ctx := context.Background()

	task, err := store.Create(ctx, "survivor")
	require.NoError(t, err)

	_, err = store.SeedFrom(ctx, domain.SeedSourceFetch, 3)
	assert.ErrorIs(t, err, domain.ErrSeedUnreachable)

	tasks, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestSeedFrom_UnknownSource(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SeedFrom(context.Background(), "nope", 3)

	assert.ErrorIs(t, err, domain.ErrUnknownSeedSource)
}

func TestWithDelay_Applied(t *testing.T) {
	calls := 0
	store := newTestStore(t, WithDelay(func(context.Context) { calls++ }))

	_, err := store.GetAll(context.Background())
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "task")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestUpdatedAt_OmittedUntilFirstMutation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.Create(ctx, "fresh")
	require.NoError(t, err)

	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "updatedAt")

	done := true
	_, err = store.Update(ctx, task.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)

	content, err = os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "updatedAt")
}
