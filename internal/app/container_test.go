package app

import (
	"context"
	"testing"
	"time"

	"github.com/rgplazas/TaskMaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithDeps(t *testing.T) {
	store := testutil.NewMockStore()

	c := NewWithDeps(nil, store, nil)

	require.NotNil(t, c.Manager)
	assert.Equal(t, store, c.Store)
	require.NotNil(t, c.Config, "nil config falls back to defaults")
	assert.Equal(t, "fetch", c.Config.Seed.DefaultSource)
	assert.NoError(t, c.Close())
}

func TestLatency_SleepsWithinBounds(t *testing.T) {
	delay := latency(1, 5)

	start := time.Now()
	delay(context.Background())
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 1*time.Millisecond)
}

func TestLatency_CancelledContextCutsShort(t *testing.T) {
	delay := latency(5000, 5000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	delay(ctx)

	assert.Less(t, time.Since(start), time.Second)
}

func TestLatency_SwappedBounds(t *testing.T) {
	// max below min collapses to the min value rather than panicking.
	delay := latency(2, 1)
	delay(context.Background())
}

func TestNew_ResolvesConfig(t *testing.T) {
	c, err := New(t.TempDir())

	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.NotNil(t, c.Store)
	assert.NotNil(t, c.Manager)
	assert.NotEmpty(t, c.Config.Storage.Path)
}
