package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/rgplazas/TaskMaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportCommand_JSON(t *testing.T) {
	store := testutil.NewMockStore(
		domain.Task{ID: "aaaa1111", Text: "one"},
		domain.Task{ID: "bbbb2222", Text: "two", Completed: true},
	)
	c := newTestContainer(store)

	out, err := execute(t, newExportCommand(c))

	require.NoError(t, err)
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "one", tasks[0].Text)
}

func TestExportCommand_YAMLToFile(t *testing.T) {
	store := testutil.NewMockStore(domain.Task{ID: "aaaa1111", Text: "one"})
	c := newTestContainer(store)
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	out, err := execute(t, newExportCommand(c), "--format", "yaml", "--output", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 task(s)")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var tasks []map[string]any
	require.NoError(t, yaml.Unmarshal(content, &tasks))
	require.Len(t, tasks, 1)
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	c := newTestContainer(testutil.NewMockStore())

	_, err := execute(t, newExportCommand(c), "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
