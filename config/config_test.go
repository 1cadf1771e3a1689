package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/todo"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "genui.yaml"))
	require.NoError(t, err)
	require.Equal(t, 3000, c.Web.Port)
	require.Equal(t, "0.0.0.0", c.Web.Host)
	require.Equal(t, todo.StoreMemory, c.Store.Type)
	require.Equal(t, logs.Stdout, c.Log.Output)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genui.yaml")
	content := `
web:
  port: 8080
store:
  type: redis
  redis:
    address: 127.0.0.1:6379
  snapshot:
    path: data/todos.json
    schedule:
      enabled: true
      type: fixed_delay
      value: "30"
chart:
  seed: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GENUI_WEB_PORT", "9090")
	t.Setenv("GENUI_LOG_LEVEL", "debug")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, c.Web.Port)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, todo.StoreRedis, c.Store.Type)
	require.Equal(t, "127.0.0.1:6379", c.Store.Redis.Address)
	require.True(t, c.Store.Snapshot.Schedule.Enabled)
	require.Equal(t, "30", c.Store.Snapshot.Schedule.Value)
	require.Equal(t, uint64(7), c.Chart.Seed)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("web: [unclosed"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestShippedConfigKeepsMemoryVolatile(t *testing.T) {
	c, err := Load(filepath.Join("..", "etc", "genui.yaml"))
	require.NoError(t, err)
	require.Equal(t, todo.StoreMemory, c.Store.Type)
	require.Empty(t, c.Store.Snapshot.Path)
	require.False(t, c.Store.Snapshot.Schedule.Enabled)
}
