package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Web struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"web"`
	Store struct {
		Type string `mapstructure:"type"`
	} `mapstructure:"store"`
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "web:\n  host: 127.0.0.1\n  port: 4000\nstore:\n  type: redis\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(content), 0o644))

	var s sample
	require.NoError(t, LoadConfig(dir, "app", "yaml", &s))
	require.Equal(t, "127.0.0.1", s.Web.Host)
	require.Equal(t, 4000, s.Web.Port)
	require.Equal(t, "redis", s.Store.Type)
}

func TestLoadConfigMissingFile(t *testing.T) {
	var s sample
	require.Error(t, LoadConfig(t.TempDir(), "absent", "yaml", &s))
	require.NoError(t, LoadConfig(t.TempDir(), "absent", "yaml", &s, WithOptionalFile()))
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("web:\n  port: 4000\n"), 0o644))
	t.Setenv("TESTAPP_WEB_PORT", "5000")
	t.Setenv("TESTAPP_STORE_TYPE", "db")

	var s sample
	require.NoError(t, LoadConfig(dir, "app", "yaml", &s, WithEnv("TESTAPP", "web.port", "store.type")))
	require.Equal(t, 5000, s.Web.Port)
	require.Equal(t, "db", s.Store.Type)
}
