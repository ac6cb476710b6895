package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, "zenith.db", cfg.Storage.Path)
	require.Equal(t, ".", cfg.Export.Dir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZENITH_STORAGE_DRIVER", "bolt")
	t.Setenv("ZENITH_STORAGE_PATH", "/tmp/school.bolt")
	t.Setenv("ZENITH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "bolt", cfg.Storage.Driver)
	require.Equal(t, "/tmp/school.bolt", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zenith.yaml")
	content := []byte("storage:\n  driver: bolt\n  path: data/school.bolt\nexport:\n  dir: backups\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("ZENITH_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "bolt", cfg.Storage.Driver)
	require.Equal(t, "data/school.bolt", cfg.Storage.Path)
	require.Equal(t, "backups", cfg.Export.Dir)
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zenith.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not a map"), 0o644))

	t.Setenv("ZENITH_CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}
