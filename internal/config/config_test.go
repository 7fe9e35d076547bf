package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"katalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "products.db", cfg.SnapshotFile)
	assert.Equal(t, "products.csv", cfg.CSVFile)
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.False(t, cfg.Logger.Stderr)
	assert.Equal(t, filepath.Join("data", "logs", "catalog.log"), cfg.LogPath())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CATALOG_DATA_DIR", "/tmp/catalog")
	t.Setenv("CATALOG_SEED_SAMPLE_DATA", "false")
	t.Setenv("CATALOG_LOG_LEVEL", "debug")
	t.Setenv("CATALOG_LOG_FILE", "/var/log/catalog.log")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "/tmp/catalog", cfg.DataDir)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "/var/log/catalog.log", cfg.LogPath())
}

func TestLoad_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CATALOG_SNAPSHOT_FILE=catalog.db\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CATALOG_SNAPSHOT_FILE") })

	cfg := config.Load(envFile)
	assert.Equal(t, "catalog.db", cfg.SnapshotFile)
}
