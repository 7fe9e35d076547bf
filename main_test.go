package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"katalog/internal/config"
	"katalog/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.FromViper(config.New())
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Logger.File = filepath.Join(t.TempDir(), "catalog.log")
	return cfg
}

func runApp(t *testing.T, cfg *config.Config, input string) (string, error) {
	t.Helper()
	app, err := NewApp(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	runErr := app.Run(context.Background(), strings.NewReader(input), out)
	if runErr == nil {
		require.NoError(t, app.Shutdown())
	}
	return out.String(), runErr
}

func TestFirstRunSeedsSampleCatalog(t *testing.T) {
	cfg := testConfig(t)

	out, err := runApp(t, cfg, "9\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "19 products in the catalog.")
	assert.Contains(t, out, "Products:      19")
	assert.Contains(t, out, "Goodbye.")
	assert.FileExists(t, filepath.Join(cfg.DataDir, "products.db"))
}

func TestSecondRunLoadsSavedCatalog(t *testing.T) {
	cfg := testConfig(t)

	_, err := runApp(t, cfg, "5\n1\ny\n0\n")
	require.NoError(t, err)

	out, err := runApp(t, cfg, "0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "18 products in the catalog.")
}

func TestSeedingDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedSampleData = false

	out, err := runApp(t, cfg, "")
	require.NoError(t, err)
	assert.Contains(t, out, "0 products in the catalog.")
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.DataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "products.db"), bytes.Repeat([]byte{0xAB}, 4096), 0o644))

	app, err := NewApp(cfg)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	require.NoError(t, app.Run(context.Background(), strings.NewReader("0\n"), out))

	assert.Contains(t, out.String(), "Warning: the saved catalog could not be read")
	assert.Contains(t, out.String(), "0 products in the catalog.")

	require.NoError(t, app.Shutdown())
	kept, err := os.ReadFile(filepath.Join(cfg.DataDir, "products.db"))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 4096), kept, "quitting must not replace the unreadable snapshot")
}

func TestShutdownRunsOnce(t *testing.T) {
	cfg := testConfig(t)
	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), strings.NewReader("0\n"), &bytes.Buffer{}))

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { done <- app.Shutdown() }()
	}
	assert.NoError(t, <-done)
	assert.NoError(t, <-done)

	assert.FileExists(t, filepath.Join(cfg.DataDir, "products.db"))
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "products.db.tmp"))
}

func TestUnusableDataDirIsFatal(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.DataDir, []byte("not a directory"), 0o644))

	_, err := runApp(t, cfg, "0\n")
	assert.ErrorIs(t, err, persistence.ErrDataDir)
}
