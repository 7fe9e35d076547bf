package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"katalog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "catalog.log")
	log, err := logger.New(logger.Config{Level: "info", Encoding: "json", Filename: file})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("snapshot saved", zap.Int("products", 3))
	_ = log.Sync()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "snapshot saved", entry["msg"])
	assert.Equal(t, float64(3), entry["products"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud", Filename: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
