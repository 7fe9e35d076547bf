package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"katalog/internal/middleware"
	"katalog/pkg/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func runMenu(t *testing.T, input string, setup func(m *console.Menu)) string {
	t.Helper()
	out := &bytes.Buffer{}
	menu := console.New("Test")
	setup(menu)
	require.NoError(t, menu.Run(context.Background(), console.NewCtx(strings.NewReader(input), out)))
	return out.String()
}

func TestLogger_RecordsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	runMenu(t, "1\n2\n0\n", func(m *console.Menu) {
		m.Use(middleware.Logger(log))
		m.Handle("1", "List products", func(*console.Ctx) error { return nil })
		m.Handle("2", "Delete product", func(*console.Ctx) error { return errors.New("product not found") })
	})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "action done", entries[0].Message)
	assert.Equal(t, "List products", entries[0].ContextMap()["action"])
	assert.Equal(t, "action failed", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "product not found", entries[1].ContextMap()["error"])
}

func TestRecover_KeepsMenuRunning(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	calls := 0

	out := runMenu(t, "1\n2\n0\n", func(m *console.Menu) {
		m.Use(middleware.Recover(zap.New(core)))
		m.Handle("1", "Explode", func(*console.Ctx) error { panic("kaboom") })
		m.Handle("2", "Count", func(*console.Ctx) error { calls++; return nil })
	})

	assert.Equal(t, 1, calls)
	assert.Contains(t, out, `Error: unexpected failure in "Explode": kaboom`)
	assert.Equal(t, 1, logs.FilterMessage("action panicked").Len())
}
