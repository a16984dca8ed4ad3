package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/katalvlaran/spanforest/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for name, want := range cases {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info")
	require.NoError(t, err)

	log.Info("loaded matrix", "path", "g.npy", "order", 12, "took", 1500*time.Millisecond)
	assert.Regexp(t,
		regexp.MustCompile(`^\[INFO\]  \d\d:\d\d:\d\d loaded matrix \| path=g\.npy order=12 took=1\.5s\n$`),
		buf.String())
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")
	assert.Contains(t, buf.String(), "[WARN]  ")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestHandler_QuotingAndErrors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, slog.LevelDebug))

	log.Debug("failed", "error", errors.New("bad row"), "name", "two words", "empty", "")
	assert.Contains(t, buf.String(), `[DEBUG] `)
	assert.Contains(t, buf.String(), `| error="bad row" name="two words" empty=""`)
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil)).
		With("cmd", "mst").
		WithGroup("engine").
		With("algorithm", "prim")

	log.Info("done", "cost", 3.5, slog.Group("matrix", "order", 3))
	assert.Contains(t, buf.String(), "done | cmd=mst engine.algorithm=prim engine.cost=3.5 engine.matrix.order=3\n")
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
