package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("unavailable") }

func TestFanout(t *testing.T) {
	t.Parallel()

	t.Run("delivers by level", func(t *testing.T) {
		t.Parallel()
		var info, warn bytes.Buffer
		log := slog.New(newMultiHandler(
			slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
			slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)).With(slog.String("component", "loader"))

		log.Info("loaded")
		log.Warn("slow")

		require.Contains(t, info.String(), "loaded")
		require.Contains(t, info.String(), "slow")
		require.NotContains(t, warn.String(), "loaded")
		require.Contains(t, warn.String(), `"component":"loader"`)
	})

	t.Run("keeps delivering after a failure", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ok := slog.NewJSONHandler(&buf, nil)
		h := newMultiHandler(failingHandler{ok}, ok)

		rec := slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0)
		err := h.Handle(context.Background(), rec)
		require.Error(t, err)
		require.Contains(t, buf.String(), "hello")
	})

	t.Run("disabled when no handler accepts the level", func(t *testing.T) {
		t.Parallel()
		h := newMultiHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
		require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	})
}
