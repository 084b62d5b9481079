package logtest

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usefultoys/slogmock/capture"
)

func Test_New(t *testing.T) {
	logger, h := New(t)

	logger.Info("hello", "who", "world")

	require.Equal(t, 1, h.Len())
	rec, _ := h.Record(0)
	require.Equal(t, "hello", rec.Message)
}

func Test_NewAppliesOptions(t *testing.T) {
	logger, h := New(t, capture.WithLevel(slog.LevelWarn))

	logger.Info("dropped")
	logger.Warn("kept")

	require.Equal(t, 1, h.Len())
}

func Test_FreshHandlerPerTest(t *testing.T) {
	_, h1 := New(t)
	_, h2 := New(t)

	h1.Logger().Info("only in first")

	require.Equal(t, 1, h1.Len())
	require.Equal(t, 0, h2.Len())
	require.NotEqual(t, h1.ID(), h2.ID())
}

func Test_Default(t *testing.T) {
	prev := slog.Default()

	h := Default(t)
	require.NotSame(t, prev, slog.Default())

	slog.Info("through the default logger", "n", 1)

	require.Equal(t, 1, h.Len())
	rec, _ := h.Record(0)
	require.Equal(t, "through the default logger", rec.Message)
}

func Test_DefaultRestores(t *testing.T) {
	prev := slog.Default()

	t.Run("inner", func(t *testing.T) {
		Default(t)
		require.NotSame(t, prev, slog.Default())
	})

	require.Same(t, prev, slog.Default())
}

func Test_DumpOnFailure(t *testing.T) {
	// the dump itself only happens for failing tests, which we cannot run
	// here; verify the cleanup path stays quiet on success by finishing a
	// passing subtest with captured records
	t.Run("passing", func(t *testing.T) {
		logger, _ := New(t)
		logger.Info("captured but not dumped")
	})
}
