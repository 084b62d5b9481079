// Package logtest wires a capture.Handler into a test's lifecycle: each test
// gets a fresh handler, and when the test fails, everything it logged is
// dumped to the test output to help debug the failure.
package logtest

import (
	"log/slog"
	"testing"

	"github.com/usefultoys/slogmock/capture"
	"github.com/usefultoys/slogmock/format"
)

// New returns a logger and the handler capturing its records. The handler is
// registered with tb so that a failing test dumps its captured records.
func New(tb testing.TB, opts ...capture.Option) (*slog.Logger, *capture.Handler) {
	tb.Helper()

	h := NewHandler(tb, opts...)
	return slog.New(h), h
}

// NewHandler returns a capturing handler registered with tb: when the test
// has failed by the time it finishes, the captured records are written to the
// test output.
func NewHandler(tb testing.TB, opts ...capture.Option) *capture.Handler {
	tb.Helper()

	h := capture.NewHandler(opts...)
	tb.Cleanup(func() {
		if tb.Failed() {
			tb.Logf("captured log records:\n%s", format.Records(h))
		}
	})

	return h
}

// Default swaps slog's process-wide default logger for a capturing one and
// restores the previous default when the test finishes. Use it to capture
// logs from code that calls slog.Info and friends directly.
//
// The default logger is process-wide state; tests using Default must not run
// in parallel with other tests that log through it.
func Default(tb testing.TB, opts ...capture.Option) *capture.Handler {
	tb.Helper()

	h := NewHandler(tb, opts...)

	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	tb.Cleanup(func() {
		slog.SetDefault(prev)
	})

	return h
}
