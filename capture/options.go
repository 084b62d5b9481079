package capture

import (
	"log/slog"
	"math"

	"github.com/benbjohnson/clock"
)

// LevelAll is a threshold below every severity, so nothing is filtered.
const LevelAll slog.Level = math.MinInt32

type options struct {
	level   slog.Level
	enabled bool
	clock   clock.Clock
	tee     slog.Handler
	errKeys []string
}

func defaultOptions() options {
	return options{
		level:   LevelAll,
		enabled: true,
		errKeys: []string{"error", "err"},
	}
}

type Option func(*options)

// WithLevel sets the initial minimum severity captured. Defaults to
// LevelAll.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level.Level()
	}
}

// WithEnabled sets whether the handler starts out capturing. Defaults to
// true.
func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = enabled
	}
}

// WithClock makes record timestamps come from the given clock instead of the
// time reported by the log call. Pass a mock clock for deterministic
// timestamps.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithTee forwards every captured record to the given handler as well, e.g.
// to keep test output visible while capturing.
func WithTee(next slog.Handler) Option {
	return func(o *options) {
		o.tee = next
	}
}

// WithErrorKeys sets the attr keys whose error values are treated as the
// record's attached error. Defaults to "error" and "err".
func WithErrorKeys(keys ...string) Option {
	return func(o *options) {
		o.errKeys = keys
	}
}
