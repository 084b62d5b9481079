package assertlog

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usefultoys/slogmock/capture"
)

// failRecorder stands in for *testing.T so tests can verify that assertions
// fail when they should, and with which message.
type failRecorder struct {
	failed   bool
	messages []string
}

func (r *failRecorder) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *failRecorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func newHandler(log func(logger *slog.Logger)) *capture.Handler {
	h := capture.NewHandler()
	log(h.Logger())
	return h
}

func Test_Record(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("user created", "id", 42)
		l.Warn("quota exceeded")
	})

	require.True(t, Record(t, h, 0, "user created"))
	require.True(t, Record(t, h, 0, "created", "id=42"))
	require.True(t, Record(t, h, 1, "quota"))
}

func Test_RecordFailsOnMissingPart(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("user created")
	})

	ft := &failRecorder{}
	require.False(t, Record(ft, h, 0, "user created", "id=42"))
	require.True(t, ft.failed)
	require.Contains(t, ft.lastMessage(), "should contain all expected message parts")
	require.Contains(t, ft.lastMessage(), "user created")
}

func Test_RecordFailsOnIndexOutOfRange(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("only one")
	})

	ft := &failRecorder{}
	require.False(t, Record(ft, h, 3, "only one"))
	require.True(t, ft.failed)
	require.Contains(t, ft.lastMessage(), "should have enough log records; requested record: 3, available records: 1")
}

func Test_RecordLevel(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("starting up")
		l.Error("shutting down")
	})

	require.True(t, RecordLevel(t, h, 0, slog.LevelInfo, "starting"))
	require.True(t, RecordLevel(t, h, 1, slog.LevelError, "shutting"))

	ft := &failRecorder{}
	require.False(t, RecordLevel(ft, h, 0, slog.LevelError, "starting"))
	require.Contains(t, ft.lastMessage(), "should have expected log level")
}

func Test_HasRecord(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("first")
		l.Info("second", "key", "value")
		l.Info("third")
	})

	require.True(t, HasRecord(t, h, "second"))
	require.True(t, HasRecord(t, h, "second", "key=value"))

	ft := &failRecorder{}
	require.False(t, HasRecord(ft, h, "fourth"))
	require.Contains(t, ft.lastMessage(), "should have at least one record containing expected message parts")
}

func Test_HasRecordLevel(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("something happened")
		l.Warn("something happened")
	})

	require.True(t, HasRecordLevel(t, h, slog.LevelWarn, "something"))

	ft := &failRecorder{}
	require.False(t, HasRecordLevel(ft, h, slog.LevelError, "something"))
	require.Contains(t, ft.lastMessage(), "expected level: ERROR")
}

func Test_PartsMatchAttrValues(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("request handled", "path", "/api/users", "status", 200)
	})

	// parts can match rendered attrs, not just the raw message
	require.True(t, Record(t, h, 0, "/api/users", "status=200"))
}

func Test_PartsOrderIrrelevant(t *testing.T) {
	h := newHandler(func(l *slog.Logger) {
		l.Info("alpha beta gamma")
	})

	require.True(t, Record(t, h, 0, "gamma", "alpha"))
	require.True(t, Record(t, h, 0, strings.Split("beta gamma", " ")...))
}
