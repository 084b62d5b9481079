// Package capture provides an in-memory slog.Handler that records log events
// as immutable snapshots for inspection in tests.
package capture

import (
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Record is an immutable snapshot of a single logging call. It is created
// when a log call reaches the capturing handler and is never modified
// afterwards; mutating the logger or reusing attr values after the call does
// not affect captured records.
type Record struct {
	// Time is the time at which the record was captured.
	Time time.Time

	// Level is the severity of the record.
	Level slog.Level

	// Logger is the dot-joined group path of the handler that captured the
	// record, slog's closest analog of a logger name. Empty for the root
	// logger.
	Logger string

	// Message is the raw message as passed to the log call.
	Message string

	// Attrs holds the structured fields of the record, including attrs
	// accumulated with Logger.With. Keys of grouped attrs are qualified with
	// their group path ("request.id").
	Attrs []slog.Attr

	// Err is the error attached to the record via one of the conventional
	// error attr keys, or nil.
	Err error

	// Source is the source location of the log call, if the logger was
	// configured to collect it.
	Source *slog.Source

	// Span is the span context that was active in the log call's context.
	// Check Span.IsValid before using it.
	Span trace.SpanContext

	// Seq is a process-global sequence number. Unlike Index it keeps growing
	// across Clear calls and across handlers.
	Seq int64

	// Index is the zero-based capture-order position of the record within its
	// handler. Restarts at zero after Clear.
	Index int
}

// FormattedMessage returns the message followed by the rendered key=value
// attrs. This is the string message-part assertions match against, so parts
// can refer to attr values as well as to the message itself.
func (r Record) FormattedMessage() string {
	if len(r.Attrs) == 0 {
		return r.Message
	}

	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range r.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}

	return b.String()
}

// Attr returns the value of the attr with the given (group-qualified) key.
func (r Record) Attr(key string) (slog.Value, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}
