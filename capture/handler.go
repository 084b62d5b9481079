package capture

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// seq numbers records across all handlers in the process, mirroring how log
// records are globally ordered even when tests use several handlers.
var seq atomic.Int64

// Handler is a slog.Handler that captures records into an in-memory list for
// later inspection by assertion helpers. Records are stored in insertion
// order; the list only grows until Clear is called.
//
// The handler is safe for concurrent logging. Assertion helpers are expected
// to run after logging has settled; use assertlog.EventuallyHasRecord for
// code that logs from other goroutines.
type Handler struct {
	state *state

	// group/attr context accumulated via WithGroup/WithAttrs. Child handlers
	// share state with their parent, so records captured through a child show
	// up in the parent's list.
	groups []string
	attrs  []slog.Attr

	// next receives the unmodified record when the handler tees to a real
	// handler. Evolved in parallel with this handler's group/attr context.
	next slog.Handler
}

type state struct {
	mu      sync.Mutex
	records []Record

	level   *slog.LevelVar
	enabled atomic.Bool

	clock   clock.Clock
	errKeys []string
	id      uuid.UUID
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a capturing handler. By default it is enabled, captures
// records of any severity, and timestamps records with the time reported by
// the log call.
func NewHandler(opts ...Option) *Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lv := &slog.LevelVar{}
	lv.Set(o.level)

	s := &state{
		level:   lv,
		clock:   o.clock,
		errKeys: o.errKeys,
		id:      uuid.New(),
	}
	s.enabled.Store(o.enabled)

	return &Handler{state: s, next: o.tee}
}

// Logger returns a slog.Logger backed by this handler.
func (h *Handler) Logger() *slog.Logger {
	return slog.New(h)
}

// ID identifies the handler, e.g. in failure dumps covering several handlers.
func (h *Handler) ID() uuid.UUID {
	return h.state.id
}

// Enabled implements slog.Handler. It reports false while the handler is
// disabled or the level is below the threshold, so disabled calls are never
// captured and never reach the teed handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.state.enabled.Load() && level >= h.state.level.Level()
}

// Handle implements slog.Handler. It appends an immutable snapshot of the
// record and forwards the original record to the teed handler, if any.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	rec := h.snapshot(ctx, r)

	// Seq and Index are assigned together so capture order and sequence
	// order agree even under concurrent logging.
	h.state.mu.Lock()
	rec.Seq = seq.Add(1)
	rec.Index = len(h.state.records)
	h.state.records = append(h.state.records, rec)
	h.state.mu.Unlock()

	if h.next != nil && h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}

	return nil
}

// WithAttrs implements slog.Handler. The child shares the record list with
// this handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	child := *h
	child.attrs = append(slices.Clip(h.attrs), qualify(h.groups, attrs)...)
	if h.next != nil {
		child.next = h.next.WithAttrs(attrs)
	}

	return &child
}

// WithGroup implements slog.Handler. The child shares the record list with
// this handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	child := *h
	child.groups = append(slices.Clip(h.groups), name)
	if h.next != nil {
		child.next = h.next.WithGroup(name)
	}

	return &child
}

// Records returns a snapshot of all captured records in insertion order.
// Mutating the snapshot does not affect the handler.
func (h *Handler) Records() []Record {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	out := slices.Clone(h.state.records)
	for i := range out {
		out[i].Attrs = slices.Clone(out[i].Attrs)
	}

	return out
}

// Len returns the number of captured records.
func (h *Handler) Len() int {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	return len(h.state.records)
}

// Record returns the record at the given capture-order index.
func (h *Handler) Record(index int) (Record, bool) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if index < 0 || index >= len(h.state.records) {
		return Record{}, false
	}

	rec := h.state.records[index]
	rec.Attrs = slices.Clone(rec.Attrs)

	return rec, true
}

// Last returns the most recently captured record.
func (h *Handler) Last() (Record, bool) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if len(h.state.records) == 0 {
		return Record{}, false
	}

	rec := h.state.records[len(h.state.records)-1]
	rec.Attrs = slices.Clone(rec.Attrs)

	return rec, true
}

// Clear removes all captured records. Capture indices restart at zero;
// global sequence numbers do not.
func (h *Handler) Clear() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	h.state.records = nil
}

// SetLevel changes the minimum severity captured from now on. Records already
// captured are unaffected.
func (h *Handler) SetLevel(level slog.Level) {
	h.state.level.Set(level)
}

// Level returns the current minimum severity.
func (h *Handler) Level() slog.Level {
	return h.state.level.Level()
}

// SetEnabled toggles capturing without touching the level threshold.
func (h *Handler) SetEnabled(enabled bool) {
	h.state.enabled.Store(enabled)
}

func (h *Handler) snapshot(ctx context.Context, r slog.Record) Record {
	rec := Record{
		Time:    h.now(r.Time),
		Level:   r.Level,
		Logger:  strings.Join(h.groups, "."),
		Message: r.Message,
		Source:  source(r.PC),
		Span:    trace.SpanContextFromContext(ctx),
	}

	attrs := slices.Clone(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if err, ok := h.attachedError(a); ok && rec.Err == nil {
			rec.Err = err
			return true
		}

		attrs = appendFlattened(attrs, strings.Join(h.groups, "."), a)
		return true
	})
	rec.Attrs = attrs

	return rec
}

func (h *Handler) now(recorded time.Time) time.Time {
	if h.state.clock != nil {
		return h.state.clock.Now()
	}

	if recorded.IsZero() {
		return time.Now()
	}

	return recorded
}

func (h *Handler) attachedError(a slog.Attr) (error, bool) {
	for _, key := range h.state.errKeys {
		if a.Key != key {
			continue
		}

		if err, ok := a.Value.Resolve().Any().(error); ok {
			return err, true
		}
	}

	return nil, false
}

// qualify prefixes attr keys with the handler's group path and flattens
// group-valued attrs, so lookups and rendering see "request.id" style keys.
func qualify(groups []string, attrs []slog.Attr) []slog.Attr {
	prefix := strings.Join(groups, ".")

	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = appendFlattened(out, prefix, a)
	}

	return out
}

func appendFlattened(dst []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	if a.Equal(slog.Attr{}) {
		return dst
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		// inline groups keep slog's semantics: an empty group name adds no
		// path segment, an empty group adds nothing at all
		inner := prefix
		if a.Key != "" {
			inner = joinKey(prefix, a.Key)
		}
		for _, ga := range a.Value.Group() {
			dst = appendFlattened(dst, inner, ga)
		}
		return dst
	}

	a.Key = joinKey(prefix, a.Key)
	return append(dst, a)
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

func source(pc uintptr) *slog.Source {
	if pc == 0 {
		return nil
	}

	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()

	return &slog.Source{
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
	}
}
