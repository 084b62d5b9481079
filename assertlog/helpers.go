package assertlog

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

type tHelper interface {
	Helper()
}

// recordAt fetches the record at index, failing the test when the handler
// has not captured enough records.
func recordAt(t assert.TestingT, h *capture.Handler, index int) (capture.Record, bool) {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := h.Record(index)
	if !ok {
		assert.Fail(t, fmt.Sprintf("should have enough log records; requested record: %d, available records: %d", index, h.Len()))
		return capture.Record{}, false
	}

	return rec, true
}

// hasAllParts reports whether every part occurs somewhere in the record's
// formatted message. Parts are independent substrings; order and position do
// not matter.
func hasAllParts(rec capture.Record, parts []string) bool {
	msg := rec.FormattedMessage()
	for _, part := range parts {
		if !strings.Contains(msg, part) {
			return false
		}
	}

	return true
}

func errHasAllParts(err error, parts []string) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, part := range parts {
		if !strings.Contains(msg, part) {
			return false
		}
	}

	return true
}

func errIsOfType[E error](err error) bool {
	if err == nil {
		return false
	}

	var target E
	return errors.As(err, &target)
}

func errTypeName[E error]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}

func joinParts(parts []string) string {
	return strings.Join(parts, ", ")
}

func levelName(level slog.Level) string {
	return level.String()
}
