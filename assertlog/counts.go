package assertlog

import (
	"fmt"
	"log/slog"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

// RecordCount asserts that exactly expectedCount records were captured.
func RecordCount(t assert.TestingT, h *capture.Handler, expectedCount int) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	actual := h.Len()
	if actual != expectedCount {
		return assert.Fail(t, fmt.Sprintf("should have expected number of records; expected: %d, actual: %d",
			expectedCount, actual))
	}

	return true
}

// NoRecords asserts that nothing was captured.
func NoRecords(t assert.TestingT, h *capture.Handler) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	return RecordCount(t, h, 0)
}

// RecordCountByLevel asserts that exactly expectedCount records with the
// given level were captured.
func RecordCountByLevel(t assert.TestingT, h *capture.Handler, level slog.Level, expectedCount int) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	actual := 0
	for _, rec := range h.Records() {
		if rec.Level == level {
			actual++
		}
	}

	if actual != expectedCount {
		return assert.Fail(t, fmt.Sprintf("should have expected number of records with level %s; expected: %d, actual: %d",
			levelName(level), expectedCount, actual))
	}

	return true
}

// RecordCountByMessage asserts that exactly expectedCount records containing
// the given message part were captured.
func RecordCountByMessage(t assert.TestingT, h *capture.Handler, messagePart string, expectedCount int) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	actual := 0
	for _, rec := range h.Records() {
		if hasAllParts(rec, []string{messagePart}) {
			actual++
		}
	}

	if actual != expectedCount {
		return assert.Fail(t, fmt.Sprintf("should have expected number of records containing message part %q; expected: %d, actual: %d",
			messagePart, expectedCount, actual))
	}

	return true
}
