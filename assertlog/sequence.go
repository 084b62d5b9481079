package assertlog

import (
	"fmt"
	"log/slog"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

// LevelSequence asserts that the captured records have exactly the given
// levels, in order.
func LevelSequence(t assert.TestingT, h *capture.Handler, expectedLevels ...slog.Level) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	records := h.Records()
	if len(records) != len(expectedLevels) {
		return assert.Fail(t, fmt.Sprintf("should have expected number of records for sequence; expected: %d, actual: %d",
			len(expectedLevels), len(records)))
	}

	for i, expected := range expectedLevels {
		if records[i].Level != expected {
			return assert.Fail(t, fmt.Sprintf("should have expected level at position %d; expected: %s, actual: %s",
				i, levelName(expected), levelName(records[i].Level)))
		}
	}

	return true
}

// MessageSequence asserts that the captured records contain the given message
// parts, one part per record, in order. The number of records must match the
// number of parts.
func MessageSequence(t assert.TestingT, h *capture.Handler, expectedMessageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	records := h.Records()
	if len(records) != len(expectedMessageParts) {
		return assert.Fail(t, fmt.Sprintf("should have expected number of records for sequence; expected: %d, actual: %d",
			len(expectedMessageParts), len(records)))
	}

	for i, part := range expectedMessageParts {
		if !hasAllParts(records[i], []string{part}) {
			return assert.Fail(t, fmt.Sprintf("should contain expected message part at position %d; expected: %s, actual message: %s",
				i, part, records[i].FormattedMessage()))
		}
	}

	return true
}
