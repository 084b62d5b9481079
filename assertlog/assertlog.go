// Package assertlog verifies records captured by a capture.Handler: message
// content, severity, attached errors, counts, and ordering.
//
// Message parts are substrings a test expects to find within a record's
// formatted message. All parts must match; order and position are irrelevant
// unless a sequence assertion is used. Matching by substring instead of exact
// equality keeps tests robust against formatting changes.
//
//	logger, handler := logtest.New(t)
//	logger.Info("user created", "id", 42)
//
//	assertlog.Record(t, handler, 0, "user created", "id=42")
//	assertlog.RecordLevel(t, handler, 0, slog.LevelInfo, "created")
package assertlog

import (
	"fmt"
	"log/slog"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

// Record asserts that the record at the given index contains all message
// parts.
func Record(t assert.TestingT, h *capture.Handler, index int, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if !hasAllParts(rec, messageParts) {
		return assert.Fail(t, fmt.Sprintf("should contain all expected message parts; expected parts: %s; actual message: %s",
			joinParts(messageParts), rec.FormattedMessage()))
	}

	return true
}

// RecordLevel asserts that the record at the given index has the expected
// level and contains all message parts.
func RecordLevel(t assert.TestingT, h *capture.Handler, index int, expectedLevel slog.Level, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Level != expectedLevel {
		return assert.Fail(t, fmt.Sprintf("should have expected log level; expected: %s, actual: %s",
			levelName(expectedLevel), levelName(rec.Level)))
	}

	if !hasAllParts(rec, messageParts) {
		return assert.Fail(t, fmt.Sprintf("should contain all expected message parts; expected parts: %s; actual message: %s",
			joinParts(messageParts), rec.FormattedMessage()))
	}

	return true
}

// HasRecord asserts that at least one captured record contains all message
// parts.
func HasRecord(t assert.TestingT, h *capture.Handler, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if hasAllParts(rec, messageParts) {
			return true
		}
	}

	return assert.Fail(t, fmt.Sprintf("should have at least one record containing expected message parts; expected: %s",
		joinParts(messageParts)))
}

// HasRecordLevel asserts that at least one captured record has the expected
// level and contains all message parts.
func HasRecordLevel(t assert.TestingT, h *capture.Handler, expectedLevel slog.Level, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if rec.Level == expectedLevel && hasAllParts(rec, messageParts) {
			return true
		}
	}

	return assert.Fail(t, fmt.Sprintf("should have at least one record with expected level and all message parts; expected level: %s, expected messages: %s",
		levelName(expectedLevel), joinParts(messageParts)))
}
