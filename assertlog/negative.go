package assertlog

import (
	"fmt"
	"log/slog"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

// NotRecord asserts that the record at the given index does NOT contain all
// of the message parts. The record must exist.
func NotRecord(t assert.TestingT, h *capture.Handler, index int, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if hasAllParts(rec, messageParts) {
		return assert.Fail(t, fmt.Sprintf("should not have record at index %d with message parts; unexpected message parts: %s",
			index, joinParts(messageParts)))
	}

	return true
}

// NotRecordLevel asserts that the record at the given index does NOT have
// both the given level and all of the message parts.
func NotRecordLevel(t assert.TestingT, h *capture.Handler, index int, unexpectedLevel slog.Level, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Level == unexpectedLevel && hasAllParts(rec, messageParts) {
		return assert.Fail(t, fmt.Sprintf("should not have record at index %d with level and message parts; unexpected level: %s, unexpected message parts: %s",
			index, levelName(unexpectedLevel), joinParts(messageParts)))
	}

	return true
}

// NotRecordError asserts that the record at the given index has no attached
// error.
func NotRecordError(t assert.TestingT, h *capture.Handler, index int) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Err != nil {
		return assert.Fail(t, fmt.Sprintf("record at index %d should NOT have an attached error; actual: %v", index, rec.Err))
	}

	return true
}

// NotRecordErrorOfType asserts that the record at the given index does NOT
// have an attached error matching type E (and, when message parts are given,
// whose message contains all of them). A record without an error passes.
func NotRecordErrorOfType[E error](t assert.TestingT, h *capture.Handler, index int, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Err == nil || !errIsOfType[E](rec.Err) {
		return true
	}

	if len(messageParts) > 0 {
		if errHasAllParts(rec.Err, messageParts) {
			return assert.Fail(t, fmt.Sprintf("should not have record at index %d with error of type and message parts; unexpected type: %s, unexpected message parts: %s",
				index, errTypeName[E](), joinParts(messageParts)))
		}
		return true
	}

	return assert.Fail(t, fmt.Sprintf("should not have record at index %d with error of type; unexpected type: %s",
		index, errTypeName[E]()))
}

// NoRecord asserts that no captured record contains all of the message parts.
func NoRecord(t assert.TestingT, h *capture.Handler, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if hasAllParts(rec, messageParts) {
			return assert.Fail(t, fmt.Sprintf("should have no records containing message parts; unexpected message parts: %s",
				joinParts(messageParts)))
		}
	}

	return true
}

// NoRecordLevel asserts that no captured record has both the given level and
// all of the message parts.
func NoRecordLevel(t assert.TestingT, h *capture.Handler, unexpectedLevel slog.Level, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if rec.Level == unexpectedLevel && hasAllParts(rec, messageParts) {
			return assert.Fail(t, fmt.Sprintf("should have no records with level and message parts; unexpected level: %s, unexpected messages: %s",
				levelName(unexpectedLevel), joinParts(messageParts)))
		}
	}

	return true
}

// NoRecordError asserts that no captured record has an attached error.
func NoRecordError(t assert.TestingT, h *capture.Handler) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if rec.Err != nil {
			return assert.Fail(t, fmt.Sprintf("should have no records with an attached error; actual: %v", rec.Err))
		}
	}

	return true
}

// NoRecordErrorOfType asserts that no captured record has an attached error
// matching type E (and, when message parts are given, whose message contains
// all of them).
func NoRecordErrorOfType[E error](t assert.TestingT, h *capture.Handler, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if !errIsOfType[E](rec.Err) {
			continue
		}
		if len(messageParts) == 0 || errHasAllParts(rec.Err, messageParts) {
			return assert.Fail(t, fmt.Sprintf("should have no records with error type; unexpected type: %s",
				errTypeName[E]()))
		}
	}

	return true
}

// NoRecordErrorMessage asserts that no captured record has an attached error
// whose message contains all of the message parts.
func NoRecordErrorMessage(t assert.TestingT, h *capture.Handler, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if errHasAllParts(rec.Err, messageParts) {
			return assert.Fail(t, fmt.Sprintf("should have no records with error message parts; unexpected messages: %s",
				joinParts(messageParts)))
		}
	}

	return true
}
