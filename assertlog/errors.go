package assertlog

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

// RecordError asserts that the record at the given index has an attached
// error.
func RecordError(t assert.TestingT, h *capture.Handler, index int) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Err == nil {
		return assert.Fail(t, "should have an attached error")
	}

	return true
}

// RecordErrorOfType asserts that the record at the given index has an
// attached error matching type E (via errors.As, so wrapped errors match)
// and, when message parts are given, that the error's message contains all of
// them.
func RecordErrorOfType[E error](t assert.TestingT, h *capture.Handler, index int, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Err == nil {
		return assert.Fail(t, "should have an attached error")
	}

	if !errIsOfType[E](rec.Err) {
		return assert.Fail(t, fmt.Sprintf("should have expected error type; expected: %s, actual: %T",
			errTypeName[E](), rec.Err))
	}

	if len(messageParts) > 0 && !errHasAllParts(rec.Err, messageParts) {
		return assert.Fail(t, fmt.Sprintf("should contain all expected message parts in error; expected parts: %s; actual message: %s",
			joinParts(messageParts), rec.Err))
	}

	return true
}

// RecordErrorIs asserts that the record at the given index has an attached
// error matching target via errors.Is.
func RecordErrorIs(t assert.TestingT, h *capture.Handler, index int, target error) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	rec, ok := recordAt(t, h, index)
	if !ok {
		return false
	}

	if rec.Err == nil {
		return assert.Fail(t, "should have an attached error")
	}

	return assert.ErrorIs(t, rec.Err, target)
}

// HasRecordError asserts that at least one captured record has an attached
// error.
func HasRecordError(t assert.TestingT, h *capture.Handler) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if rec.Err != nil {
			return true
		}
	}

	return assert.Fail(t, "should have at least one record with an attached error")
}

// HasRecordErrorOfType asserts that at least one captured record has an
// attached error matching type E and, when message parts are given, whose
// message contains all of them.
func HasRecordErrorOfType[E error](t assert.TestingT, h *capture.Handler, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if !errIsOfType[E](rec.Err) {
			continue
		}
		if len(messageParts) == 0 || errHasAllParts(rec.Err, messageParts) {
			return true
		}
	}

	if len(messageParts) > 0 {
		return assert.Fail(t, fmt.Sprintf("should have at least one record with expected error type and message parts; expected type: %s, expected messages: %s",
			errTypeName[E](), joinParts(messageParts)))
	}

	return assert.Fail(t, fmt.Sprintf("should have at least one record with expected error type; expected: %s",
		errTypeName[E]()))
}

// HasRecordErrorIs asserts that at least one captured record has an attached
// error matching target via errors.Is.
func HasRecordErrorIs(t assert.TestingT, h *capture.Handler, target error) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	for _, rec := range h.Records() {
		if rec.Err != nil && errors.Is(rec.Err, target) {
			return true
		}
	}

	return assert.Fail(t, fmt.Sprintf("should have at least one record with an error matching target; target: %v", target))
}
