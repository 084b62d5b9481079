package assertlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"

	"github.com/usefultoys/slogmock/capture"
)

var errNoMatchingRecord = errors.New("no matching record yet")

// EventuallyHasRecord polls until at least one captured record contains all
// message parts or the timeout elapses. Use it for code that logs from
// another goroutine; the other assertions assume logging has already
// settled.
func EventuallyHasRecord(t assert.TestingT, h *capture.Handler, timeout time.Duration, messageParts ...string) bool {
	if th, ok := t.(tHelper); ok {
		th.Helper()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Millisecond
	bo.MaxInterval = 50 * time.Millisecond

	err := backoff.Retry(func() error {
		for _, rec := range h.Records() {
			if hasAllParts(rec, messageParts) {
				return nil
			}
		}
		return errNoMatchingRecord
	}, backoff.WithContext(bo, ctx))

	if err != nil {
		return assert.Fail(t, fmt.Sprintf("should have at least one record containing expected message parts within %s; expected: %s",
			timeout, joinParts(messageParts)))
	}

	return true
}
