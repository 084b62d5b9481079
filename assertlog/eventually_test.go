package assertlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/usefultoys/slogmock/capture"
)

func Test_EventuallyHasRecord(t *testing.T) {
	h := capture.NewHandler()
	logger := h.Logger()

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(20 * time.Millisecond)
		logger.Info("worker finished", "items", 7)
	}()

	require.True(t, EventuallyHasRecord(t, h, time.Second, "worker finished", "items=7"))
	<-done
}

func Test_EventuallyHasRecordTimesOut(t *testing.T) {
	h := capture.NewHandler()

	ft := &failRecorder{}
	require.False(t, EventuallyHasRecord(ft, h, 50*time.Millisecond, "never logged"))
	require.True(t, ft.failed)
	require.Contains(t, ft.lastMessage(), "never logged")
}
