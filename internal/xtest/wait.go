package xtest

import (
	"testing"
	"time"
)

func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	const condWaitTimeout = time.Second

	select {
	case <-time.After(condWaitTimeout):
		t.Fatal("Timeout while wait channel closed")
	case <-ch:
	}
}

// WaitGroup is deadline-safe replacement of sync.WaitGroup.Wait
func WaitGroup(t testing.TB, wg interface{ Wait() }) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	WaitChannelClosed(t, done)
}
