package xtest

import (
	"sync"
	"testing"
	"time"
)

// TestManyTimes reruns a short racy test in a loop for about a second to
// shake out scheduling-dependent failures. Cleanup registrations run
// after every iteration, not at test end.
func TestManyTimes(t testing.TB, test func(t testing.TB)) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for {
		iter := &iterationTB{TB: t}
		func() {
			defer iter.runCleanups()

			test(iter)
		}()

		if time.Now().After(deadline) {
			return
		}
	}
}

// iterationTB scopes Cleanup to one loop iteration.
type iterationTB struct {
	testing.TB

	mu       sync.Mutex
	cleanups []func()
}

func (tb *iterationTB) Cleanup(f func()) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.cleanups = append(tb.cleanups, f)
}

func (tb *iterationTB) runCleanups() {
	tb.mu.Lock()
	cleanups := tb.cleanups
	tb.cleanups = nil
	tb.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
