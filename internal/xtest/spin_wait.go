package xtest

import (
	"sync"
	"testing"
	"time"
)

const (
	defaultWaitTimeout  = time.Second
	spinWaitMinInterval = time.Microsecond
)

// SpinWaitCondition wait while cond return true
// l can be nil - then locker use for check conditions
func SpinWaitCondition(tb testing.TB, l sync.Locker, cond func() bool) {
	tb.Helper()

	SpinWaitConditionWithTimeout(tb, l, defaultWaitTimeout, cond)
}

// SpinWaitConditionWithTimeout wait while cond return true
// l can be nil - then locker use for check conditions
func SpinWaitConditionWithTimeout(tb testing.TB, l sync.Locker, condWaitTimeout time.Duration, cond func() bool) {
	tb.Helper()

	checkCondition := func() bool {
		if l != nil {
			l.Lock()
			defer l.Unlock()
		}

		return cond()
	}

	start := time.Now()
	for {
		if checkCondition() {
			return
		}

		if time.Since(start) > condWaitTimeout {
			tb.Fatal("Timeout while wait condition")
		}

		time.Sleep(spinWaitMinInterval)
	}
}
