package xtest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManyTimesRunsCleanupEveryIteration(t *testing.T) {
	iterations := 0
	pendingCleanups := 0

	TestManyTimes(t, func(t testing.TB) {
		require.Zero(t, pendingCleanups)
		iterations++
		pendingCleanups++
		t.Cleanup(func() {
			pendingCleanups--
		})
	})

	require.Positive(t, iterations)
	require.Zero(t, pendingCleanups)
}
