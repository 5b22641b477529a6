package xcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCancelErrWithCallerRecord(t *testing.T) {
	ctx, cancel := WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ctx.Err(), context.Canceled)
	require.Contains(t, ctx.Err().Error(), "at `")
	require.Contains(t, ctx.Err().Error(), "context_with_cancel_test.go:")
}

func TestTimeoutErrWithCreationRecord(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), 0)
	defer cancel()

	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	require.Contains(t, ctx.Err().Error(), "from `")
}

func TestValueOnly(t *testing.T) {
	type key struct{}

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))
	cancel()

	clean := ValueOnly(ctx)
	require.NoError(t, clean.Err())
	require.Nil(t, clean.Done())
	require.Equal(t, "v", clean.Value(key{}))
}
