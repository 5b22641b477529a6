package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeCallsBoth(t *testing.T) {
	var calls []string

	t1 := &Source{
		OnReaderFetch: func(SourceReaderFetchStartInfo) func(SourceReaderFetchDoneInfo) {
			calls = append(calls, "t1-start")

			return func(SourceReaderFetchDoneInfo) {
				calls = append(calls, "t1-done")
			}
		},
		OnReaderWakeUp: func(SourceReaderWakeUpInfo) {
			calls = append(calls, "t1-wakeup")
		},
	}
	t2 := &Source{
		OnReaderFetch: func(SourceReaderFetchStartInfo) func(SourceReaderFetchDoneInfo) {
			calls = append(calls, "t2-start")

			return nil
		},
	}

	composed := t1.Compose(t2)
	done := composed.OnReaderFetch(SourceReaderFetchStartInfo{})
	done(SourceReaderFetchDoneInfo{})
	composed.OnReaderWakeUp(SourceReaderWakeUpInfo{})

	require.Equal(t, []string{"t1-start", "t2-start", "t1-done", "t1-wakeup"}, calls)
}

func TestComposeNil(t *testing.T) {
	t1 := &Source{}
	require.Same(t, t1, t1.Compose(nil))
	require.Same(t, t1, (*Source)(nil).Compose(t1))
}

func TestHelpersOnNilTrace(t *testing.T) {
	require.NotPanics(t, func() {
		SourceOnReaderSplitAssign(nil, 1, "split")("earliest", nil)
		SourceOnReaderFetch(&Source{}, 1, "split")(0, false, errors.New("err"))
		SourceOnReaderWakeUp(nil, 1)
		SourceOnReaderClose(nil, 1)(nil)
	})
}
