package topicreader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordsBySplits(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		res := newRecordsBySplits[string]()
		require.True(t, res.IsEmpty())
		require.Zero(t, res.Len())
		require.Empty(t, res.SplitIDs())
		require.Empty(t, res.FinishedSplitIDs())
	})

	t.Run("CollectorKeepsArrivalOrder", func(t *testing.T) {
		res := newRecordsBySplits[string]()
		emit := res.collector("split-a")
		emit("1")
		emit("2")
		res.collector("split-b")("3")

		require.Equal(t, []string{"1", "2"}, res.Records("split-a"))
		require.Equal(t, []string{"3"}, res.Records("split-b"))
		require.Equal(t, []string{"split-a", "split-b"}, res.SplitIDs())
		require.Equal(t, 3, res.Len())
	})

	t.Run("FinishedWithoutRecords", func(t *testing.T) {
		res := newRecordsBySplits[string]()
		res.markFinished("split-a")

		require.False(t, res.IsEmpty())
		require.Zero(t, res.Len())
		require.True(t, res.IsSplitFinished("split-a"))
		require.False(t, res.IsSplitFinished("split-b"))
		require.Equal(t, []string{"split-a"}, res.FinishedSplitIDs())
	})
}
