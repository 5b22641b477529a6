package pulsarsource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/rekby/fixenv/sf"
	"github.com/stretchr/testify/require"

	"github.com/suxinglee/pulsar-source/internal/xtest"
)

func TestFetcherDeliversUntilSplitFinished(t *testing.T) {
	e := fixenv.New(t)
	ctx := sf.Context(e)
	broker := Broker(e)
	broker.publish("one", "two", "three", "four")

	reader := StringReader(e)
	split := NewPartitionSplit(
		Partition(e),
		StartEarliest(),
		StopAtMessageID(NewMessageID(1, 2, 0)),
	)
	require.NoError(t, reader.HandleSplitsChanges(ctx, &SplitsAddition{Splits: []*PartitionSplit{split}}))

	records := make(chan string, 10)
	fetcher, err := NewFetcher(ctx, reader, func(_ context.Context, res *Records[string]) error {
		for _, record := range res.Records(split.SplitID()) {
			records <- record
		}

		return nil
	})
	require.NoError(t, err)

	xtest.WaitChannelClosed(t, fetcher.Done())
	close(records)

	var got []string
	for record := range records {
		got = append(got, record)
	}
	require.Equal(t, []string{"one", "two", "three"}, got)
	require.ErrorIs(t, fetcher.CloseReason(), ErrSplitFinished)
}

func TestFetcherStopsOnHandlerError(t *testing.T) {
	e := fixenv.New(t)
	ctx := sf.Context(e)
	broker := Broker(e)
	broker.publish("one")

	reader := StringReader(e)
	split := NewPartitionSplit(Partition(e), StartEarliest(), StopNever())
	require.NoError(t, reader.HandleSplitsChanges(ctx, &SplitsAddition{Splits: []*PartitionSplit{split}}))

	testErr := errors.New("handler failed")
	fetcher, err := NewFetcher(ctx, reader, func(context.Context, *Records[string]) error {
		return testErr
	})
	require.NoError(t, err)

	xtest.WaitChannelClosed(t, fetcher.Done())
	require.ErrorIs(t, fetcher.CloseReason(), testErr)
}

func TestFetcherRejectsUnassignedReader(t *testing.T) {
	e := fixenv.New(t)
	ctx := sf.Context(e)
	Broker(e)

	reader := StringReader(e)
	require.False(t, reader.Assigned())

	fetcher, err := NewFetcher(ctx, reader, func(context.Context, *Records[string]) error {
		return nil
	})
	require.ErrorIs(t, err, ErrReaderUnassigned)
	require.Nil(t, fetcher)
}

func TestFetcherClose(t *testing.T) {
	e := fixenv.New(t)
	ctx := sf.Context(e)
	Broker(e)

	reader := StringReader(e)
	split := NewPartitionSplit(Partition(e), StartEarliest(), StopNever())
	require.NoError(t, reader.HandleSplitsChanges(ctx, &SplitsAddition{Splits: []*PartitionSplit{split}}))

	fetcher, err := NewFetcher(ctx, reader, func(context.Context, *Records[string]) error {
		return nil
	})
	require.NoError(t, err)

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, fetcher.Close(closeCtx))
	require.NoError(t, fetcher.Close(closeCtx))

	xtest.WaitChannelClosed(t, fetcher.Done())
}
