package topicreader

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicdeserialize"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsplit"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
	"github.com/suxinglee/pulsar-source/internal/xsync"
	"github.com/suxinglee/pulsar-source/trace"
)

var (
	// ErrReaderAlreadyAssigned is a scheduler contract violation: a split
	// reader accepts one split per lifetime, reassignment means teardown
	// and a new reader.
	ErrReaderAlreadyAssigned = xerrors.Wrap(errors.New("pulsarsource: split reader already has assigned split"))

	// ErrUnsupportedSplitsChange is returned for assignment events other
	// than addition.
	ErrUnsupportedSplitsChange = xerrors.Wrap(errors.New("pulsarsource: unsupported splits change type"))

	// ErrUnsupportedSplitBatch is returned when an addition carries more
	// or less than exactly one split.
	ErrUnsupportedSplitBatch = xerrors.Wrap(errors.New("pulsarsource: split reader supports exactly one split"))

	// ErrPollFailure marks broker-side failures of the poll step. The
	// cycle is aborted, retry is the caller's responsibility.
	ErrPollFailure = xerrors.Wrap(errors.New("pulsarsource: poll message failed"))
)

//go:generate mockgen -destination client_mock_test.go -package topicreader -write_package_comment=false github.com/suxinglee/pulsar-source/internal/topic/topicsub Client,Consumer

var readerIDCounter atomic.Int64

// SplitReader consumes one assigned partition split in bounded, timed,
// cooperatively cancellable fetch cycles.
//
// Fetch and HandleSplitsChanges must be called from one goroutine.
// WakeUp may be called concurrently from another goroutine at any time.
type SplitReader[T any] struct {
	cfg     Config
	client  topicsub.Client
	admin   topicadmin.Client
	schema  topicdeserialize.Schema[T]
	handler subscriptionHandler

	readerID int64
	wakeup   atomic.Bool

	split    *topicsplit.PartitionSplit
	consumer topicsub.Consumer

	m      xsync.Mutex
	closed bool
}

func NewSplitReader[T any](
	client topicsub.Client,
	admin topicadmin.Client,
	schema topicdeserialize.Schema[T],
	cfg Config, //nolint:gocritic
) (*SplitReader[T], error) {
	if validateErrors := cfg.Validate(); len(validateErrors) > 0 {
		return nil, xerrors.WithStackTrace(xerrors.Join(validateErrors...))
	}

	return &SplitReader[T]{
		cfg:      cfg,
		client:   client,
		admin:    admin,
		schema:   schema,
		handler:  newSubscriptionHandler(cfg.SubscriptionType),
		readerID: readerIDCounter.Add(1),
	}, nil
}

// ReaderID identifies the reader instance in traces.
func (r *SplitReader[T]) ReaderID() int64 {
	return r.readerID
}

// Assigned reports whether the reader owns a split.
func (r *SplitReader[T]) Assigned() bool {
	return r.split != nil
}

// HandleSplitsChanges assigns a split to the reader: resolves its
// cursors against partition metadata, subscribes a consumer positioned
// at the resolved start and retains both.
//
// Must not run concurrently with Fetch.
func (r *SplitReader[T]) HandleSplitsChanges(ctx context.Context, change SplitsChange) error {
	addition, ok := change.(*SplitsAddition)
	if !ok {
		return xerrors.WithStackTrace(fmt.Errorf("%w: %T", ErrUnsupportedSplitsChange, change))
	}

	if r.split != nil {
		return xerrors.WithStackTrace(ErrReaderAlreadyAssigned)
	}

	if len(addition.Splits) != 1 {
		return xerrors.WithStackTrace(fmt.Errorf("%w, got %d", ErrUnsupportedSplitBatch, len(addition.Splits)))
	}
	split := addition.Splits[0]

	onDone := trace.SourceOnReaderSplitAssign(r.cfg.Trace, r.readerID, split.SplitID())

	if err := split.Open(ctx, r.admin); err != nil {
		onDone("", err)

		return err
	}

	consumer, err := r.subscribe(ctx, split)
	if err != nil {
		onDone(split.StartPosition().String(), err)

		return err
	}

	if err = r.handler.startConsumer(ctx, split, consumer); err != nil {
		closeErr := consumer.Close()
		onDone(split.StartPosition().String(), err)

		if closeErr != nil {
			return xerrors.Join(err, closeErr)
		}

		return err
	}

	r.split = split
	r.consumer = consumer
	onDone(split.StartPosition().String(), nil)

	return nil
}

func (r *SplitReader[T]) subscribe(
	ctx context.Context,
	split *topicsplit.PartitionSplit,
) (topicsub.Consumer, error) {
	opts := topicsub.SubscribeOptions{
		Partition:         split.Partition,
		SubscriptionName:  r.cfg.SubscriptionName,
		SubscriptionType:  r.cfg.SubscriptionType,
		ConsumerName:      fmt.Sprintf("reader-%d-%s", r.readerID, uuid.NewString()),
		StartPosition:     split.StartPosition(),
		Credentials:       r.cfg.Credentials,
		ReceiverQueueSize: r.cfg.ReceiverQueueSize,
	}

	if r.cfg.SubscriptionType == topicsub.SubscriptionTypeKeyShared {
		keyHashRange := split.Partition.Range
		opts.KeyHashRange = &keyHashRange
	}

	consumer, err := r.client.Subscribe(ctx, opts)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return consumer, nil
}

// WakeUp requests cooperative cancellation of the current or next fetch
// cycle. Non-blocking, idempotent, safe for concurrent use.
func (r *SplitReader[T]) WakeUp() {
	if r.wakeup.CompareAndSwap(false, true) {
		trace.SourceOnReaderWakeUp(r.cfg.Trace, r.readerID)
	}
}

// Fetch runs one bounded fetch cycle and returns the records collected
// before its budget ran out. A partial or empty result is a normal
// outcome. On an unassigned reader Fetch returns an empty result
// immediately.
func (r *SplitReader[T]) Fetch(ctx context.Context) (*RecordsBySplits[T], error) {
	res := newRecordsBySplits[T]()

	// Return when no split registered to this reader.
	if r.consumer == nil || r.split == nil {
		return res, nil
	}

	// Reset wakeup for start consuming: requests arrived before this
	// cycle cancel it immediately only if set again below.
	r.wakeup.CompareAndSwap(true, false)

	splitID := r.split.SplitID()
	stop := r.split.Stop
	emit := res.collector(splitID)

	onDone := trace.SourceOnReaderFetch(r.cfg.Trace, r.readerID, splitID)
	deadline := r.cfg.Clock.Now().Add(r.cfg.MaxFetchTime)

	for messageNum := 0; messageNum < r.cfg.MaxFetchRecords; messageNum++ {
		timeout := deadline.Sub(r.cfg.Clock.Now())
		if timeout <= 0 || r.wakeup.Load() {
			break
		}

		msg, err := r.handler.pollMessage(ctx, r.consumer, timeout)
		if err != nil {
			if gracefulPollStop(err) {
				break
			}

			fetchErr := xerrors.WithStackTrace(xerrors.Join(ErrPollFailure, err))
			onDone(res.Len(), false, fetchErr)

			return nil, fetchErr
		}
		if msg == nil {
			// nothing more available right now
			break
		}

		if err = r.schema.Deserialize(msg, emit); err != nil {
			onDone(res.Len(), false, err)

			return nil, err
		}

		if err = r.handler.finishedPollMessage(ctx, r.consumer, msg); err != nil {
			onDone(res.Len(), false, err)

			return nil, err
		}

		if stop.ShouldStop(msg) {
			res.markFinished(splitID)
			break
		}
	}

	onDone(res.Len(), res.IsSplitFinished(splitID), nil)

	return res, nil
}

// gracefulPollStop reports poll outcomes which end the cycle with a
// partial result instead of an error: poll timeout and cancellation of
// the polling goroutine.
func gracefulPollStop(err error) bool {
	return xerrors.Is(err, topicsub.ErrPollTimeout) || xerrors.IsTimeoutError(err)
}

// Close releases the held consumer, if any. Idempotent. Broker-side
// close failures are collected into the returned error instead of
// panicking half-way.
func (r *SplitReader[T]) Close(ctx context.Context) error {
	var alreadyClosed bool
	r.m.WithLock(func() {
		alreadyClosed = r.closed
		r.closed = true
	})
	if alreadyClosed {
		return nil
	}

	onDone := trace.SourceOnReaderClose(r.cfg.Trace, r.readerID)

	var closeErr error
	if r.consumer != nil {
		if err := r.consumer.Close(); err != nil {
			closeErr = xerrors.WithStackTrace(
				fmt.Errorf("pulsarsource: close consumer of split %q: %w", r.split.SplitID(), err),
			)
		}
	}
	onDone(closeErr)

	return closeErr
}

// assignedPartition returns the partition of the assigned split, for
// tests and debug logging.
func (r *SplitReader[T]) assignedPartition() (topicpartition.TopicPartition, bool) {
	if r.split == nil {
		return topicpartition.TopicPartition{}, false
	}

	return r.split.Partition, true
}
