// Package pulsarsource reads Pulsar partitions as assignable splits.
//
// A Reader owns at most one PartitionSplit for its whole lifetime and
// consumes it in bounded fetch cycles. Splits are built from a partition
// plus a start and a stop cursor, assigned with HandleSplitsChanges and
// drained with Fetch. WakeUp unblocks a concurrent Fetch early.
package pulsarsource

import (
	"context"

	"github.com/suxinglee/pulsar-source/internal/topic/topicreader"
)

// Reader consumes one assigned partition split.
//
// Fetch and HandleSplitsChanges must be called from one goroutine.
// WakeUp is safe for concurrent use.
type Reader[T any] struct {
	reader *topicreader.SplitReader[T]
}

// NewReader creates an unassigned reader for one subscription.
func NewReader[T any](
	client Client,
	admin AdminClient,
	subscriptionName string,
	schema Schema[T],
	opts ...Option,
) (*Reader[T], error) {
	cfg := topicreader.NewConfig()
	cfg.SubscriptionName = subscriptionName
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	reader, err := topicreader.NewSplitReader[T](client, admin, schema, cfg)
	if err != nil {
		return nil, err
	}

	return &Reader[T]{reader: reader}, nil
}

// HandleSplitsChanges assigns a split to the reader. Only a single-split
// SplitsAddition is accepted, and only once per reader lifetime.
func (r *Reader[T]) HandleSplitsChanges(ctx context.Context, change SplitsChange) error {
	return r.reader.HandleSplitsChanges(ctx, change)
}

// Assigned reports whether the reader owns a split.
func (r *Reader[T]) Assigned() bool {
	return r.reader.Assigned()
}

// Fetch runs one bounded fetch cycle. An empty or partial result is a
// normal outcome.
func (r *Reader[T]) Fetch(ctx context.Context) (*Records[T], error) {
	res, err := r.reader.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return &Records[T]{res: res}, nil
}

// WakeUp requests cooperative cancellation of the current or next fetch
// cycle.
func (r *Reader[T]) WakeUp() {
	r.reader.WakeUp()
}

// Close releases the reader's consumer. Idempotent.
func (r *Reader[T]) Close(ctx context.Context) error {
	return r.reader.Close(ctx)
}

// Records is the result of one fetch cycle: records grouped by split plus
// the set of splits whose stop condition fired.
type Records[T any] struct {
	res *topicreader.RecordsBySplits[T]
}

// Records returns the records of one split in arrival order.
func (r *Records[T]) Records(splitID string) []T {
	return r.res.Records(splitID)
}

// SplitIDs returns ids of splits which produced records.
func (r *Records[T]) SplitIDs() []string {
	return r.res.SplitIDs()
}

// FinishedSplitIDs returns ids of splits whose stop condition fired.
func (r *Records[T]) FinishedSplitIDs() []string {
	return r.res.FinishedSplitIDs()
}

// IsSplitFinished reports whether the split's stop condition fired.
func (r *Records[T]) IsSplitFinished(splitID string) bool {
	return r.res.IsSplitFinished(splitID)
}

// Len returns the total record count.
func (r *Records[T]) Len() int {
	return r.res.Len()
}

// IsEmpty reports whether the cycle produced neither records nor
// finished splits.
func (r *Records[T]) IsEmpty() bool {
	return r.res.IsEmpty()
}
