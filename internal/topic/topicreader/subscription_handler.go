package topicreader

import (
	"context"
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicsplit"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// subscriptionHandler is the part of the fetch cycle which differs
// between subscription disciplines. Selected once, at assign time, the
// cycle calls through it uniformly.
type subscriptionHandler interface {
	// startConsumer positions the fresh consumer on the split's resolved
	// start position.
	startConsumer(ctx context.Context, split *topicsplit.PartitionSplit, consumer topicsub.Consumer) error

	// pollMessage receives the next message or nothing within timeout.
	pollMessage(ctx context.Context, consumer topicsub.Consumer, timeout time.Duration) (*topicsub.Message, error)

	// finishedPollMessage completes one message according to the
	// subscription discipline.
	finishedPollMessage(ctx context.Context, consumer topicsub.Consumer, msg *topicsub.Message) error
}

func newSubscriptionHandler(subscriptionType topicsub.SubscriptionType) subscriptionHandler {
	if subscriptionType.Ordered() {
		return orderedSubscriptionHandler{}
	}

	return sharedSubscriptionHandler{}
}

// orderedSubscriptionHandler serves Exclusive and Failover subscriptions.
// The consume position is owned by the reader: the consumer is seeked to
// the resolved start position and messages are not acknowledged one by
// one, the position is persisted by the host's checkpoints.
type orderedSubscriptionHandler struct{}

func (orderedSubscriptionHandler) startConsumer(
	ctx context.Context,
	split *topicsplit.PartitionSplit,
	consumer topicsub.Consumer,
) error {
	if err := consumer.Seek(ctx, split.StartPosition()); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

func (orderedSubscriptionHandler) pollMessage(
	ctx context.Context,
	consumer topicsub.Consumer,
	timeout time.Duration,
) (*topicsub.Message, error) {
	return consumer.Receive(ctx, timeout)
}

func (orderedSubscriptionHandler) finishedPollMessage(
	_ context.Context,
	_ topicsub.Consumer,
	_ *topicsub.Message,
) error {
	return nil
}

// sharedSubscriptionHandler serves Shared and KeyShared subscriptions.
// The consume position is owned by the broker subscription, every
// delivered message is acknowledged immediately.
type sharedSubscriptionHandler struct{}

func (sharedSubscriptionHandler) startConsumer(
	_ context.Context,
	_ *topicsplit.PartitionSplit,
	_ topicsub.Consumer,
) error {
	// the subscription cursor governs the position, nothing to seek
	return nil
}

func (sharedSubscriptionHandler) pollMessage(
	ctx context.Context,
	consumer topicsub.Consumer,
	timeout time.Duration,
) (*topicsub.Message, error) {
	return consumer.Receive(ctx, timeout)
}

func (sharedSubscriptionHandler) finishedPollMessage(
	ctx context.Context,
	consumer topicsub.Consumer,
	msg *topicsub.Message,
) error {
	if err := consumer.Ack(ctx, msg); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
