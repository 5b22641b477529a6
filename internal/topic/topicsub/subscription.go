package topicsub

import (
	"errors"
	"fmt"

	"github.com/suxinglee/pulsar-source/internal/credentials"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

var errUnknownSubscriptionType = xerrors.Wrap(errors.New("pulsarsource: unknown subscription type"))

// SubscriptionType defines how the broker dispatches a partition's
// messages between the subscription's consumers.
type SubscriptionType int

const (
	// SubscriptionTypeExclusive allows exactly one consumer, messages are
	// delivered in order and the position is managed with Seek.
	SubscriptionTypeExclusive SubscriptionType = iota

	// SubscriptionTypeFailover allows several consumers, one active at a time.
	SubscriptionTypeFailover

	// SubscriptionTypeShared dispatches round-robin, every message must be
	// acknowledged individually.
	SubscriptionTypeShared

	// SubscriptionTypeKeyShared dispatches by key hash, every consumer owns
	// a sub-range of the key hash space.
	SubscriptionTypeKeyShared
)

func (t SubscriptionType) String() string {
	switch t {
	case SubscriptionTypeExclusive:
		return "Exclusive"
	case SubscriptionTypeFailover:
		return "Failover"
	case SubscriptionTypeShared:
		return "Shared"
	case SubscriptionTypeKeyShared:
		return "Key_Shared"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

func (t SubscriptionType) Validate() error {
	switch t {
	case SubscriptionTypeExclusive, SubscriptionTypeFailover, SubscriptionTypeShared, SubscriptionTypeKeyShared:
		return nil
	default:
		return xerrors.WithStackTrace(fmt.Errorf("%w: %d", errUnknownSubscriptionType, int(t)))
	}
}

// Ordered reports whether the subscription keeps per-partition order and
// leaves the consume position to the reader (Seek) instead of per-message
// acknowledgement.
func (t SubscriptionType) Ordered() bool {
	return t == SubscriptionTypeExclusive || t == SubscriptionTypeFailover
}

// SubscribeOptions is everything needed to open one consumer on one
// partition.
type SubscribeOptions struct {
	Partition        topicpartition.TopicPartition
	SubscriptionName string
	SubscriptionType SubscriptionType
	ConsumerName     string

	// StartPosition is the already resolved position, never a raw user cursor.
	StartPosition topicposition.MessageID

	// KeyHashRange is set only for SubscriptionTypeKeyShared.
	KeyHashRange *topicpartition.TopicRange

	Credentials credentials.Credentials

	ReceiverQueueSize int
}
