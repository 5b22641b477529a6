package pulsarsource

import (
	"context"
	"time"

	"github.com/suxinglee/pulsar-source/internal/credentials"
	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topiccursor"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicreader"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsplit"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

// MessageID is a position inside one partition's ledger sequence.
type MessageID = topicposition.MessageID

// Message is one received message with its metadata.
type Message = topicsub.Message

// TopicPartition names one partition of one topic.
type TopicPartition = topicpartition.TopicPartition

// TopicRange is a key hash range for KeyShared subscriptions.
type TopicRange = topicpartition.TopicRange

// PartitionSplit is the unit of partition assignment.
type PartitionSplit = topicsplit.PartitionSplit

// Client creates consumers, implemented by the broker client.
type Client = topicsub.Client

// Consumer is one open subscription handle.
type Consumer = topicsub.Consumer

// AdminClient resolves partition metadata for cursors.
type AdminClient = topicadmin.Client

// SubscribeOptions parametrize one Client.Subscribe call.
type SubscribeOptions = topicsub.SubscribeOptions

// SubscriptionType defines the broker dispatch discipline.
type SubscriptionType = topicsub.SubscriptionType

const (
	SubscriptionTypeExclusive = topicsub.SubscriptionTypeExclusive
	SubscriptionTypeFailover  = topicsub.SubscriptionTypeFailover
	SubscriptionTypeShared    = topicsub.SubscriptionTypeShared
	SubscriptionTypeKeyShared = topicsub.SubscriptionTypeKeyShared
)

// Credentials supply a per-request auth token.
type Credentials = credentials.Credentials

// StartCursor resolves the position a split starts consuming from.
type StartCursor = topiccursor.StartCursor

// StopCursor decides when a split's consumption ends.
type StopCursor = topiccursor.StopCursor

// SplitsChange is a split assignment event for a reader.
type SplitsChange = topicreader.SplitsChange

// SplitsAddition assigns splits to a reader.
type SplitsAddition = topicreader.SplitsAddition

// SplitsRemoval is rejected by readers, splits are never taken back.
type SplitsRemoval = topicreader.SplitsRemoval

var (
	// Earliest is the sentinel position before all messages.
	Earliest = topicposition.Earliest

	// Latest is the sentinel position after all messages.
	Latest = topicposition.Latest
)

// NewMessageID creates a position for a non-batched entry.
func NewMessageID(ledgerID, entryID int64, partitionIndex int32) MessageID {
	return topicposition.New(ledgerID, entryID, partitionIndex)
}

// NewTopicPartition names a partition with the full key hash range.
func NewTopicPartition(topic string, partitionID int32) TopicPartition {
	return topicpartition.New(topic, partitionID)
}

// NewPartitionSplit builds a split from a partition and its cursors. A
// nil stop means consume forever.
func NewPartitionSplit(partition TopicPartition, start StartCursor, stop StopCursor) *PartitionSplit {
	return topicsplit.NewPartitionSplit(partition, start, stop)
}

// StartEarliest consumes from the first available message.
func StartEarliest() StartCursor { return topiccursor.StartEarliest() }

// StartLatest consumes messages published after subscribe.
func StartLatest() StartCursor { return topiccursor.StartLatest() }

// StartAtMessageID consumes from id, inclusive or exclusive.
func StartAtMessageID(id MessageID, inclusive bool) (StartCursor, error) {
	return topiccursor.NewMessageIDStartCursor(id, inclusive)
}

// StartAtEventTime consumes from the first message with event time at or
// after t.
func StartAtEventTime(t time.Time) StartCursor { return topiccursor.StartAtEventTime(t) }

// StopNever consumes the partition forever.
func StopNever() StopCursor { return topiccursor.StopNever() }

// StopAtMessageID stops after consuming id.
func StopAtMessageID(id MessageID) StopCursor { return topiccursor.StopAtMessageID(id) }

// StopAfterMessageID stops on the first message past id.
func StopAfterMessageID(id MessageID) StopCursor { return topiccursor.StopAfterMessageID(id) }

// StopAtLatest stops after the message that was last at subscribe time.
func StopAtLatest() StopCursor { return topiccursor.StopAtLatest() }

// StopAtEventTime stops on the first message with event time at or after t.
func StopAtEventTime(t time.Time) StopCursor { return topiccursor.StopAtEventTime(t) }

// StopAfterEventTime stops on the first message with event time after t.
func StopAfterEventTime(t time.Time) StopCursor { return topiccursor.StopAfterEventTime(t) }

// StopAtPublishTime stops on the first message published at or after t.
func StopAtPublishTime(t time.Time) StopCursor { return topiccursor.StopAtPublishTime(t) }

// NewAnonymousCredentials makes credentials without authentication.
func NewAnonymousCredentials() Credentials {
	return credentials.NewAnonymousCredentials()
}

// NewAccessTokenCredentials makes credentials with a fixed token.
func NewAccessTokenCredentials(token string) Credentials {
	return credentials.NewAccessTokenCredentials(token)
}

// NewTokenSupplierCredentials makes credentials which fetch and cache
// tokens through supply.
func NewTokenSupplierCredentials(supply func(ctx context.Context) (string, error)) Credentials {
	return credentials.NewTokenSupplierCredentials(supply)
}
