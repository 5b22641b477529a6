package topicadmin

import (
	"context"
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
)

// Client is the partition metadata collaborator. Cursors use it to turn
// symbolic positions (latest, event time) into concrete message ids
// before a consumer subscribes.
type Client interface {
	// LastMessageID returns the id of the last entry written to the partition.
	LastMessageID(ctx context.Context, partition topicpartition.TopicPartition) (topicposition.MessageID, error)

	// FindPositionByEventTime returns the id of the first entry with event
	// time at or after t.
	FindPositionByEventTime(
		ctx context.Context,
		partition topicpartition.TopicPartition,
		t time.Time,
	) (topicposition.MessageID, error)
}
