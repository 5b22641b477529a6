package topiccursor

import (
	"context"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

// StopCursor decides, per received message, whether the split's
// consumption should end. Evaluated after the message is deserialized and
// collected: the message that triggers the stop is the last one delivered.
type StopCursor interface {
	ShouldStop(msg *topicsub.Message) bool
}

// StopCursorOpener is implemented by stop cursors which need partition
// metadata. Open is called once, during split assignment.
type StopCursorOpener interface {
	StopCursor

	Open(ctx context.Context, admin topicadmin.Client, partition topicpartition.TopicPartition) error
}

// OpenStopCursor resolves the cursor against partition metadata when it
// asks for it.
func OpenStopCursor(
	ctx context.Context,
	admin topicadmin.Client,
	partition topicpartition.TopicPartition,
	cursor StopCursor,
) error {
	if opener, ok := cursor.(StopCursorOpener); ok {
		return opener.Open(ctx, admin, partition)
	}

	return nil
}

// StopNever consumes the partition forever.
func StopNever() StopCursor {
	return neverStopCursor{}
}

type neverStopCursor struct{}

func (neverStopCursor) ShouldStop(_ *topicsub.Message) bool {
	return false
}
