package topiccursor

import (
	"context"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// StopAtMessageID finishes the split on the message with the given id:
// it is delivered and becomes the last consumed message.
func StopAtMessageID(id topicposition.MessageID) StopCursor {
	return messageIDStopCursor{id: id, inclusive: true}
}

// StopAfterMessageID consumes through the given id and finishes the split
// on the first message past it.
func StopAfterMessageID(id topicposition.MessageID) StopCursor {
	return messageIDStopCursor{id: id, inclusive: false}
}

type messageIDStopCursor struct {
	id        topicposition.MessageID
	inclusive bool
}

func (c messageIDStopCursor) ShouldStop(msg *topicsub.Message) bool {
	if c.inclusive {
		return msg.ID.Compare(c.id) >= 0
	}

	return msg.ID.Compare(c.id) > 0
}

// StopAtLatest finishes the split once it reaches the last entry present
// in the partition at the moment of split assignment. The border id is
// resolved against partition metadata at open.
func StopAtLatest() StopCursor {
	return &latestStopCursor{}
}

type latestStopCursor struct {
	lastID topicposition.MessageID
}

func (c *latestStopCursor) Open(
	ctx context.Context,
	admin topicadmin.Client,
	partition topicpartition.TopicPartition,
) error {
	lastID, err := admin.LastMessageID(ctx, partition)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	c.lastID = lastID

	return nil
}

func (c *latestStopCursor) ShouldStop(msg *topicsub.Message) bool {
	return msg.ID.Compare(c.lastID) >= 0
}
