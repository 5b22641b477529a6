package topiccursor

import (
	"context"
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// StartAtEventTime subscribes from the first entry with event time at or
// after t. The position is resolved against partition metadata at open.
func StartAtEventTime(t time.Time) StartCursor {
	return eventTimeStartCursor{eventTime: t}
}

type eventTimeStartCursor struct {
	eventTime time.Time
}

func (c eventTimeStartCursor) Open(
	ctx context.Context,
	admin topicadmin.Client,
	partition topicpartition.TopicPartition,
) (topicposition.MessageID, error) {
	position, err := admin.FindPositionByEventTime(ctx, partition, c.eventTime)
	if err != nil {
		return topicposition.MessageID{}, xerrors.WithStackTrace(err)
	}

	return position, nil
}
