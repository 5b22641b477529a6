package topiccursor

import (
	"context"
	"errors"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// ErrUnsupportedPositionKind is returned for batched message ids used as
// a start position. The next-entry arithmetic is undefined for entries
// inside a batch.
var ErrUnsupportedPositionKind = xerrors.Wrap(
	errors.New("pulsarsource: batched message id is not supported as start position"),
)

// StartCursor resolves the position a partition subscription starts from.
type StartCursor interface {
	// Open resolves the effective subscribe position for the partition.
	// Called exactly once, during split assignment.
	Open(
		ctx context.Context,
		admin topicadmin.Client,
		partition topicpartition.TopicPartition,
	) (topicposition.MessageID, error)
}

// StartEarliest subscribes from the first available entry.
func StartEarliest() StartCursor {
	return sentinelStartCursor{position: topicposition.Earliest}
}

// StartLatest subscribes from the next entry written after the
// subscription is created.
func StartLatest() StartCursor {
	return sentinelStartCursor{position: topicposition.Latest}
}

type sentinelStartCursor struct {
	position topicposition.MessageID
}

func (c sentinelStartCursor) Open(
	_ context.Context,
	_ topicadmin.Client,
	_ topicpartition.TopicPartition,
) (topicposition.MessageID, error) {
	return c.position, nil
}
