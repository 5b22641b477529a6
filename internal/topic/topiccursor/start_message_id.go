package topiccursor

import (
	"context"
	"fmt"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// MessageIDStartCursor starts consumption from a concrete message id.
//
// The effective position is resolved once, in the constructor, and the
// cursor is comparable by it: two cursors resolving to the same position
// are equal and hash to the same map key.
type MessageIDStartCursor struct {
	position topicposition.MessageID
}

// NewMessageIDStartCursor resolves the effective start position.
//
// The broker's inclusive-start control on subscribe is not reliable, so an
// exclusive start is emulated by requesting the next entry after id. The
// next entry id may not exist (end of ledger): the broker skips invalid
// entry ids forward to the first valid one, which makes overshooting by
// one synthetic position safe. Keep this rewrite semantic as is, a
// seek-and-fail approach breaks consumption at ledger borders.
func NewMessageIDStartCursor(id topicposition.MessageID, inclusive bool) (MessageIDStartCursor, error) {
	if id.IsBatched() {
		return MessageIDStartCursor{}, xerrors.WithStackTrace(
			fmt.Errorf("%w: %s", ErrUnsupportedPositionKind, id),
		)
	}

	if id.IsSentinel() || inclusive {
		return MessageIDStartCursor{position: id}, nil
	}

	return MessageIDStartCursor{position: nextEntry(id)}, nil
}

// nextEntry computes the id directly after a single-entry id. A negative
// entry id marks a ledger border, the first entry of the ledger is next.
func nextEntry(id topicposition.MessageID) topicposition.MessageID {
	if id.EntryID < 0 {
		return topicposition.New(id.LedgerID, 0, id.PartitionIndex)
	}

	return topicposition.New(id.LedgerID, id.EntryID+1, id.PartitionIndex)
}

// Position returns the resolved effective position.
func (c MessageIDStartCursor) Position() topicposition.MessageID {
	return c.position
}

// Open implements StartCursor. The position is pre-resolved, partition
// metadata is not needed.
func (c MessageIDStartCursor) Open(
	_ context.Context,
	_ topicadmin.Client,
	_ topicpartition.TopicPartition,
) (topicposition.MessageID, error) {
	return c.position, nil
}

func (c MessageIDStartCursor) String() string {
	return "start-at(" + c.position.String() + ")"
}
