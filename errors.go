package pulsarsource

import (
	"github.com/suxinglee/pulsar-source/internal/topic/topiccursor"
	"github.com/suxinglee/pulsar-source/internal/topic/topicreader"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

var (
	// ErrReaderAlreadyAssigned is returned by HandleSplitsChanges when the
	// reader already owns a split.
	ErrReaderAlreadyAssigned = topicreader.ErrReaderAlreadyAssigned

	// ErrUnsupportedSplitsChange is returned for assignment events other
	// than addition.
	ErrUnsupportedSplitsChange = topicreader.ErrUnsupportedSplitsChange

	// ErrUnsupportedSplitBatch is returned when an addition carries more or
	// less than exactly one split.
	ErrUnsupportedSplitBatch = topicreader.ErrUnsupportedSplitBatch

	// ErrPollFailure marks broker-side failures of the poll step.
	ErrPollFailure = topicreader.ErrPollFailure

	// ErrPollTimeout is the Consumer.Receive outcome for an empty wait. It
	// never escapes Fetch, broker client implementations return it.
	ErrPollTimeout = topicsub.ErrPollTimeout

	// ErrUnsupportedPositionKind is returned by StartAtMessageID for
	// positions a cursor cannot be built from, batched ids among them.
	ErrUnsupportedPositionKind = topiccursor.ErrUnsupportedPositionKind
)
