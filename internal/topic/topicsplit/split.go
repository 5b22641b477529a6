package topicsplit

import (
	"context"

	"github.com/suxinglee/pulsar-source/internal/topic/topicadmin"
	"github.com/suxinglee/pulsar-source/internal/topic/topiccursor"
	"github.com/suxinglee/pulsar-source/internal/topic/topicpartition"
	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// PartitionSplit is the unit of partition assignment: one partition plus
// its start and stop cursors. Created by the enumerator, owned by exactly
// one split reader, never mutated after assignment.
type PartitionSplit struct {
	Partition topicpartition.TopicPartition
	Start     topiccursor.StartCursor
	Stop      topiccursor.StopCursor

	startPosition topicposition.MessageID
	opened        bool
}

func NewPartitionSplit(
	partition topicpartition.TopicPartition,
	start topiccursor.StartCursor,
	stop topiccursor.StopCursor,
) *PartitionSplit {
	if stop == nil {
		stop = topiccursor.StopNever()
	}

	return &PartitionSplit{
		Partition: partition,
		Start:     start,
		Stop:      stop,
	}
}

// SplitID identifies the split. One partition maps to at most one split,
// the full per-partition topic name is unique and stable.
func (s *PartitionSplit) SplitID() string {
	return s.Partition.FullTopicName()
}

// Open resolves both cursors against partition metadata. Called once,
// during split assignment, before the consumer subscribes.
func (s *PartitionSplit) Open(ctx context.Context, admin topicadmin.Client) error {
	startPosition, err := s.Start.Open(ctx, admin, s.Partition)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	if err = topiccursor.OpenStopCursor(ctx, admin, s.Partition, s.Stop); err != nil {
		return xerrors.WithStackTrace(err)
	}

	s.startPosition = startPosition
	s.opened = true

	return nil
}

// StartPosition returns the resolved subscribe position. Valid only after
// Open.
func (s *PartitionSplit) StartPosition() topicposition.MessageID {
	return s.startPosition
}

func (s *PartitionSplit) IsOpened() bool {
	return s.opened
}

func (s *PartitionSplit) String() string {
	return "split(" + s.SplitID() + ")"
}
