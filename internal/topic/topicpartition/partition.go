package topicpartition

import (
	"fmt"
)

const (
	// RangeMin and RangeMax bound the key hash space of a partition.
	// Keys are hashed into [RangeMin, RangeMax] and a key-shared
	// subscription receives only the keys of its sub-range.
	RangeMin = 0
	RangeMax = 65535
)

// TopicRange is an inclusive range of key hashes inside one partition.
type TopicRange struct {
	Start int
	End   int
}

func FullRange() TopicRange {
	return TopicRange{Start: RangeMin, End: RangeMax}
}

func (r TopicRange) IsFull() bool {
	return r.Start == RangeMin && r.End == RangeMax
}

func (r TopicRange) Validate() error {
	if r.Start < RangeMin || r.End > RangeMax || r.Start > r.End {
		return fmt.Errorf("pulsarsource: invalid key hash range [%d, %d]", r.Start, r.End)
	}

	return nil
}

func (r TopicRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// TopicPartition identifies one partition of a topic plus the key hash
// sub-range consumed from it.
type TopicPartition struct {
	Topic       string
	PartitionID int32
	Range       TopicRange
}

func New(topic string, partitionID int32) TopicPartition {
	return TopicPartition{
		Topic:       topic,
		PartitionID: partitionID,
		Range:       FullRange(),
	}
}

func NewWithRange(topic string, partitionID int32, keyRange TopicRange) TopicPartition {
	return TopicPartition{
		Topic:       topic,
		PartitionID: partitionID,
		Range:       keyRange,
	}
}

// FullTopicName returns the per-partition topic name used by consumer
// subscriptions, "<topic>-partition-<id>". Non-partitioned topics
// (PartitionID < 0) keep the plain name.
func (p TopicPartition) FullTopicName() string {
	if p.PartitionID < 0 {
		return p.Topic
	}

	return fmt.Sprintf("%s-partition-%d", p.Topic, p.PartitionID)
}

func (p TopicPartition) String() string {
	if p.Range.IsFull() {
		return p.FullTopicName()
	}

	return p.FullTopicName() + "|" + p.Range.String()
}
