package topicreader

import (
	"github.com/suxinglee/pulsar-source/internal/topic/topicsplit"
)

// SplitsChange is a partition assignment event from the enumerator.
type SplitsChange interface {
	isSplitsChange()
}

// SplitsAddition assigns new splits to a reader. A split reader accepts
// exactly one split per assignment and one assignment per lifetime.
type SplitsAddition struct {
	Splits []*topicsplit.PartitionSplit
}

func (*SplitsAddition) isSplitsChange() {}

// SplitsRemoval revokes splits. Revocation is handled by tearing the
// reader down, not by an in-place state change, so the split reader
// rejects it.
type SplitsRemoval struct {
	Splits []*topicsplit.PartitionSplit
}

func (*SplitsRemoval) isSplitsChange() {}
