package topicposition

import (
	"fmt"
	"math"
)

// MessageID is an address of a single entry inside one partition log.
// The log is a sequence of ledgers, every entry is addressed by the pair
// (ledger id, entry id). Entries written as a batch share the pair and
// are distinguished by BatchIndex.
type MessageID struct {
	LedgerID       int64
	EntryID        int64
	BatchIndex     int32
	PartitionIndex int32
}

// Sentinel positions. They are markers, not addresses: no arithmetic is
// defined on them and they must never be incremented.
var (
	Earliest = MessageID{LedgerID: -1, EntryID: -1, BatchIndex: -1, PartitionIndex: -1}
	Latest   = MessageID{LedgerID: math.MaxInt64, EntryID: math.MaxInt64, BatchIndex: -1, PartitionIndex: -1}
)

// New creates an id of a single (non-batched) entry.
func New(ledgerID, entryID int64, partitionIndex int32) MessageID {
	return MessageID{
		LedgerID:       ledgerID,
		EntryID:        entryID,
		BatchIndex:     -1,
		PartitionIndex: partitionIndex,
	}
}

// NewBatch creates an id of one entry inside a batched write.
func NewBatch(ledgerID, entryID int64, partitionIndex, batchIndex int32) MessageID {
	return MessageID{
		LedgerID:       ledgerID,
		EntryID:        entryID,
		BatchIndex:     batchIndex,
		PartitionIndex: partitionIndex,
	}
}

// IsBatched reports whether the id addresses an entry inside a batched write.
func (id MessageID) IsBatched() bool {
	return id.BatchIndex >= 0
}

func (id MessageID) IsEarliest() bool {
	return id.LedgerID == Earliest.LedgerID && id.EntryID == Earliest.EntryID
}

func (id MessageID) IsLatest() bool {
	return id.LedgerID == Latest.LedgerID && id.EntryID == Latest.EntryID
}

func (id MessageID) IsSentinel() bool {
	return id.IsEarliest() || id.IsLatest()
}

// Compare orders ids within one partition log.
func (id MessageID) Compare(other MessageID) int {
	if res := compareInt64(id.LedgerID, other.LedgerID); res != 0 {
		return res
	}
	if res := compareInt64(id.EntryID, other.EntryID); res != 0 {
		return res
	}

	return compareInt64(int64(id.BatchIndex), int64(other.BatchIndex))
}

func (id MessageID) String() string {
	if id.IsEarliest() {
		return "earliest"
	}
	if id.IsLatest() {
		return "latest"
	}
	if id.IsBatched() {
		return fmt.Sprintf("%d:%d:%d:%d", id.LedgerID, id.EntryID, id.PartitionIndex, id.BatchIndex)
	}

	return fmt.Sprintf("%d:%d:%d", id.LedgerID, id.EntryID, id.PartitionIndex)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
