package topicreader

// RecordsBySplits is the result of one fetch cycle: deserialized records
// grouped by split in arrival order, plus the set of splits whose stop
// condition fired during the cycle.
//
// An empty result is a normal outcome, indistinguishable from a partial
// one: it only means nothing was available within the cycle's budget.
type RecordsBySplits[T any] struct {
	recordsBySplit map[string][]T
	splitsOrder    []string
	finished       map[string]struct{}
}

func newRecordsBySplits[T any]() *RecordsBySplits[T] {
	return &RecordsBySplits[T]{
		recordsBySplit: make(map[string][]T),
		finished:       make(map[string]struct{}),
	}
}

func (r *RecordsBySplits[T]) add(splitID string, record T) {
	if _, ok := r.recordsBySplit[splitID]; !ok {
		r.splitsOrder = append(r.splitsOrder, splitID)
	}
	r.recordsBySplit[splitID] = append(r.recordsBySplit[splitID], record)
}

// collector returns an emit callback bound to one split, for passing
// into a deserialization schema.
func (r *RecordsBySplits[T]) collector(splitID string) func(T) {
	return func(record T) {
		r.add(splitID, record)
	}
}

func (r *RecordsBySplits[T]) markFinished(splitID string) {
	r.finished[splitID] = struct{}{}
}

// Records returns the records of one split in arrival order.
func (r *RecordsBySplits[T]) Records(splitID string) []T {
	return r.recordsBySplit[splitID]
}

// SplitIDs returns ids of splits which produced records, in the order of
// their first record.
func (r *RecordsBySplits[T]) SplitIDs() []string {
	return r.splitsOrder
}

// FinishedSplitIDs returns ids of splits whose stop condition fired.
func (r *RecordsBySplits[T]) FinishedSplitIDs() []string {
	if len(r.finished) == 0 {
		return nil
	}

	res := make([]string, 0, len(r.finished))
	for splitID := range r.finished {
		res = append(res, splitID)
	}

	return res
}

func (r *RecordsBySplits[T]) IsSplitFinished(splitID string) bool {
	_, ok := r.finished[splitID]

	return ok
}

func (r *RecordsBySplits[T]) Len() int {
	sum := 0
	for _, records := range r.recordsBySplit {
		sum += len(records)
	}

	return sum
}

func (r *RecordsBySplits[T]) IsEmpty() bool {
	return r.Len() == 0 && len(r.finished) == 0
}
