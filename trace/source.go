// Package trace contains callback interfaces for connector instrumentation.
// All callbacks are optional, nil fields are skipped.
package trace

// Source hooks the split reader lifecycle.
type Source struct {
	OnReaderSplitAssign func(SourceReaderSplitAssignStartInfo) func(SourceReaderSplitAssignDoneInfo)
	OnReaderFetch       func(SourceReaderFetchStartInfo) func(SourceReaderFetchDoneInfo)
	OnReaderWakeUp      func(SourceReaderWakeUpInfo)
	OnReaderClose       func(SourceReaderCloseStartInfo) func(SourceReaderCloseDoneInfo)
}

type SourceReaderSplitAssignStartInfo struct {
	ReaderID int64
	SplitID  string
}

type SourceReaderSplitAssignDoneInfo struct {
	StartPosition string
	Error         error
}

type SourceReaderFetchStartInfo struct {
	ReaderID int64
	SplitID  string
}

type SourceReaderFetchDoneInfo struct {
	RecordsCount  int
	SplitFinished bool
	Error         error
}

type SourceReaderWakeUpInfo struct {
	ReaderID int64
}

type SourceReaderCloseStartInfo struct {
	ReaderID int64
}

type SourceReaderCloseDoneInfo struct {
	Error error
}

// Compose returns a Source which calls t and then x for every callback.
func (t *Source) Compose(x *Source) *Source {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}

	ret := &Source{}
	ret.OnReaderSplitAssign = composeStartDone(t.OnReaderSplitAssign, x.OnReaderSplitAssign)
	ret.OnReaderFetch = composeStartDone(t.OnReaderFetch, x.OnReaderFetch)
	ret.OnReaderClose = composeStartDone(t.OnReaderClose, x.OnReaderClose)

	switch {
	case t.OnReaderWakeUp == nil:
		ret.OnReaderWakeUp = x.OnReaderWakeUp
	case x.OnReaderWakeUp == nil:
		ret.OnReaderWakeUp = t.OnReaderWakeUp
	default:
		h1, h2 := t.OnReaderWakeUp, x.OnReaderWakeUp
		ret.OnReaderWakeUp = func(info SourceReaderWakeUpInfo) {
			h1(info)
			h2(info)
		}
	}

	return ret
}

func composeStartDone[Start, Done any](
	h1, h2 func(Start) func(Done),
) func(Start) func(Done) {
	switch {
	case h1 == nil:
		return h2
	case h2 == nil:
		return h1
	default:
		return func(info Start) func(Done) {
			d1 := h1(info)
			d2 := h2(info)

			return func(done Done) {
				if d1 != nil {
					d1(done)
				}
				if d2 != nil {
					d2(done)
				}
			}
		}
	}
}
