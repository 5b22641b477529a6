package trace

func SourceOnReaderSplitAssign(t *Source, readerID int64, splitID string) func(startPosition string, _ error) {
	if t == nil || t.OnReaderSplitAssign == nil {
		return func(string, error) {}
	}
	done := t.OnReaderSplitAssign(SourceReaderSplitAssignStartInfo{
		ReaderID: readerID,
		SplitID:  splitID,
	})
	if done == nil {
		return func(string, error) {}
	}

	return func(startPosition string, e error) {
		done(SourceReaderSplitAssignDoneInfo{
			StartPosition: startPosition,
			Error:         e,
		})
	}
}

func SourceOnReaderFetch(t *Source, readerID int64, splitID string) func(recordsCount int, splitFinished bool, _ error) {
	if t == nil || t.OnReaderFetch == nil {
		return func(int, bool, error) {}
	}
	done := t.OnReaderFetch(SourceReaderFetchStartInfo{
		ReaderID: readerID,
		SplitID:  splitID,
	})
	if done == nil {
		return func(int, bool, error) {}
	}

	return func(recordsCount int, splitFinished bool, e error) {
		done(SourceReaderFetchDoneInfo{
			RecordsCount:  recordsCount,
			SplitFinished: splitFinished,
			Error:         e,
		})
	}
}

func SourceOnReaderWakeUp(t *Source, readerID int64) {
	if t == nil || t.OnReaderWakeUp == nil {
		return
	}
	t.OnReaderWakeUp(SourceReaderWakeUpInfo{ReaderID: readerID})
}

func SourceOnReaderClose(t *Source, readerID int64) func(error) {
	if t == nil || t.OnReaderClose == nil {
		return func(error) {}
	}
	done := t.OnReaderClose(SourceReaderCloseStartInfo{ReaderID: readerID})
	if done == nil {
		return func(error) {}
	}

	return func(e error) {
		done(SourceReaderCloseDoneInfo{Error: e})
	}
}
