package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suxinglee/pulsar-source/trace"
)

func TestSourceLogsLifecycle(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	s := Source(zap.New(core))

	done := s.OnReaderSplitAssign(trace.SourceReaderSplitAssignStartInfo{
		ReaderID: 1,
		SplitID:  "topic-partition-0",
	})
	done(trace.SourceReaderSplitAssignDoneInfo{StartPosition: "earliest"})

	fetchDone := s.OnReaderFetch(trace.SourceReaderFetchStartInfo{ReaderID: 1, SplitID: "topic-partition-0"})
	fetchDone(trace.SourceReaderFetchDoneInfo{RecordsCount: 5})

	s.OnReaderWakeUp(trace.SourceReaderWakeUpInfo{ReaderID: 1})

	closeDone := s.OnReaderClose(trace.SourceReaderCloseStartInfo{ReaderID: 1})
	closeDone(trace.SourceReaderCloseDoneInfo{})

	messages := make([]string, 0, observed.Len())
	for _, entry := range observed.All() {
		messages = append(messages, entry.Message)
	}
	require.Equal(t, []string{
		"split assign starting...",
		"split assign done",
		"fetch done",
		"wakeup requested",
		"reader closed",
	}, messages)
}

func TestSourceLogsErrorsAsWarnings(t *testing.T) {
	core, observed := observer.New(zap.WarnLevel)
	s := Source(zap.New(core))

	fetchDone := s.OnReaderFetch(trace.SourceReaderFetchStartInfo{ReaderID: 1, SplitID: "topic-partition-0"})
	fetchDone(trace.SourceReaderFetchDoneInfo{Error: errors.New("broker unavailable")})

	require.Equal(t, 1, observed.Len())
	require.Equal(t, "fetch failed", observed.All()[0].Message)
	require.Equal(t, zap.WarnLevel, observed.All()[0].Level)
}
