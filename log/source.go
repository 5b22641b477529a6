// Package log adapts source trace callbacks to a zap logger.
package log

import (
	"time"

	"go.uber.org/zap"

	"github.com/suxinglee/pulsar-source/trace"
)

// Source returns a trace.Source which logs every reader lifecycle event
// through l.
func Source(l *zap.Logger) *trace.Source {
	l = l.Named("source")

	t := &trace.Source{}

	t.OnReaderSplitAssign = func(
		info trace.SourceReaderSplitAssignStartInfo,
	) func(trace.SourceReaderSplitAssignDoneInfo) {
		start := time.Now()
		l.Debug("split assign starting...",
			zap.Int64("reader_id", info.ReaderID),
			zap.String("split_id", info.SplitID),
		)

		return func(doneInfo trace.SourceReaderSplitAssignDoneInfo) {
			fields := []zap.Field{
				zap.Int64("reader_id", info.ReaderID),
				zap.String("split_id", info.SplitID),
				zap.String("start_position", doneInfo.StartPosition),
				zap.Duration("latency", time.Since(start)),
			}
			if doneInfo.Error != nil {
				l.Warn("split assign failed", append(fields, zap.Error(doneInfo.Error))...)

				return
			}
			l.Info("split assign done", fields...)
		}
	}

	t.OnReaderFetch = func(
		info trace.SourceReaderFetchStartInfo,
	) func(trace.SourceReaderFetchDoneInfo) {
		start := time.Now()

		return func(doneInfo trace.SourceReaderFetchDoneInfo) {
			fields := []zap.Field{
				zap.Int64("reader_id", info.ReaderID),
				zap.String("split_id", info.SplitID),
				zap.Int("records", doneInfo.RecordsCount),
				zap.Bool("split_finished", doneInfo.SplitFinished),
				zap.Duration("latency", time.Since(start)),
			}
			if doneInfo.Error != nil {
				l.Warn("fetch failed", append(fields, zap.Error(doneInfo.Error))...)

				return
			}
			l.Debug("fetch done", fields...)
		}
	}

	t.OnReaderWakeUp = func(info trace.SourceReaderWakeUpInfo) {
		l.Debug("wakeup requested", zap.Int64("reader_id", info.ReaderID))
	}

	t.OnReaderClose = func(
		info trace.SourceReaderCloseStartInfo,
	) func(trace.SourceReaderCloseDoneInfo) {
		start := time.Now()

		return func(doneInfo trace.SourceReaderCloseDoneInfo) {
			fields := []zap.Field{
				zap.Int64("reader_id", info.ReaderID),
				zap.Duration("latency", time.Since(start)),
			}
			if doneInfo.Error != nil {
				l.Warn("reader close failed", append(fields, zap.Error(doneInfo.Error))...)

				return
			}
			l.Info("reader closed", fields...)
		}
	}

	return t
}
