package pulsarsource

import (
	"context"
	"errors"

	"github.com/suxinglee/pulsar-source/internal/background"
	"github.com/suxinglee/pulsar-source/internal/xcontext"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

var (
	// ErrSplitFinished is the fetcher close reason after the split's stop
	// condition fired.
	ErrSplitFinished = xerrors.Wrap(errors.New("pulsarsource: split finished"))

	// ErrReaderUnassigned is returned by NewFetcher for a reader without
	// an assigned split.
	ErrReaderUnassigned = xerrors.Wrap(errors.New("pulsarsource: fetcher needs a reader with an assigned split"))
)

// RecordsHandler consumes the result of one fetch cycle. Called from the
// fetcher's goroutine, a returned error stops the fetcher.
type RecordsHandler[T any] func(ctx context.Context, records *Records[T]) error

// Fetcher drives a reader's fetch cycles from a background goroutine and
// hands every non-empty result to a handler. It stops on handler error,
// on fetch error, when the split finishes or when Close is called.
type Fetcher[T any] struct {
	reader  *Reader[T]
	handler RecordsHandler[T]
	worker  *background.Worker
}

// NewFetcher starts fetching immediately. The reader must already own
// its split: an unassigned reader produces nothing to wait on, and
// assigning one while the fetch loop runs would race with Fetch.
func NewFetcher[T any](ctx context.Context, reader *Reader[T], handler RecordsHandler[T]) (*Fetcher[T], error) {
	if !reader.Assigned() {
		return nil, xerrors.WithStackTrace(ErrReaderUnassigned)
	}

	f := &Fetcher[T]{
		reader:  reader,
		handler: handler,
		worker:  background.NewWorker(ctx, "fetcher"),
	}
	f.worker.Start("fetch loop", f.fetchLoop)

	return f, nil
}

func (f *Fetcher[T]) fetchLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		records, err := f.reader.Fetch(ctx)
		if err != nil {
			f.background(ctx, err)

			return
		}

		if !records.IsEmpty() {
			if err = f.handler(ctx, records); err != nil {
				f.background(ctx, err)

				return
			}
		}

		if len(records.FinishedSplitIDs()) > 0 {
			f.background(ctx, ErrSplitFinished)

			return
		}
	}
}

// background closes the worker from inside the fetch loop without
// waiting for itself.
func (f *Fetcher[T]) background(ctx context.Context, reason error) {
	ctx = xcontext.ValueOnly(ctx)
	go func() {
		_ = f.worker.Close(ctx, reason)
	}()
}

// Done is closed when the fetch loop has stopped.
func (f *Fetcher[T]) Done() <-chan struct{} {
	return f.worker.Done()
}

// CloseReason returns why the fetcher stopped, nil while it is running.
// ErrSplitFinished means the split's stop condition fired.
func (f *Fetcher[T]) CloseReason() error {
	return f.worker.CloseReason()
}

// Close interrupts the current fetch cycle and waits for the loop to
// stop. Safe to call more than once.
func (f *Fetcher[T]) Close(ctx context.Context) error {
	f.reader.WakeUp()

	err := f.worker.Close(ctx, nil)
	if xerrors.Is(err, background.ErrAlreadyClosed) {
		return nil
	}

	return err
}
