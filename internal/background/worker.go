package background

import (
	"context"
	"errors"
	"runtime/pprof"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/suxinglee/pulsar-source/internal/empty"
	"github.com/suxinglee/pulsar-source/internal/xcontext"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
	"github.com/suxinglee/pulsar-source/internal/xsync"
)

var (
	ErrAlreadyClosed       = xerrors.Wrap(errors.New("pulsarsource: background worker already closed"))
	errClosedWithNilReason = xerrors.Wrap(errors.New("pulsarsource: background worker closed with nil reason"))
)

// A Worker must not be copied after first use
type Worker struct {
	ctx      context.Context
	workers  *errgroup.Group
	onceInit sync.Once
	name     string

	m xsync.Mutex

	closed      bool
	stop        context.CancelFunc
	closeReason error
}

type CallbackFunc func(ctx context.Context)

func NewWorker(parent context.Context, name string) *Worker {
	w := Worker{name: name}
	w.ctx, w.stop = xcontext.WithCancel(parent)

	return &w
}

func (b *Worker) Context() context.Context {
	b.init()

	return b.ctx
}

func (b *Worker) Start(name string, f CallbackFunc) {
	b.init()

	b.m.WithLock(func() {
		if b.closed {
			return
		}

		b.workers.Go(func() error {
			pprof.Do(b.ctx, pprof.Labels("background", b.name+"/"+name), f)

			return nil
		})
	})
}

func (b *Worker) Done() <-chan struct{} {
	b.init()

	return b.ctx.Done()
}

func (b *Worker) Close(ctx context.Context, err error) error {
	b.init()

	var resErr error
	b.m.WithLock(func() {
		if b.closed {
			resErr = xerrors.WithStackTrace(ErrAlreadyClosed)

			return
		}

		b.closed = true

		b.closeReason = err
		if b.closeReason == nil {
			b.closeReason = errClosedWithNilReason
		}

		b.stop()
	})
	if resErr != nil {
		return resErr
	}

	bgCompleted := make(empty.Chan)

	go func() {
		_ = b.workers.Wait()
		close(bgCompleted)
	}()

	select {
	case <-bgCompleted:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Worker) CloseReason() error {
	b.m.Lock()
	defer b.m.Unlock()

	return b.closeReason
}

func (b *Worker) init() {
	b.onceInit.Do(func() {
		if b.ctx == nil {
			b.ctx, b.stop = xcontext.WithCancel(context.Background())
		}
		b.workers = &errgroup.Group{}
	})
}
