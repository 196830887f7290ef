package indexer

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"golang.org/x/sync/errgroup"
)

// IndexerWorker is a long running module worker.
type IndexerWorker interface {
	Run(ctx context.Context) error
	ShutdownWithContext(ctx context.Context) error
}

// Worker is one loop run by the Indexer, a stream dispatcher or a task
// consumer.
type Worker interface {
	Run(ctx context.Context) error
	ShutdownWithContext(ctx context.Context) error
}

var _ IndexerWorker = (*Indexer)(nil)

// Indexer runs the workers of a module concurrently. When one worker stops
// the others are stopped as well. Cleanup functions run once, after every
// worker returned.
type Indexer struct {
	Name         string
	Workers      []Worker
	cleanupFuncs []func(context.Context) error

	started  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func New(name string, workers []Worker, cleanupFuncs []func(context.Context) error) *Indexer {
	return &Indexer{
		Name:         name,
		Workers:      workers,
		cleanupFuncs: cleanupFuncs,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (i *Indexer) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

func (i *Indexer) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		// never run, E.g. in api-only mode
		if !i.started.Load() {
			err = i.cleanup(ctx)
			return
		}
		select {
		case <-i.done:
		case <-time.After(180 * time.Second):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer) Run(ctx context.Context) (err error) {
	if !i.started.CompareAndSwap(false, true) {
		return errors.Wrap(errs.InternalError, "indexer already started")
	}
	defer close(i.done)
	defer func() {
		if cerr := i.cleanup(context.Background()); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("indexer", i.Name),
	)

	var stopOnce sync.Once
	stopped := make(chan struct{})
	if len(i.Workers) == 0 {
		close(stopped)
	}
	group, gctx := errgroup.WithContext(ctx)
	for _, w := range i.Workers {
		w := w
		group.Go(func() error {
			defer stopOnce.Do(func() { close(stopped) })
			return errors.WithStack(w.Run(gctx))
		})
	}

	// stop every worker on quit or as soon as one of them returned
	group.Go(func() error {
		select {
		case <-i.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping indexer")
		case <-stopped:
		}
		for _, w := range i.Workers {
			if err := w.ShutdownWithContext(ctx); err != nil {
				logger.WarnContext(ctx, "Failed to stop worker", slogx.Error(err))
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.ErrorContext(ctx, "Indexer stopped with error", slogx.Error(err))
		return errors.WithStack(err)
	}
	return nil
}

func (i *Indexer) cleanup(ctx context.Context) error {
	var err error
	for _, cleanupFunc := range i.cleanupFuncs {
		err = errors.CombineErrors(err, cleanupFunc(ctx))
	}
	return errors.Wrap(err, "cleanup function error")
}
