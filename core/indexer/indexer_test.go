package indexer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker runs until shutdown or ctx cancellation, or returns err
// right away when set.
type blockingWorker struct {
	err     error
	stopped atomic.Bool
	quit    chan struct{}
}

func newBlockingWorker(err error) *blockingWorker {
	return &blockingWorker{err: err, quit: make(chan struct{})}
}

func (w *blockingWorker) Run(ctx context.Context) error {
	if w.err != nil {
		return w.err
	}
	select {
	case <-w.quit:
	case <-ctx.Done():
	}
	return nil
}

func (w *blockingWorker) ShutdownWithContext(context.Context) error {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.quit)
	}
	return nil
}

func TestIndexerShutdown(t *testing.T) {
	t.Parallel()

	var cleaned atomic.Int32
	a, b := newBlockingWorker(nil), newBlockingWorker(nil)
	idx := New("test", []Worker{a, b}, []func(context.Context) error{
		func(context.Context) error { cleaned.Add(1); return nil },
	})

	done := make(chan error, 1)
	go func() { done <- idx.Run(context.Background()) }()

	require.NoError(t, idx.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-done)
	assert.True(t, a.stopped.Load())
	assert.True(t, b.stopped.Load())
	assert.EqualValues(t, 1, cleaned.Load())

	// second shutdown is a no-op
	assert.NoError(t, idx.Shutdown())
}

func TestIndexerWorkerFailure(t *testing.T) {
	t.Parallel()

	failure := errors.New("stream closed")
	healthy := newBlockingWorker(nil)
	idx := New("test", []Worker{healthy, newBlockingWorker(failure)}, nil)

	err := idx.Run(context.Background())
	assert.ErrorIs(t, err, failure)
	assert.True(t, healthy.stopped.Load())
}

func TestIndexerWorkerReturned(t *testing.T) {
	t.Parallel()

	finished := newBlockingWorker(nil)
	require.NoError(t, finished.ShutdownWithContext(context.Background()))
	healthy := newBlockingWorker(nil)

	idx := New("test", []Worker{healthy, finished}, nil)
	assert.NoError(t, idx.Run(context.Background()))
	assert.True(t, healthy.stopped.Load())
}

func TestIndexerNeverStarted(t *testing.T) {
	t.Parallel()

	var cleaned atomic.Int32
	idx := New("test", []Worker{newBlockingWorker(nil)}, []func(context.Context) error{
		func(context.Context) error { cleaned.Add(1); return errors.New("close failed") },
	})

	err := idx.ShutdownWithTimeout(time.Second)
	assert.ErrorContains(t, err, "close failed")
	assert.EqualValues(t, 1, cleaned.Load())
}

func TestIndexerRunTwice(t *testing.T) {
	t.Parallel()

	idx := New("test", nil, nil)
	require.NoError(t, idx.Run(context.Background()))
	assert.Error(t, idx.Run(context.Background()))
}
