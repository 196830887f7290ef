package dispatcher

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/messenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu       sync.Mutex
	inputs   []int
	failures map[int]error
	seen     chan int
	shutdown bool
}

func newRecordingProcessor(failures map[int]error) *recordingProcessor {
	return &recordingProcessor{failures: failures, seen: make(chan int, 16)}
}

func (p *recordingProcessor) Name() string { return "recording" }

func (p *recordingProcessor) Process(_ context.Context, input int) error {
	p.mu.Lock()
	p.inputs = append(p.inputs, input)
	p.mu.Unlock()
	p.seen <- input
	return p.failures[input]
}

func (p *recordingProcessor) Shutdown(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shutdown = true
	return nil
}

func (p *recordingProcessor) processed() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.inputs...)
}

func decodeInt(data []byte) (int, error) {
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, errors.Wrap(errs.ParsingError, err.Error())
	}
	return n, nil
}

func waitFor(t *testing.T, ch <-chan int, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for input %d", i)
		}
	}
}

func TestDispatcherProcessesInOrderAndAcks(t *testing.T) {
	t.Parallel()
	msgr := messenger.NewMemory(2)
	for _, s := range []string{"1", "2", "garbage", "3"} {
		msgr.Publish(messenger.StreamTransaction, []byte(s))
	}
	processor := newRecordingProcessor(map[int]error{
		2: errors.Wrap(errs.NotImplemented, "unsupported instruction"),
	})
	d := New(messenger.StreamTransaction, msgr, decodeInt, processor, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(context.Background()) }()

	waitFor(t, processor.seen, 3)
	require.NoError(t, d.Shutdown())
	require.NoError(t, <-errCh)

	assert.Equal(t, []int{1, 2, 3}, processor.processed())
	assert.Empty(t, msgr.Pending(messenger.StreamTransaction))
	assert.True(t, processor.shutdown)
}

func TestDispatcherStopsOnFatalError(t *testing.T) {
	t.Parallel()
	msgr := messenger.NewMemory(10)
	msgr.Publish(messenger.StreamAccount, []byte("1"))
	failed := msgr.Publish(messenger.StreamAccount, []byte("2"))
	msgr.Publish(messenger.StreamAccount, []byte("3"))

	processor := newRecordingProcessor(map[int]error{
		2: errors.Wrap(errs.DatabaseError, "connection reset"),
	})
	d := New(messenger.StreamAccount, msgr, decodeInt, processor, nil)

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.DatabaseError))
	assert.Equal(t, []int{1, 2}, processor.processed())
	assert.ElementsMatch(t, []uint64{failed, failed + 1}, msgr.Pending(messenger.StreamAccount))
}

func TestDispatcherStopsOnContextCancel(t *testing.T) {
	t.Parallel()
	msgr := messenger.NewMemory(1)
	processor := newRecordingProcessor(nil)
	d := New(messenger.StreamAccount, msgr, decodeInt, processor, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- d.Run(ctx) }()

	msgr.Publish(messenger.StreamAccount, []byte("7"))
	waitFor(t, processor.seen, 1)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
	assert.False(t, processor.shutdown)
}

func TestIsSkippable(t *testing.T) {
	t.Parallel()
	assert.True(t, IsSkippable(errors.Wrap(errs.ParsingError, "x")))
	assert.True(t, IsSkippable(errors.Wrap(errs.NotImplemented, "x")))
	assert.True(t, IsSkippable(errors.Wrap(errs.ChangeLogEventMalformed, "x")))
	assert.False(t, IsSkippable(errors.Wrap(errs.DatabaseError, "x")))
	assert.False(t, IsSkippable(context.Canceled))
}
