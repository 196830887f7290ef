package taskqueue

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	AssetID string `json:"asset_id"`
	URI     string `json:"uri"`
}

func TestTaskPayload(t *testing.T) {
	t.Parallel()
	task, err := NewTask("download_metadata", samplePayload{AssetID: "abc", URI: "https://example.com/1.json"})
	require.NoError(t, err)
	assert.Equal(t, "download_metadata", task.Name)
	assert.False(t, task.CreatedAt.IsZero())

	var out samplePayload
	require.NoError(t, task.Decode(&out))
	assert.Equal(t, "https://example.com/1.json", out.URI)

	bad := Task{Name: "download_metadata", Payload: []byte("{")}
	assert.True(t, errors.Is(bad.Decode(&out), errs.ParsingError))

	_, err = NewTask("bad", make(chan int))
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestMemoryQueue(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewMemory(4)
	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	task, err := NewTask("download_metadata", samplePayload{AssetID: "abc"})
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(ctx, task))

	select {
	case d := <-deliveries:
		assert.Equal(t, task.Name, d.Task().Name)
		require.NoError(t, d.Ack())
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery")
	}
	assert.Equal(t, 1, q.Settled("ack"))
	assert.Len(t, q.Enqueued(), 1)

	cancel()
	for range deliveries {
	}
}
