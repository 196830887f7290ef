package bubblegum

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway/mocks"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/bubblegumtest"
	"github.com/gaze-network/bubblegum-indexer/pkg/httpclient"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticFetcher map[string]struct {
	status   int
	body     string
	encoding string
}

func (f staticFetcher) Fetch(_ context.Context, rawURL string, _ httpclient.RequestOptions) (*httpclient.HttpResponse, error) {
	doc, ok := f[rawURL]
	if !ok {
		return nil, errors.Wrapf(errs.Timeout, "url: %s", rawURL)
	}
	resp := &httpclient.HttpResponse{URL: rawURL}
	resp.SetStatusCode(doc.status)
	resp.SetBodyString(doc.body)
	if doc.encoding != "" {
		resp.Header.SetContentEncoding(doc.encoding)
	}
	return resp, nil
}

func TestMetadataWorker(t *testing.T) {
	t.Parallel()

	okAsset := bubblegumtest.Key("ok-asset")
	fetcher := staticFetcher{
		"https://example.com/ok.json":      {status: 200, body: `{"name":"cat","image":"https://example.com/cat.png"}`},
		"https://example.com/missing.json": {status: 404, body: "not found"},
		"https://example.com/html.json":    {status: 200, body: "<html></html>"},
		"https://example.com/large.json":   {status: 200, body: `{"name":"` + string(make([]byte, 256)) + `"}`},
	}

	dg := mocks.NewBubblegumDataGateway(t)
	dg.EXPECT().SetAssetMetadata(mock.Anything, mock.Anything).Run(func(_ context.Context, arg datagateway.SetAssetMetadataParams) {
		assert.Equal(t, okAsset, arg.ID)
		assert.JSONEq(t, `{"name":"cat","image":"https://example.com/cat.png"}`, string(arg.Metadata))
		assert.False(t, arg.FetchedAt.IsZero())
	}).Return(1, nil).Once()

	queue := taskqueue.NewMemory(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enqueue := func(name, uri string) {
		task, err := NewDownloadMetadataTask(bubblegumtest.Key(name), uri)
		require.NoError(t, err)
		require.NoError(t, queue.Enqueue(ctx, task))
	}
	enqueue("ok-asset", "https://example.com/ok.json")
	enqueue("missing", "https://example.com/missing.json")
	enqueue("html", "https://example.com/html.json")
	enqueue("large", "https://example.com/large.json")
	enqueue("unreachable", "https://example.com/timeout.json")
	require.NoError(t, queue.Enqueue(ctx, taskqueue.Task{Name: "unknown", Payload: json.RawMessage(`{}`)}))

	worker := NewMetadataWorker(dg, queue, fetcher, MetadataWorkerConfig{Concurrency: 3, MaxBytes: 128})
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return queue.Settled("ack")+queue.Settled("reject") == 6
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, queue.Settled("ack"))
	assert.Equal(t, 5, queue.Settled("reject"))

	require.NoError(t, worker.ShutdownWithContext(context.Background()))
	require.NoError(t, <-done)
}

func TestMetadataWorkerMissingAssetData(t *testing.T) {
	t.Parallel()

	dg := mocks.NewBubblegumDataGateway(t)
	dg.EXPECT().SetAssetMetadata(mock.Anything, mock.Anything).Return(0, nil).Once()
	worker := NewMetadataWorker(dg, nil, staticFetcher{
		"https://example.com/ok.json": {status: 200, body: `{}`},
	}, MetadataWorkerConfig{})

	task, err := NewDownloadMetadataTask(bubblegumtest.Key("gone"), "https://example.com/ok.json")
	require.NoError(t, err)
	assert.NoError(t, worker.handle(context.Background(), task))
}

func TestMetadataWorkerCompressedBody(t *testing.T) {
	t.Parallel()

	gz := func(s string) string {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(s))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return buf.String()
	}
	fetcher := staticFetcher{
		"https://example.com/small.json": {status: 200, body: gz(`{"name":"cat"}`), encoding: "gzip"},
		"https://example.com/bomb.json":  {status: 200, body: gz(`{"name":"` + strings.Repeat("a", 4096) + `"}`), encoding: "gzip"},
	}

	dg := mocks.NewBubblegumDataGateway(t)
	dg.EXPECT().SetAssetMetadata(mock.Anything, mock.Anything).Run(func(_ context.Context, arg datagateway.SetAssetMetadataParams) {
		assert.JSONEq(t, `{"name":"cat"}`, string(arg.Metadata))
	}).Return(1, nil).Once()
	worker := NewMetadataWorker(dg, nil, fetcher, MetadataWorkerConfig{MaxBytes: 128})

	task, err := NewDownloadMetadataTask(bubblegumtest.Key("small"), "https://example.com/small.json")
	require.NoError(t, err)
	require.NoError(t, worker.handle(context.Background(), task))

	task, err = NewDownloadMetadataTask(bubblegumtest.Key("bomb"), "https://example.com/bomb.json")
	require.NoError(t, err)
	assert.ErrorIs(t, worker.handle(context.Background(), task), httpclient.ErrBodyTooLarge)
}
