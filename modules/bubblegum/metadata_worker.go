package bubblegum

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/pkg/httpclient"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
)

// MetadataFetcher downloads a document from an absolute URL.
type MetadataFetcher interface {
	Fetch(ctx context.Context, rawURL string, reqOptions httpclient.RequestOptions) (*httpclient.HttpResponse, error)
}

type MetadataWorkerConfig struct {
	Concurrency int
	MaxBytes    int
}

// MetadataWorker consumes download_metadata tasks and stores the fetched
// JSON on the asset data. Failed tasks are rejected without redelivery.
type MetadataWorker struct {
	bubblegumDg datagateway.BubblegumDataGateway
	consumer    taskqueue.Consumer
	fetcher     MetadataFetcher
	config      MetadataWorkerConfig

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func NewMetadataWorker(bubblegumDg datagateway.BubblegumDataGateway, consumer taskqueue.Consumer, fetcher MetadataFetcher, config MetadataWorkerConfig) *MetadataWorker {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &MetadataWorker{
		bubblegumDg: bubblegumDg,
		consumer:    consumer,
		fetcher:     fetcher,
		config:      config,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

type metadataResult struct {
	delivery taskqueue.Delivery
	err      error
}

func (w *MetadataWorker) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		select {
		case <-w.done:
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "metadata worker shutdown context canceled")
		}
	})
	return
}

func (w *MetadataWorker) Run(ctx context.Context) error {
	defer close(w.done)
	ctx = logger.WithContext(ctx, slog.String("package", "metadata_worker"))

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.quit:
			cancel()
		case <-consumeCtx.Done():
		}
	}()

	deliveries, err := w.consumer.Consume(consumeCtx)
	if err != nil {
		return errors.Wrap(err, "failed to consume tasks")
	}

	out := make(chan metadataResult)
	stream := cstream.NewStream(ctx, w.config.Concurrency, out)
	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	// settle results one at a time
	settled := make(chan struct{})
	go func() {
		defer close(settled)
		for result := range out {
			w.settle(ctx, result)
		}
	}()

	logger.InfoContext(ctx, "Start consuming tasks", slog.Int("concurrency", w.config.Concurrency))
	for delivery := range deliveries {
		delivery := delivery
		stream.Go(func() metadataResult {
			return metadataResult{
				delivery: delivery,
				err:      w.handle(ctx, delivery.Task()),
			}
		})
	}
	stream.Close()
	<-settled
	logger.InfoContext(ctx, "Metadata worker stopped")
	return nil
}

func (w *MetadataWorker) settle(ctx context.Context, result metadataResult) {
	task := result.delivery.Task()
	if result.err != nil {
		logger.WarnContext(ctx, "Metadata task failed",
			slog.String("task", task.Name),
			slogx.Error(result.err),
		)
		if err := result.delivery.Reject(); err != nil {
			logger.ErrorContext(ctx, "Failed to reject task", slogx.Error(err))
		}
		return
	}
	if err := result.delivery.Ack(); err != nil {
		logger.ErrorContext(ctx, "Failed to ack task", slogx.Error(err))
	}
}

func (w *MetadataWorker) handle(ctx context.Context, task taskqueue.Task) error {
	if task.Name != TaskDownloadMetadata {
		return errors.Wrapf(errs.NotImplemented, "unknown task %q", task.Name)
	}
	var payload DownloadMetadataPayload
	if err := task.Decode(&payload); err != nil {
		return errors.WithStack(err)
	}
	ctx = logger.WithContext(ctx, slog.String("asset", payload.AssetID.String()))

	metadata, err := w.download(ctx, payload.URI)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := w.bubblegumDg.SetAssetMetadata(ctx, datagateway.SetAssetMetadataParams{
		ID:        payload.AssetID,
		Metadata:  metadata,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to store metadata")
	}
	if affected == 0 {
		logger.WarnContext(ctx, "Asset data not found, metadata dropped")
		return nil
	}
	logger.DebugContext(ctx, "Stored off-chain metadata", slog.Int("size", len(metadata)))
	return nil
}

func (w *MetadataWorker) download(ctx context.Context, uri string) (json.RawMessage, error) {
	resp, err := w.fetcher.Fetch(ctx, uri, httpclient.RequestOptions{
		Header: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch metadata")
	}
	if !resp.IsSuccess() {
		return nil, errors.Wrapf(errs.InvalidArgument, "metadata %s returned status %d", uri, resp.StatusCode())
	}
	body, err := resp.DecodedBody(w.config.MaxBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read metadata body of %s", uri)
	}
	if !json.Valid(body) {
		return nil, errors.Wrapf(errs.ParsingError, "metadata %s is not valid json", uri)
	}
	return json.RawMessage(body), nil
}
