package bubblegum

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common"
	"github.com/gaze-network/bubblegum-indexer/core/dispatcher"
	"github.com/gaze-network/bubblegum-indexer/core/indexer"
	"github.com/gaze-network/bubblegum-indexer/core/messenger"
	"github.com/gaze-network/bubblegum-indexer/core/types"
	"github.com/gaze-network/bubblegum-indexer/internal/config"
	"github.com/gaze-network/bubblegum-indexer/internal/postgres"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	repository "github.com/gaze-network/bubblegum-indexer/modules/bubblegum/repository/postgres"
	"github.com/gaze-network/bubblegum-indexer/pkg/httpclient"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/samber/do/v2"
)

const WorkerName = "bubblegum_metadata"

type cleanups []func(context.Context) error

func (c cleanups) run(ctx context.Context) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](ctx); err != nil {
			logger.WarnContext(ctx, "Cleanup failed", slogx.Error(err))
		}
	}
}

// New builds the stream indexer: one dispatcher per configured stream,
// sharing one connection pool.
func New(injector do.Injector) (_ indexer.IndexerWorker, err error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	m := do.MustInvoke[*metrics.Metrics](injector)

	var cleanupFuncs cleanups
	defer func() {
		if err != nil {
			cleanupFuncs.run(ctx)
		}
	}()

	pg, err := postgres.NewPool(ctx, conf.Modules.Bubblegum.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres connection pool")
	}
	cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
		pg.Close()
		return nil
	})
	bubblegumDg := repository.NewRepository(pg)

	msgr, err := messenger.DialAMQP(ctx, conf.Messenger)
	if err != nil {
		return nil, errors.Wrap(err, "can't connect to messenger")
	}
	cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
		return errors.WithStack(msgr.Close())
	})

	// metadata downloads are optional, without a queue no task is enqueued
	var taskQueue taskqueue.Enqueuer
	if conf.TaskQueue.URL != "" {
		queue, err := taskqueue.Dial(ctx, conf.TaskQueue)
		if err != nil {
			return nil, errors.Wrap(err, "can't connect to task queue")
		}
		cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
			return errors.WithStack(queue.Close())
		})
		taskQueue = queue
	} else {
		logger.WarnContext(ctx, "Task queue is not configured, off-chain metadata will not be downloaded")
	}

	var workers []indexer.Worker
	for _, stream := range conf.Modules.Bubblegum.Streams {
		switch messenger.Stream(stream) {
		case messenger.StreamTransaction:
			processor := NewProcessor(bubblegumDg, taskQueue, m)
			workers = append(workers, dispatcher.New[*types.TransactionInfo](messenger.StreamTransaction, msgr, types.ParseTransactionInfo, processor, m))
		case messenger.StreamAccount:
			processor := NewAccountProcessor(bubblegumDg, m)
			workers = append(workers, dispatcher.New[*types.AccountInfo](messenger.StreamAccount, msgr, types.ParseAccountInfo, processor, m))
		default:
			return nil, errors.Errorf("unknown stream %q", stream)
		}
		logger.InfoContext(ctx, "Registered stream dispatcher", slog.String("stream", stream))
	}

	logger.InfoContext(ctx, "Bubblegum module started.")
	return indexer.New(common.ModuleBubblegum.String(), workers, cleanupFuncs), nil
}

// NewWorker builds the background worker that downloads off-chain metadata.
func NewWorker(injector do.Injector) (_ indexer.IndexerWorker, err error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	bubblegumConf := conf.Modules.Bubblegum

	var cleanupFuncs cleanups
	defer func() {
		if err != nil {
			cleanupFuncs.run(ctx)
		}
	}()

	pg, err := postgres.NewPool(ctx, bubblegumConf.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres connection pool")
	}
	cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
		pg.Close()
		return nil
	})

	queue, err := taskqueue.Dial(ctx, conf.TaskQueue)
	if err != nil {
		return nil, errors.Wrap(err, "can't connect to task queue")
	}
	cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
		return errors.WithStack(queue.Close())
	})

	client := httpclient.New(httpclient.Config{
		Timeout:     bubblegumConf.MetadataTimeout,
		MaxBodySize: bubblegumConf.MetadataMaxBytes,
	})

	worker := NewMetadataWorker(repository.NewRepository(pg), queue, client, MetadataWorkerConfig{
		Concurrency: bubblegumConf.MetadataWorkers,
		MaxBytes:    bubblegumConf.MetadataMaxBytes,
	})
	logger.InfoContext(ctx, "Bubblegum metadata worker started.")
	return indexer.New(WorkerName, []indexer.Worker{worker}, cleanupFuncs), nil
}
