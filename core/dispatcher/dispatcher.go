package dispatcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/messenger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
)

// Processor handles decoded envelopes of one stream.
type Processor[T any] interface {
	Name() string

	// Process handles one input. Errors of kind ParsingError, NotImplemented
	// or ChangeLogEventMalformed skip the input; any other error stops the
	// stream without acknowledging it.
	Process(ctx context.Context, input T) error

	// Shutdown releases processor resources.
	Shutdown(ctx context.Context) error
}

// Decoder turns a raw envelope into an owned input value.
type Decoder[T any] func(data []byte) (T, error)

// Dispatcher runs the receive, decode, process and ack loop of one stream.
// Messages are handled strictly in order and each is acknowledged only after
// its processor returned.
type Dispatcher[T any] struct {
	Stream    messenger.Stream
	Messenger messenger.Messenger
	Decode    Decoder[T]
	Processor Processor[T]
	Metrics   *metrics.Metrics

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func New[T any](stream messenger.Stream, msgr messenger.Messenger, decode Decoder[T], processor Processor[T], m *metrics.Metrics) *Dispatcher[T] {
	return &Dispatcher[T]{
		Stream:    stream,
		Messenger: msgr,
		Decode:    decode,
		Processor: processor,
		Metrics:   m,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (d *Dispatcher[T]) Shutdown() error {
	return d.ShutdownWithContext(context.Background())
}

func (d *Dispatcher[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return d.ShutdownWithContext(ctx)
}

// ShutdownWithContext stops receiving new batches and waits for the batch in
// flight to finish.
func (d *Dispatcher[T]) ShutdownWithContext(ctx context.Context) (err error) {
	d.quitOnce.Do(func() {
		close(d.quit)
		select {
		case <-d.done:
		case <-time.After(180 * time.Second):
			err = errors.Wrap(errs.Timeout, "dispatcher shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "dispatcher shutdown context canceled")
		}
	})
	return
}

// Run consumes the stream until ctx is done, Shutdown is called, or a
// non-skippable error occurs.
func (d *Dispatcher[T]) Run(ctx context.Context) (err error) {
	defer close(d.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "dispatcher"),
		slog.String("stream", d.Stream.String()),
		slog.String("processor", d.Processor.Name()),
	)

	// receiving stops on quit, processing only on ctx
	recvCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-d.quit:
			cancel()
		case <-recvCtx.Done():
		}
	}()

	logger.InfoContext(ctx, "Start consuming stream")
	for {
		msgs, err := d.Messenger.Receive(recvCtx, d.Stream)
		if err != nil {
			if recvCtx.Err() != nil {
				break
			}
			return errors.Wrap(err, "failed to receive messages")
		}
		d.Metrics.RecordMessageReceived(d.Stream.String(), len(msgs))

		for _, msg := range msgs {
			if err := d.handle(ctx, msg); err != nil {
				logger.ErrorContext(ctx, "Stream stopped, message left unacknowledged",
					slogx.Uint64("message_id", msg.ID),
					slogx.Error(err),
				)
				return errors.WithStack(err)
			}
		}
	}

	select {
	case <-d.quit:
		logger.InfoContext(ctx, "Got quit signal, stopping dispatcher")
		if err := d.Processor.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
			return errors.Wrap(err, "processor shutdown failed")
		}
	default:
	}
	return nil
}

func (d *Dispatcher[T]) handle(ctx context.Context, msg messenger.Message) error {
	start := time.Now()
	ctx = logger.WithContext(ctx, slogx.Uint64("message_id", msg.ID))

	input, err := d.Decode(msg.Data)
	if err != nil {
		logger.WarnContext(ctx, "Skipping undecodable envelope", slogx.Error(err))
		d.Metrics.RecordMessageSkipped(d.Stream.String(), reason(err))
		return d.ack(ctx, msg)
	}

	if err := d.Processor.Process(ctx, input); err != nil {
		if !IsSkippable(err) {
			return errors.Wrap(err, "failed to process message")
		}
		logger.WarnContext(ctx, "Skipping message", slogx.Error(err))
		d.Metrics.RecordMessageSkipped(d.Stream.String(), reason(err))
	}

	d.Metrics.RecordProcessDuration(d.Stream.String(), time.Since(start))
	return d.ack(ctx, msg)
}

func (d *Dispatcher[T]) ack(ctx context.Context, msg messenger.Message) error {
	if err := d.Messenger.Ack(ctx, d.Stream, msg.ID); err != nil {
		return errors.Wrapf(err, "failed to ack message %d", msg.ID)
	}
	return nil
}

// IsSkippable reports whether err only invalidates the current input.
func IsSkippable(err error) bool {
	return errors.IsAny(err, errs.ParsingError, errs.NotImplemented, errs.ChangeLogEventMalformed)
}

func reason(err error) string {
	switch {
	case errors.Is(err, errs.ParsingError):
		return "parsing_error"
	case errors.Is(err, errs.NotImplemented):
		return "not_implemented"
	case errors.Is(err, errs.ChangeLogEventMalformed):
		return "changelog_malformed"
	default:
		return "other"
	}
}
