package taskqueue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	amqp "github.com/rabbitmq/amqp091-go"
)

const contentTypeJSON = "application/json"

type Config struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
	Queue    string `mapstructure:"queue"`
	// Prefetch bounds the unacknowledged tasks held by one worker.
	Prefetch int `mapstructure:"prefetch"`
}

// AMQPQueue publishes tasks to a durable topic exchange, routed by task name.
// Publishers and consumers use separate channels.
type AMQPQueue struct {
	config Config
	conn   *amqp.Connection

	mu             sync.Mutex
	publishChannel *amqp.Channel
}

var (
	_ Enqueuer = (*AMQPQueue)(nil)
	_ Consumer = (*AMQPQueue)(nil)
)

func Dial(ctx context.Context, config Config) (*AMQPQueue, error) {
	if config.URL == "" {
		return nil, errors.Wrap(errs.ConfigurationError, "task queue url is required")
	}
	if config.Exchange == "" {
		return nil, errors.Wrap(errs.ConfigurationError, "task queue exchange is required")
	}

	var conn *amqp.Connection
	connect := func() (err error) {
		conn, err = amqp.Dial(config.URL)
		if err != nil {
			logger.WarnContext(ctx, "taskqueue: dial failed, retrying", slogx.Error(err))
		}
		return err
	}
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxInterval = 10 * time.Second
	expBackoff.MaxElapsedTime = time.Minute
	if err := backoff.Retry(connect, backoff.WithContext(expBackoff, ctx)); err != nil {
		return nil, errors.Wrap(err, "can't connect to task queue broker")
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to open publish channel")
	}
	err = publishChannel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to declare exchange %s", config.Exchange)
	}

	return &AMQPQueue{
		config:         config,
		conn:           conn,
		publishChannel: publishChannel,
	}, nil
}

func (q *AMQPQueue) Enqueue(ctx context.Context, task Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return errors.Wrap(err, "failed to encode task")
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	err = q.publishChannel.PublishWithContext(ctx,
		q.config.Exchange,
		task.Name,
		false,
		false,
		amqp.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    task.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s task", task.Name)
	}
	return nil
}

// amqpChannel is the part of *amqp.Channel a consumer uses.
type amqpChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type amqpDelivery struct {
	task     Task
	delivery amqp.Delivery
}

func (d *amqpDelivery) Task() Task { return d.task }

func (d *amqpDelivery) Ack() error {
	return errors.WithStack(d.delivery.Ack(false))
}

func (d *amqpDelivery) Reject() error {
	return errors.WithStack(d.delivery.Nack(false, false))
}

// Consume binds the configured queue to every task routed through the
// exchange and streams decoded deliveries until ctx is done. Deliveries whose
// body is not a task are rejected.
func (q *AMQPQueue) Consume(ctx context.Context) (<-chan Delivery, error) {
	ch, err := q.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open consume channel")
	}
	deliveries, err := q.subscribe(ch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var task Task
				if err := json.Unmarshal(d.Body, &task); err != nil {
					logger.WarnContext(ctx, "taskqueue: rejecting malformed task", slogx.Error(err))
					_ = d.Nack(false, false)
					continue
				}
				select {
				case out <- &amqpDelivery{task: task, delivery: d}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// subscribe binds the task queue on ch and starts consuming it. ch is
// closed if any step fails.
func (q *AMQPQueue) subscribe(ch amqpChannel) (_ <-chan amqp.Delivery, err error) {
	defer func() {
		if err != nil {
			_ = ch.Close()
		}
	}()

	if q.config.Prefetch > 0 {
		if err := ch.Qos(q.config.Prefetch, 0, false); err != nil {
			return nil, errors.Wrap(err, "failed to set prefetch")
		}
	}
	queue, err := ch.QueueDeclare(q.config.Queue, true, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare queue %s", q.config.Queue)
	}
	if err := ch.QueueBind(queue.Name, "#", q.config.Exchange, false, nil); err != nil {
		return nil, errors.Wrapf(err, "failed to bind queue %s", queue.Name)
	}
	deliveries, err := ch.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume queue %s", queue.Name)
	}
	return deliveries, nil
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	_ = q.publishChannel.Close()
	return errors.WithStack(q.conn.Close())
}
