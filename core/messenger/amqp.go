package messenger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"

	// exchangeKindTopic routes envelopes to stream queues by routing key.
	exchangeKindTopic = "topic"
)

type AMQPConfig struct {
	URL         string        `mapstructure:"url"`
	Exchange    string        `mapstructure:"exchange"`
	QueuePrefix string        `mapstructure:"queue_prefix"`
	BatchSize   int           `mapstructure:"batch_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	// MaxRetryElapsed bounds how long the initial dial is retried.
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
}

// amqpChannel is the part of *amqp.Channel a consumer uses.
type amqpChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Ack(tag uint64, multiple bool) error
	Close() error
}

type consumer struct {
	channel    amqpChannel
	deliveries <-chan amqp.Delivery
}

// AMQPMessenger reads each stream from its own durable queue over a
// dedicated channel. Prefetch is set to the batch size so unacknowledged
// messages never exceed one batch per stream.
type AMQPMessenger struct {
	config AMQPConfig
	conn   *amqp.Connection

	mu        sync.Mutex
	consumers map[Stream]*consumer
}

var _ Messenger = (*AMQPMessenger)(nil)

// DialAMQP connects to the broker, retrying with exponential backoff.
func DialAMQP(ctx context.Context, config AMQPConfig) (*AMQPMessenger, error) {
	if config.URL == "" {
		return nil, errors.Wrap(errs.ConfigurationError, "messenger url is required")
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = 3 * time.Second
	}

	conn, err := dial(ctx, config.URL, config.DialTimeout, config.MaxRetryElapsed)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &AMQPMessenger{
		config:    config,
		conn:      conn,
		consumers: make(map[Stream]*consumer),
	}, nil
}

func dial(ctx context.Context, url string, timeout, maxElapsed time.Duration) (*amqp.Connection, error) {
	var conn *amqp.Connection
	connect := func() (err error) {
		conn, err = amqp.DialConfig(url, amqp.Config{
			Heartbeat: defaultHeartbeat,
			Locale:    defaultLocale,
			Dial:      amqp.DefaultDial(timeout),
		})
		if err != nil {
			logger.WarnContext(ctx, "amqp: dial failed, retrying", slogx.Error(err))
		}
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxInterval = 10 * time.Second
	if maxElapsed > 0 {
		expBackoff.MaxElapsedTime = maxElapsed
	}
	if err := backoff.Retry(connect, backoff.WithContext(expBackoff, ctx)); err != nil {
		return nil, errors.Wrap(err, "can't connect to amqp broker")
	}
	return conn, nil
}

func (m *AMQPMessenger) queueName(stream Stream) string {
	if m.config.QueuePrefix == "" {
		return stream.String()
	}
	return fmt.Sprintf("%s.%s", m.config.QueuePrefix, stream)
}

func (m *AMQPMessenger) consumer(stream Stream) (*consumer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.consumers[stream]; ok {
		return c, nil
	}

	ch, err := m.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open amqp channel")
	}
	c, err := m.subscribe(ch, stream)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	m.consumers[stream] = c
	return c, nil
}

// subscribe declares the queue of stream on ch and starts consuming it.
// ch is closed if any step fails.
func (m *AMQPMessenger) subscribe(ch amqpChannel, stream Stream) (_ *consumer, err error) {
	defer func() {
		if err != nil {
			_ = ch.Close()
		}
	}()

	if err := ch.Qos(m.config.BatchSize, 0, false); err != nil {
		return nil, errors.Wrap(err, "failed to set prefetch")
	}

	queue, err := ch.QueueDeclare(
		m.queueName(stream),
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare queue for stream %s", stream)
	}

	if m.config.Exchange != "" {
		if err := ch.ExchangeDeclare(m.config.Exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
			return nil, errors.Wrapf(err, "failed to declare exchange %s", m.config.Exchange)
		}
		if err := ch.QueueBind(queue.Name, stream.String(), m.config.Exchange, false, nil); err != nil {
			return nil, errors.Wrapf(err, "failed to bind queue %s", queue.Name)
		}
	}

	deliveries, err := ch.Consume(
		queue.Name,
		"",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume queue %s", queue.Name)
	}

	logger.Info("amqp: consuming stream", slog.String("stream", stream.String()), slog.String("queue", queue.Name))
	return &consumer{channel: ch, deliveries: deliveries}, nil
}

func (m *AMQPMessenger) Receive(ctx context.Context, stream Stream) ([]Message, error) {
	c, err := m.consumer(stream)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var first amqp.Delivery
	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case d, ok := <-c.deliveries:
		if !ok {
			return nil, errors.Wrapf(errs.InternalError, "amqp delivery channel of stream %s closed", stream)
		}
		first = d
	}

	msgs := make([]Message, 0, m.config.BatchSize)
	msgs = append(msgs, Message{ID: first.DeliveryTag, Data: first.Body})
	for len(msgs) < m.config.BatchSize {
		select {
		case d, ok := <-c.deliveries:
			if !ok {
				return msgs, nil
			}
			msgs = append(msgs, Message{ID: d.DeliveryTag, Data: d.Body})
		default:
			return msgs, nil
		}
	}
	return msgs, nil
}

func (m *AMQPMessenger) Ack(_ context.Context, stream Stream, id uint64) error {
	m.mu.Lock()
	c, ok := m.consumers[stream]
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(errs.InvalidArgument, "stream %s has no consumer", stream)
	}
	if err := c.channel.Ack(id, false); err != nil {
		return errors.Wrapf(err, "failed to ack message %d on stream %s", id, stream)
	}
	return nil
}

func (m *AMQPMessenger) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.consumers {
		_ = c.channel.Close()
	}
	return errors.WithStack(m.conn.Close())
}
