package taskqueue

import (
	"testing"

	"github.com/cockroachdb/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker closed the channel")

// fakeChannel fails the step named by failAt.
type fakeChannel struct {
	failAt   string
	closed   int
	prefetch int
}

func (c *fakeChannel) step(name string) error {
	if c.failAt == name {
		return errBroker
	}
	return nil
}

func (c *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	c.prefetch = prefetchCount
	return c.step("Qos")
}

func (c *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	return amqp.Queue{Name: name}, c.step("QueueDeclare")
}

func (c *fakeChannel) QueueBind(string, string, string, bool, amqp.Table) error {
	return c.step("QueueBind")
}

func (c *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	if err := c.step("Consume"); err != nil {
		return nil, err
	}
	return make(chan amqp.Delivery), nil
}

func (c *fakeChannel) Close() error {
	c.closed++
	return nil
}

func TestAMQPSubscribe(t *testing.T) {
	t.Parallel()

	q := &AMQPQueue{config: Config{Exchange: "tasks", Queue: "download_metadata", Prefetch: 4}}

	t.Run("consumes the task queue", func(t *testing.T) {
		t.Parallel()
		ch := &fakeChannel{}
		deliveries, err := q.subscribe(ch)
		require.NoError(t, err)
		assert.NotNil(t, deliveries)
		assert.Equal(t, 4, ch.prefetch)
		assert.Zero(t, ch.closed)
	})

	for _, step := range []string{"Qos", "QueueDeclare", "QueueBind", "Consume"} {
		t.Run("closes the channel when "+step+" fails", func(t *testing.T) {
			t.Parallel()
			ch := &fakeChannel{failAt: step}
			_, err := q.subscribe(ch)
			require.ErrorIs(t, err, errBroker)
			assert.Equal(t, 1, ch.closed)
		})
	}
}
