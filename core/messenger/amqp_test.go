package messenger

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
	failAt string
	closed int
	bound  []string
}

func (c *fakeChannel) step(name string) error {
	if c.failAt == name {
		return errBroker
	}
	return nil
}

func (c *fakeChannel) Qos(int, int, bool) error { return c.step("Qos") }

func (c *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	return amqp.Queue{Name: name}, c.step("QueueDeclare")
}

func (c *fakeChannel) ExchangeDeclare(string, string, bool, bool, bool, bool, amqp.Table) error {
	return c.step("ExchangeDeclare")
}

func (c *fakeChannel) QueueBind(name, key, exchange string, _ bool, _ amqp.Table) error {
	c.bound = append(c.bound, exchange+"/"+key+"->"+name)
	return c.step("QueueBind")
}

func (c *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	if err := c.step("Consume"); err != nil {
		return nil, err
	}
	return make(chan amqp.Delivery), nil
}

func (c *fakeChannel) Ack(uint64, bool) error { return nil }

func (c *fakeChannel) Close() error {
	c.closed++
	return nil
}

func TestAMQPSubscribe(t *testing.T) {
	t.Parallel()

	m := &AMQPMessenger{
		config:    AMQPConfig{Exchange: "solana", QueuePrefix: "gum", BatchSize: 10},
		consumers: make(map[Stream]*consumer),
	}

	t.Run("consumes the stream queue", func(t *testing.T) {
		t.Parallel()
		ch := &fakeChannel{}
		c, err := m.subscribe(ch, StreamTransaction)
		require.NoError(t, err)
		assert.Same(t, ch, c.channel)
		assert.NotNil(t, c.deliveries)
		assert.Zero(t, ch.closed)
		assert.Equal(t, []string{"solana/TRANSACTION->gum.TRANSACTION"}, ch.bound)
	})

	for _, step := range []string{"Qos", "QueueDeclare", "ExchangeDeclare", "QueueBind", "Consume"} {
		t.Run("closes the channel when "+step+" fails", func(t *testing.T) {
			t.Parallel()
			ch := &fakeChannel{failAt: step}
			_, err := m.subscribe(ch, StreamAccount)
			require.ErrorIs(t, err, errBroker)
			assert.Equal(t, 1, ch.closed)
		})
	}
}
