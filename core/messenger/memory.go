package messenger

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// Memory is an in-process Messenger. Messages stay pending until acked and
// are never redelivered, which is enough to drive stream loops in tests and
// local replays.
type Memory struct {
	batchSize int

	mu      sync.Mutex
	nextID  uint64
	queues  map[Stream][]Message
	pending map[Stream]map[uint64]Message
	notify  map[Stream]chan struct{}
}

var _ Messenger = (*Memory)(nil)

func NewMemory(batchSize int) *Memory {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Memory{
		batchSize: batchSize,
		queues:    make(map[Stream][]Message),
		pending:   make(map[Stream]map[uint64]Message),
		notify:    make(map[Stream]chan struct{}),
	}
}

func (m *Memory) signal(stream Stream) chan struct{} {
	ch, ok := m.notify[stream]
	if !ok {
		ch = make(chan struct{}, 1)
		m.notify[stream] = ch
	}
	return ch
}

// Publish appends data to stream and returns its message id.
func (m *Memory) Publish(stream Stream, data []byte) uint64 {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.queues[stream] = append(m.queues[stream], Message{ID: id, Data: data})
	ch := m.signal(stream)
	m.mu.Unlock()

	select {
	case ch <- struct{}{}:
	default:
	}
	return id
}

func (m *Memory) Receive(ctx context.Context, stream Stream) ([]Message, error) {
	for {
		m.mu.Lock()
		queue := m.queues[stream]
		if len(queue) > 0 {
			n := min(len(queue), m.batchSize)
			batch := append([]Message(nil), queue[:n]...)
			m.queues[stream] = queue[n:]
			if m.pending[stream] == nil {
				m.pending[stream] = make(map[uint64]Message)
			}
			for _, msg := range batch {
				m.pending[stream][msg.ID] = msg
			}
			m.mu.Unlock()
			return batch, nil
		}
		ch := m.signal(stream)
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-ch:
		}
	}
}

func (m *Memory) Ack(_ context.Context, stream Stream, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending[stream], id)
	return nil
}

// Pending returns the ids of received but unacknowledged messages.
func (m *Memory) Pending(stream Stream) []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uint64, 0, len(m.pending[stream]))
	for id := range m.pending[stream] {
		ids = append(ids, id)
	}
	return ids
}

func (m *Memory) Close() error {
	return nil
}
