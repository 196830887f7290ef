package taskqueue

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// Memory is an in-process queue for tests and single-process runs.
type Memory struct {
	mu       sync.Mutex
	tasks    chan Task
	enqueued []Task
	settled  map[string]int
}

var (
	_ Enqueuer = (*Memory)(nil)
	_ Consumer = (*Memory)(nil)
)

func NewMemory(capacity int) *Memory {
	return &Memory{
		tasks:   make(chan Task, capacity),
		settled: make(map[string]int),
	}
}

func (m *Memory) Enqueue(ctx context.Context, task Task) error {
	m.mu.Lock()
	m.enqueued = append(m.enqueued, task)
	m.mu.Unlock()
	select {
	case m.tasks <- task:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Enqueued returns every task enqueued so far.
func (m *Memory) Enqueued() []Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Task(nil), m.enqueued...)
}

// Settled counts settled deliveries by outcome, "ack" or "reject".
func (m *Memory) Settled(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settled[outcome]
}

type memoryDelivery struct {
	task  Task
	queue *Memory
}

func (d *memoryDelivery) Task() Task { return d.task }

func (d *memoryDelivery) Ack() error {
	d.queue.settle("ack")
	return nil
}

func (d *memoryDelivery) Reject() error {
	d.queue.settle("reject")
	return nil
}

func (m *Memory) settle(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settled[outcome]++
}

func (m *Memory) Consume(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case task := <-m.tasks:
				select {
				case out <- &memoryDelivery{task: task, queue: m}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
