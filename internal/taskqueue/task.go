// Package taskqueue hands follow-up work from the indexer to background
// workers.
package taskqueue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
)

type Task struct {
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewTask(name string, payload any) (Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Task{}, errors.Wrapf(errs.InvalidArgument, "can't encode %s task payload: %v", name, err)
	}
	return Task{
		Name:      name,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the task payload into out.
func (t Task) Decode(out any) error {
	if err := json.Unmarshal(t.Payload, out); err != nil {
		return errors.Wrapf(errs.ParsingError, "can't decode %s task payload: %v", t.Name, err)
	}
	return nil
}

// Enqueuer is the fire-and-forget side of the queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, task Task) error
}

// Delivery is a received task that must be settled exactly once.
type Delivery interface {
	Task() Task
	Ack() error
	// Reject drops the task without redelivery.
	Reject() error
}

// Consumer is the worker side of the queue.
type Consumer interface {
	Consume(ctx context.Context) (<-chan Delivery, error)
}
