// Package messenger abstracts the message bus that carries ACCOUNT and
// TRANSACTION envelopes into the indexer.
package messenger

import (
	"context"
)

type Stream string

const (
	StreamAccount     Stream = "ACCOUNT"
	StreamTransaction Stream = "TRANSACTION"
)

func (s Stream) String() string {
	return string(s)
}

// Message is one raw envelope. ID is only meaningful to the Messenger that
// returned it.
type Message struct {
	ID   uint64
	Data []byte
}

type Messenger interface {
	// Receive blocks until at least one message is available on stream or ctx
	// is done, then returns up to the configured batch size of messages.
	Receive(ctx context.Context, stream Stream) ([]Message, error)

	// Ack acknowledges a message returned by Receive. Unacknowledged messages
	// are redelivered after a restart.
	Ack(ctx context.Context, stream Stream, id uint64) error

	Close() error
}
