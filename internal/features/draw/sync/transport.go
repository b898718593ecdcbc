package sync

import "context"

// Handler consumes one received broadcast message.
type Handler func(Message)

// Transport is a same-host broadcast channel. Delivery is best-effort FIFO:
// lost messages are not retried and subscribers that attach late do not see
// earlier traffic.
type Transport interface {
	// Publish broadcasts a message to every subscriber, including the
	// publisher itself.
	Publish(ctx context.Context, msg Message) error

	// Subscribe registers a handler and starts delivery. It does not block;
	// delivery stops when ctx is cancelled.
	Subscribe(ctx context.Context, h Handler) error

	// Close tears the channel down.
	Close() error
}
