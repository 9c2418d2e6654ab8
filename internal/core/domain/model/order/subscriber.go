package order

import "context"

// Event names a lifecycle notification.
type Event string

const (
	// EventCreated is emitted once, right after the order is stored.
	EventCreated Event = "created"
	// EventStatusChanged is emitted after every successful status transition.
	EventStatusChanged Event = "status_changed"
)

func (e Event) String() string {
	return string(e)
}

// Subscriber receives lifecycle events of the orders it is registered on.
// Notify runs synchronously on the caller's goroutine; a returned error stops
// delivery to the remaining subscribers and reaches the caller unchanged.
type Subscriber interface {
	Notify(ctx context.Context, o *Order, event Event) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, o *Order, event Event) error

func (f SubscriberFunc) Notify(ctx context.Context, o *Order, event Event) error {
	return f(ctx, o, event)
}
