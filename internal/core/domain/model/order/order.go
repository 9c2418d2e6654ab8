package order

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultDiscountLabel tags an order that has no special pricing.
const DefaultDiscountLabel = "обычный"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidDiscount is the cause of every rejected discount.
	ErrInvalidDiscount = errors.New("invalid discount")

	// ErrIndexOutOfRange is the cause of a line removal with a bad position.
	ErrIndexOutOfRange = errors.New("line index out of range")
)

// Order is the aggregate root for one customer purchase. It owns its lines,
// its status, its discount and the subscribers that observe its lifecycle.
//
// Order follows these invariants:
//   - id is positive and never changes
//   - status is always a recognised value; a new order starts as Created
//   - discount stays within [0, 100]
//   - every line satisfies the composition rules (enforced by NewLine)
//
// Order is not safe for concurrent use. The application service serialises
// access to all orders it owns.
type Order struct {
	id int

	lines []Line

	status Status

	discount      kernel.Percent
	discountLabel string

	// total is the value last produced by CalculateTotal.
	total decimal.Decimal

	subscribers []Subscriber

	isConstructed bool
}

// NewOrder creates an empty order with status Created, no discount and the
// default discount label.
//
// Parameters:
//   - id: Positive identifier, assigned by the order store
//
// Returns:
//   - *Order: The created order
//   - error: ValueIsOutOfRangeError when id is not positive
//
// Example:
//
//	o, err := order.NewOrder(1)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int) (*Order, error) {
	o := &Order{
		status:        Created,
		discountLabel: DefaultDiscountLabel,
		total:         decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

// Discount returns the current discount percent.
func (o *Order) Discount() kernel.Percent {
	return o.discount
}

func (o *Order) DiscountLabel() string {
	return o.discountLabel
}

// Total returns the cached total. It is zero until CalculateTotal runs and it
// is not refreshed by mutations.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) LineCount() int {
	return len(o.lines)
}

// Subscribers returns a copy of the subscriber list in registration order.
func (o *Order) Subscribers() []Subscriber {
	out := make([]Subscriber, len(o.subscribers))
	copy(out, o.subscribers)
	return out
}

// AddLine appends a line. Lines are already validated by NewLine, so the only
// failure is a zero-value Line.
func (o *Order) AddLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// RemoveLine deletes the line at index, shifting later lines down by one.
//
// Returns:
//   - nil when the line was removed
//   - error wrapping ErrIndexOutOfRange when index is outside [0, LineCount())
func (o *Order) RemoveLine(index int) error {
	if index < 0 || index >= len(o.lines) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"line index", index, 0, len(o.lines)-1, ErrIndexOutOfRange,
		)
	}
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return nil
}

// SetStatus moves the order to status and then emits EventStatusChanged.
//
// The transition is validated by Status.TransitionTo. Once it is accepted the
// new status is kept even when a subscriber fails; the subscriber error is
// returned so the caller can surface it.
//
// Example:
//
//	if err := o.SetStatus(ctx, order.Preparing); err != nil {
//	    if errors.Is(err, order.ErrInvalidState) {
//	        // status was not changed
//	    }
//	}
func (o *Order) SetStatus(ctx context.Context, status Status) error {
	next, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}
	o.status = next
	return o.Emit(ctx, EventStatusChanged)
}

// SetDiscount replaces the discount percent and its label. The order is left
// unchanged when percent is outside [0, 100].
func (o *Order) SetDiscount(percent decimal.Decimal, label string) error {
	p, err := kernel.NewPercent(percent)
	if err != nil {
		return errors.Join(ErrInvalidDiscount, err)
	}
	o.discount = p
	o.discountLabel = label
	return nil
}

// Subtotal is the sum of line prices before the discount.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.lines {
		sum = sum.Add(line.Price())
	}
	return sum
}

// CalculateTotal computes Subtotal × (1 − discount/100), stores it as the
// cached total and returns it. The value is not rounded.
func (o *Order) CalculateTotal() decimal.Decimal {
	o.total = o.discount.Apply(o.Subtotal())
	return o.total
}

// Subscribe registers sub for future events. Registering the same subscriber
// twice delivers every event to it twice.
func (o *Order) Subscribe(sub Subscriber) error {
	if sub == nil {
		return errs.NewValueIsRequiredError("subscriber")
	}
	o.subscribers = append(o.subscribers, sub)
	return nil
}

// Emit delivers event to every subscriber in registration order. Delivery
// stops at the first subscriber error, which is returned with the event name
// attached.
func (o *Order) Emit(ctx context.Context, event Event) error {
	for _, sub := range o.subscribers {
		if err := sub.Notify(ctx, o, event); err != nil {
			return fmt.Errorf("notify %s for order %d: %w", event, o.id, err)
		}
	}
	return nil
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "unbounded")
	}
	o.id = id
	return nil
}
