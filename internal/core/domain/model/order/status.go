package order

import (
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/pkg/errs"
)

// ErrInvalidState is the cause of every rejected status transition.
var ErrInvalidState = errors.New("invalid order state")

// Status is the preparation state of an order.
//
// State transitions:
//
//	Created ──> Preparing ──> Ready ──> Paid
//	   ^____________|___________|________|
//	      (any distinct status is reachable)
//
// The machine is deliberately permissive: the only rejected transitions are
// the self-transition and a transition to an unrecognised value.
type Status int

const (
	// Unknown is the zero value and is never a valid target.
	Unknown Status = iota
	Created
	Preparing
	Ready
	// Paid marks an order as settled; paid orders are not listed as active.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Preparing: "Preparing",
		Ready:     "Ready",
		Paid:      "Paid",
	}
}

//nolint:exhaustive // Unknown has no display label
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Created:   "создан",
		Preparing: "готовится",
		Ready:     "готов",
		Paid:      "оплачен",
	}
}

// AllStatuses returns the recognised statuses in workflow order.
func AllStatuses() []Status {
	return []Status{Created, Preparing, Ready, Paid}
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %d is not a valid status", ErrInvalidState, s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the customer-facing text for the status. The labels are
// opaque display strings and are not translated.
func (s Status) Label() string {
	return getStatusLabels()[s]
}

// IsActive reports whether the order still appears in active order listings.
func (s Status) IsActive() bool {
	return s != Paid
}

// TransitionTo validates a move from s to next and returns next.
//
// Returns:
//   - (next, nil) when next is recognised and differs from s
//   - (Unknown, error) wrapping ErrInvalidState otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if next == s {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: order is already %s", ErrInvalidState, s),
		)
	}
	return next, nil
}

// ParseStatus accepts the English name ("Preparing", case-insensitive) or the
// display label ("готовится").
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for _, status := range AllStatuses() {
		if strings.EqualFold(status.String(), trimmed) || status.Label() == trimmed {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%w: %q is not a valid status", ErrInvalidState, s),
	)
}
