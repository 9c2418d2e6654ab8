package notifiers

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/internal/core/domain/model/order"
)

type isolated struct {
	next    order.Subscriber
	logger  *slog.Logger
	timeout time.Duration
}

// Isolate wraps sub so that its failures are logged and reported as success.
// Use it for sinks whose outage must not abort order operations; subscribers
// after it in the list keep receiving events. A positive timeout bounds every
// call to sub, so a stalled broker holds the caller for at most that long.
func Isolate(sub order.Subscriber, logger *slog.Logger, name string, timeout time.Duration) order.Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &isolated{next: sub, logger: logger.With("subscriber", name), timeout: timeout}
}

func (s *isolated) Notify(ctx context.Context, o *order.Order, event order.Event) error {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.next.Notify(callCtx, o, event); err != nil {
		s.logger.WarnContext(ctx, "subscriber failed",
			"order_id", o.ID(), "event", event.String(), "error", err)
	}
	return nil
}
