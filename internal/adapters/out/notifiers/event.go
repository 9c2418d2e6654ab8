package notifiers

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderEvent is the JSON document published by the network sinks.
type OrderEvent struct {
	EventID         string          `json:"eventId"`
	OrderID         int             `json:"orderId"`
	Event           string          `json:"event"`
	Status          string          `json:"status"`
	StatusLabel     string          `json:"statusLabel"`
	Lines           []string        `json:"lines"`
	Total           decimal.Decimal `json:"total"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	OccurredAt      time.Time       `json:"occurredAt"`
}

// NewOrderEvent snapshots o. Total is computed from the current lines and
// discount, not taken from the cached total, and the order is not modified.
func NewOrderEvent(o *order.Order, event order.Event, occurredAt time.Time) OrderEvent {
	lines := make([]string, 0, o.LineCount())
	for _, line := range o.Lines() {
		lines = append(lines, line.DisplayName())
	}

	return OrderEvent{
		EventID:         kernel.NewUUID().String(),
		OrderID:         o.ID(),
		Event:           event.String(),
		Status:          o.Status().String(),
		StatusLabel:     o.Status().Label(),
		Lines:           lines,
		Total:           o.Discount().Apply(o.Subtotal()),
		DiscountPercent: o.Discount().Decimal(),
		OccurredAt:      occurredAt.UTC(),
	}
}
