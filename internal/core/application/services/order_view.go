package services

import (
	"coffeeshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is a consistent copy of an order taken under the service lock.
// Adapters that outlive a single call read views instead of live aggregates.
type OrderView struct {
	ID              int
	Status          order.Status
	Lines           []order.Line
	DiscountPercent decimal.Decimal
	DiscountLabel   string
	// CachedTotal is the value stored by the last CalculateTotal call.
	CachedTotal decimal.Decimal
	Subtotal    decimal.Decimal
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		Status:          o.Status(),
		Lines:           o.Lines(),
		DiscountPercent: o.Discount().Decimal(),
		DiscountLabel:   o.DiscountLabel(),
		CachedTotal:     o.Total(),
		Subtotal:        o.Subtotal(),
	}
}
