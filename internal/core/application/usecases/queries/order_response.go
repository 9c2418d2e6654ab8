package queries

import (
	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderLineResponse describes one order line for display.
type OrderLineResponse struct {
	ID     string
	Item   string
	AddOns []string
	Name   string
	Price  decimal.Decimal
}

// OrderResponse describes an order for display. Total is the cached value
// from the last total calculation, Subtotal is computed from the lines.
type OrderResponse struct {
	ID              int
	Status          order.Status
	Lines           []OrderLineResponse
	DiscountPercent decimal.Decimal
	DiscountLabel   string
	Total           decimal.Decimal
	Subtotal        decimal.Decimal
}

func newOrderResponse(view services.OrderView) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		addOns := make([]string, 0)
		for _, addOn := range line.AddOns() {
			addOns = append(addOns, addOn.Name())
		}
		lines = append(lines, OrderLineResponse{
			ID:     line.ID().String(),
			Item:   line.Item().Name(),
			AddOns: addOns,
			Name:   line.DisplayName(),
			Price:  line.Price(),
		})
	}

	return OrderResponse{
		ID:              view.ID,
		Status:          view.Status,
		Lines:           lines,
		DiscountPercent: view.DiscountPercent,
		DiscountLabel:   view.DiscountLabel,
		Total:           view.CachedTotal,
		Subtotal:        view.Subtotal,
	}
}
