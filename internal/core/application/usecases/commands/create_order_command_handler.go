package commands

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

// CreateOrderCommandHandler creates orders through the order service.
type CreateOrderCommandHandler struct {
	orders OrderManager
}

func NewCreateOrderCommandHandler(orders OrderManager) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle returns the id of the new order. When a subscriber fails after the
// order was stored, the id is returned together with the error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if h.orders == nil {
		return 0, errs.NewValueIsRequiredError("order service")
	}

	o, err := h.orders.CreateOrder(ctx)
	if o == nil {
		return 0, err
	}
	return o.ID(), err
}
