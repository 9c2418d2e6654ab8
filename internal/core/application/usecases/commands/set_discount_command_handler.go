package commands

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

type SetDiscountCommandHandler struct {
	orders OrderManager
}

func NewSetDiscountCommandHandler(orders OrderManager) SetDiscountCommandHandler {
	return SetDiscountCommandHandler{orders: orders}
}

// Handle applies the discount; order.ErrInvalidDiscount leaves the order unchanged.
func (h SetDiscountCommandHandler) Handle(ctx context.Context, cmd SetDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if h.orders == nil {
		return errs.NewValueIsRequiredError("order service")
	}

	return h.orders.SetDiscount(ctx, cmd.OrderID(), cmd.Percent(), cmd.Label())
}
