package commands

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

type RemoveItemCommandHandler struct {
	orders OrderManager
}

func NewRemoveItemCommandHandler(orders OrderManager) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{orders: orders}
}

func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if h.orders == nil {
		return errs.NewValueIsRequiredError("order service")
	}

	return h.orders.RemoveItem(ctx, cmd.OrderID(), cmd.Index())
}
