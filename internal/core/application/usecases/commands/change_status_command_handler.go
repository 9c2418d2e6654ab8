package commands

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

// ChangeStatusCommandHandler drives order status transitions. Subscribers of
// the order are notified synchronously inside Handle.
type ChangeStatusCommandHandler struct {
	orders OrderManager
}

func NewChangeStatusCommandHandler(orders OrderManager) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{orders: orders}
}

func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if h.orders == nil {
		return errs.NewValueIsRequiredError("order service")
	}

	return h.orders.ChangeStatus(ctx, cmd.OrderID(), cmd.Status())
}
