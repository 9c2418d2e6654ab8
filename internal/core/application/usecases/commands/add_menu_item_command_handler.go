package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// AddMenuItemCommandHandler appends composed lines to orders.
//
// Example:
//
//	handler := NewAddMenuItemCommandHandler(orderService)
//	cmd, _ := NewAddMenuItemCommand(1, "Латте", []string{"Ванильный сироп"})
//
//	line, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidAddOn) {
//	    // the selection breaks a composition rule
//	}
type AddMenuItemCommandHandler struct {
	orders OrderManager
}

func NewAddMenuItemCommandHandler(orders OrderManager) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{orders: orders}
}

// Handle returns the line that was appended to the order.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (order.Line, error) {
	if err := cmd.Validate(); err != nil {
		return order.Line{}, err
	}
	if h.orders == nil {
		return order.Line{}, errs.NewValueIsRequiredError("order service")
	}

	return h.orders.AddMenuItem(ctx, cmd.OrderID(), cmd.ItemName(), cmd.AddOnNames())
}
