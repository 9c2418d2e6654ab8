package commands

import (
	"context"

	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CalculateTotalResult pairs the total with the discount it was computed with.
type CalculateTotalResult struct {
	Total           decimal.Decimal
	DiscountPercent decimal.Decimal
}

type CalculateTotalCommandHandler struct {
	orders OrderManager
}

func NewCalculateTotalCommandHandler(orders OrderManager) CalculateTotalCommandHandler {
	return CalculateTotalCommandHandler{orders: orders}
}

// Handle returns the unrounded total. Round only for display.
func (h CalculateTotalCommandHandler) Handle(ctx context.Context, cmd CalculateTotalCommand) (CalculateTotalResult, error) {
	if err := cmd.Validate(); err != nil {
		return CalculateTotalResult{}, err
	}
	if h.orders == nil {
		return CalculateTotalResult{}, errs.NewValueIsRequiredError("order service")
	}

	view, err := h.orders.CalculateTotalView(ctx, cmd.OrderID())
	if err != nil {
		return CalculateTotalResult{}, err
	}
	return CalculateTotalResult{Total: view.CachedTotal, DiscountPercent: view.DiscountPercent}, nil
}
