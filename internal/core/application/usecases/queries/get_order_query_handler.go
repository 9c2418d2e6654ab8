package queries

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order or an error wrapping services.ErrOrderNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}
	if h.orders == nil {
		return OrderResponse{}, errs.NewValueIsRequiredError("order service")
	}

	view, err := h.orders.ViewOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(view), nil
}
