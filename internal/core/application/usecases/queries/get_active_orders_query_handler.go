package queries

import (
	"context"

	"coffeeshop/internal/pkg/errs"
)

type GetActiveOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetActiveOrdersQueryHandler(orders OrderReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orders: orders}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.orders == nil {
		return nil, errs.NewValueIsRequiredError("order service")
	}

	views, err := h.orders.ViewActiveOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		orders = append(orders, newOrderResponse(view))
	}
	return orders, nil
}
