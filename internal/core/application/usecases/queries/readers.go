// Package queries contains the read-only operations of the coffee shop. Query
// handlers return response structs detached from the live aggregates, so the
// callers may keep them after the order service lock is released.
package queries

import (
	"context"

	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/domain/model/menu"
)

type (
	// OrderReader is the read side of the order service.
	OrderReader interface {
		ViewOrder(ctx context.Context, id int) (services.OrderView, error)
		ViewActiveOrders(ctx context.Context) ([]services.OrderView, error)
	}

	// MenuReader lists the catalog sections.
	MenuReader interface {
		ListBeverages() []menu.Item
		ListDesserts() []menu.Item
		ListAddOns() []menu.Item
	}
)
