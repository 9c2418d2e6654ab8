// Package ports defines the contracts between the coffee shop core and its
// infrastructure: where orders live, where the menu comes from and where the
// event history can be read back.
package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository is the store of live orders. It owns identity: ids come from
// NextID, start at 1 and never repeat for the lifetime of the store.
type OrderRepository interface {
	// NextID reserves the next order id.
	NextID(ctx context.Context) (int, error)

	// Add stores a new order. The order must be valid and its id must not be
	// present yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the stored order by id. The returned pointer is the stored
	// aggregate, so changes made through it are visible to later calls.
	// A miss yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*order.Order, error)

	// List returns every stored order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)
}
