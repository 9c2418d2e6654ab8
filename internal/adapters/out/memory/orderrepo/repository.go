// Package orderrepo keeps live orders in process memory. It is the arena of
// the order service: a map from id to aggregate, an insertion-ordered id list
// and a counter that hands out ids starting at 1.
package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository in memory. Orders
// are never evicted; they live as long as the repository.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[int]*order.Order
	order  []int
	lastID int
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[int]*order.Order),
	}
}

// NextID reserves the next id. Reserved ids are never reused, even when the
// caller does not add an order with it.
func (r *MemoryOrderRepository) NextID(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	return r.lastID, nil
}

// Add stores a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("order %d is already stored", aggregate.ID()),
		)
	}
	r.orders[aggregate.ID()] = aggregate
	r.order = append(r.order, aggregate.ID())
	if aggregate.ID() > r.lastID {
		r.lastID = aggregate.ID()
	}
	return nil
}

// Get retrieves an order by id.
func (r *MemoryOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// List returns every order in insertion order.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.order))
	for _, id := range r.order {
		orders = append(orders, r.orders[id])
	}
	return orders, nil
}
