package queries

import (
	"errors"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(1)
//	resp, err := NewGetOrderQueryHandler(orderService).Handle(ctx, query)
//	fmt.Printf("Order %d: %s\n", resp.ID, resp.Status.Label())
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int {
	return q.orderID
}
