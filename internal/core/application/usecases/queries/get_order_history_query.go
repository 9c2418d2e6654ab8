package queries

import (
	"errors"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// ErrJournalDisabled is returned when no event journal is configured.
var ErrJournalDisabled = errors.New("event journal is disabled")

// GetOrderHistoryQuery reads the recorded lifecycle events of an order from
// the event journal, oldest first.
type GetOrderHistoryQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID int) (GetOrderHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() int {
	return q.orderID
}
