// Package commands contains the business operations that modify orders.
// Every command is a validated value object built by its constructor; its
// handler checks the constructor guard and delegates to the order service.
package commands

import (
	"context"

	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderManager is the part of the order service that command handlers drive.
// *services.OrderService implements it.
type OrderManager interface {
	CreateOrder(ctx context.Context) (*order.Order, error)
	AddMenuItem(ctx context.Context, orderID int, itemName string, addOnNames []string) (order.Line, error)
	RemoveItem(ctx context.Context, orderID, index int) error
	SetDiscount(ctx context.Context, orderID int, percent decimal.Decimal, label string) error
	CalculateTotalView(ctx context.Context, orderID int) (services.OrderView, error)
	ChangeStatus(ctx context.Context, orderID int, status order.Status) error
}

func validateOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}
	return nil
}
