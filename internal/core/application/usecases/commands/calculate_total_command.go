package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrCalculateTotalCommandIsNotConstructed = errors.New(
	"CalculateTotalCommand must be created via NewCalculateTotalCommand constructor",
)

// CalculateTotalCommand recomputes an order total. It is a command because
// the result is stored as the order's cached total.
type CalculateTotalCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

func NewCalculateTotalCommand(orderID int) (CalculateTotalCommand, error) {
	cmd := CalculateTotalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CalculateTotalCommand{}, err
	}

	return cmd, nil
}

func (c CalculateTotalCommand) Validate() error {
	return c.guard.Validate(ErrCalculateTotalCommandIsNotConstructed)
}

func (c CalculateTotalCommand) OrderID() int {
	return c.orderID
}

func (c *CalculateTotalCommand) setOrderID(orderID int) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
