package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand removes the line at a zero-based position. The position
// is checked against the order by the domain, not here.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID int
	index   int

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(orderID, index int) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) OrderID() int {
	return c.orderID
}

func (c RemoveItemCommand) Index() int {
	return c.index
}

func (c *RemoveItemCommand) setOrderID(orderID int) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
