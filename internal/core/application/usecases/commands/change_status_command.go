package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand moves an order to a new status. Only recognised
// statuses are accepted; whether the move is allowed is decided by the order.
//
// Example:
//
//	status, err := order.ParseStatus("готов")
//	cmd, err := NewChangeStatusCommand(orderID, status)
//	err = handler.Handle(ctx, cmd)
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int
	status  order.Status

	guard guard.ConstructorGuard
}

func NewChangeStatusCommand(orderID int, status order.Status) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) OrderID() int {
	return c.orderID
}

func (c ChangeStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeStatusCommand) setOrderID(orderID int) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
