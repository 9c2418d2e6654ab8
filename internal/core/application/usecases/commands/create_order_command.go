package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand requests a new empty order. It carries no data; the
// order service assigns the id.
//
// Example:
//
//	cmd := NewCreateOrderCommand()
//	handler := NewCreateOrderCommandHandler(orderService)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewCreateOrderCommand() CreateOrderCommand {
	return CreateOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
