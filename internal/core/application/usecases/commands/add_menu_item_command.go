package commands

import (
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand adds one menu item, with optional add-ons, to an order.
// Names are matched exactly against the menu after trimming spaces.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand(orderID, "Капучино", []string{"Кокосовое молоко"})
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//	line, err := handler.Handle(ctx, cmd)
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	orderID    int
	itemName   string
	addOnNames []string

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(orderID int, itemName string, addOnNames []string) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemName(itemName),
		cmd.setAddOnNames(addOnNames),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) OrderID() int {
	return c.orderID
}

func (c AddMenuItemCommand) ItemName() string {
	return c.itemName
}

// AddOnNames returns a copy of the requested add-on names in request order.
func (c AddMenuItemCommand) AddOnNames() []string {
	out := make([]string, len(c.addOnNames))
	copy(out, c.addOnNames)
	return out
}

func (c *AddMenuItemCommand) setOrderID(orderID int) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddMenuItemCommand) setItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	c.itemName = name
	return nil
}

func (c *AddMenuItemCommand) setAddOnNames(names []string) error {
	c.addOnNames = make([]string, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return errs.NewValueIsRequiredErrorWithCause("add-on name", fmt.Errorf("empty name at position %d", i))
		}
		c.addOnNames = append(c.addOnNames, name)
	}
	return nil
}
