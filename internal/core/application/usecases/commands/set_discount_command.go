package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetDiscountCommandIsNotConstructed = errors.New(
	"SetDiscountCommand must be created via NewSetDiscountCommand constructor",
)

// SetDiscountCommand replaces an order's discount. The percent range is
// enforced by the order itself; the label is stored exactly as given.
//
// Example:
//
//	cmd, err := NewSetDiscountCommand(orderID, decimal.NewFromInt(10), "студент")
type SetDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID int
	percent decimal.Decimal
	label   string

	guard guard.ConstructorGuard
}

func NewSetDiscountCommand(orderID int, percent decimal.Decimal, label string) (SetDiscountCommand, error) {
	cmd := SetDiscountCommand{
		percent: percent,
		label:   label,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SetDiscountCommand{}, err
	}

	return cmd, nil
}

func (c SetDiscountCommand) Validate() error {
	return c.guard.Validate(ErrSetDiscountCommandIsNotConstructed)
}

func (c SetDiscountCommand) OrderID() int {
	return c.orderID
}

func (c SetDiscountCommand) Percent() decimal.Decimal {
	return c.percent
}

func (c SetDiscountCommand) Label() string {
	return c.label
}

func (c *SetDiscountCommand) setOrderID(orderID int) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

