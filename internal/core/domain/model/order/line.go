package order

import (
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAddOn is the cause of every composition rule violation.
	ErrInvalidAddOn = errors.New("invalid add-on")

	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one purchased item with the add-ons selected for it. It cannot be
// changed after construction; replacing a line means removing it and adding a
// new one.
type Line struct {
	id     kernel.UUID
	item   menu.Item
	addOns []menu.Item

	isConstructed bool
}

// NewLine applies the composition rules before building the line:
//   - an add-on is never the primary item
//   - every extra must be an add-on
//   - only items whose category accepts add-ons may carry them
//
// Repeated add-ons are allowed and there is no limit on their number.
func NewLine(item menu.Item, addOns []menu.Item) (Line, error) {
	if err := item.Validate(); err != nil {
		return Line{}, err
	}
	if item.IsAddOn() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("%w: %q cannot be ordered on its own", ErrInvalidAddOn, item.Name()),
		)
	}

	for _, addOn := range addOns {
		if err := addOn.Validate(); err != nil {
			return Line{}, err
		}
		if !addOn.IsAddOn() {
			return Line{}, errs.NewValueIsInvalidErrorWithCause(
				"add-on",
				fmt.Errorf("%w: %q is a %s", ErrInvalidAddOn, addOn.Name(), addOn.Category()),
			)
		}
	}

	if len(addOns) > 0 && !item.Category().AcceptsAddOns() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"add-on",
			fmt.Errorf("%w: add-ons apply only to beverages, %q is a %s", ErrInvalidAddOn, item.Name(), item.Category()),
		)
	}

	line := Line{
		id:            kernel.NewUUID(),
		item:          item,
		addOns:        make([]menu.Item, len(addOns)),
		isConstructed: true,
	}
	copy(line.addOns, addOns)
	return line, nil
}

func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l Line) ID() kernel.UUID {
	return l.id
}

func (l Line) Item() menu.Item {
	return l.item
}

func (l Line) AddOns() []menu.Item {
	out := make([]menu.Item, len(l.addOns))
	copy(out, l.addOns)
	return out
}

// DisplayName is the item name, followed by " (+ a, b)" when add-ons exist.
func (l Line) DisplayName() string {
	if len(l.addOns) == 0 {
		return l.item.Name()
	}
	extras := make([]string, 0, len(l.addOns))
	for _, addOn := range l.addOns {
		extras = append(extras, addOn.Name())
	}
	return fmt.Sprintf("%s (+ %s)", l.item.Name(), strings.Join(extras, ", "))
}

// Price is the item's base price plus the base price of every add-on.
func (l Line) Price() decimal.Decimal {
	price := l.item.BasePrice()
	for _, addOn := range l.addOns {
		price = price.Add(addOn.BasePrice())
	}
	return price
}
