package services

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// ItemLookup is the part of the menu a LineComposer reads. *menu.Catalog
// satisfies it.
type ItemLookup interface {
	LookupAny(name string) (menu.Item, error)
	LookupAddOn(name string) (menu.Item, error)
}

// LineComposer turns a customer's selection, given as menu names, into an
// order line.
//
// Business rules, checked in this order:
//   - the primary name must exist in the menu (menu.ErrItemNotFound)
//   - the primary item must not be an add-on (order.ErrInvalidAddOn)
//   - every add-on name must exist among add-ons (menu.ErrItemNotFound)
//   - add-ons are accepted only on beverages (order.ErrInvalidAddOn)
//
// Repeated add-ons and any number of them are allowed.
//
// Example usage:
//
//	composer := services.NewLineComposer()
//	line, err := composer.Compose(catalog, "Латте", []string{"Ванильный сироп"})
//	if errors.Is(err, order.ErrInvalidAddOn) {
//	    // reject the selection
//	}
type LineComposer struct{}

func NewLineComposer() LineComposer {
	return LineComposer{}
}

// Compose resolves itemName and addOnNames against lookup and builds the line.
// Nothing is built when any rule fails.
func (c LineComposer) Compose(lookup ItemLookup, itemName string, addOnNames []string) (order.Line, error) {
	if lookup == nil {
		return order.Line{}, errs.NewValueIsRequiredError("menu")
	}

	item, err := lookup.LookupAny(itemName)
	if err != nil {
		return order.Line{}, err
	}
	if item.IsAddOn() {
		return order.Line{}, errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("%w: %q cannot be ordered on its own", order.ErrInvalidAddOn, item.Name()),
		)
	}

	addOns, err := c.resolveAddOns(lookup, addOnNames)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(item, addOns)
}

func (c LineComposer) resolveAddOns(lookup ItemLookup, names []string) ([]menu.Item, error) {
	addOns := make([]menu.Item, 0, len(names))
	for _, name := range names {
		addOn, err := lookup.LookupAddOn(name)
		if err != nil {
			return nil, err
		}
		addOns = append(addOns, addOn)
	}
	return addOns, nil
}
