package menu

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable catalog entry. Two items are equal when their name and
// category match; prices are not part of identity.
type Item struct {
	name      string
	category  Category
	basePrice decimal.Decimal

	isConstructed bool
}

// NewItem validates that name is non-empty, category is recognised and
// basePrice is not negative. All violations are reported together.
func NewItem(name string, category Category, basePrice decimal.Decimal) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setCategory(category),
		item.setBasePrice(basePrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// MustNewItem is NewItem for fixed data known to be valid. It panics otherwise.
func MustNewItem(name string, category Category, basePrice string) Item {
	item, err := NewItem(name, category, decimal.RequireFromString(basePrice))
	if err != nil {
		panic(err)
	}
	return item
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Category() Category {
	return i.category
}

func (i Item) BasePrice() decimal.Decimal {
	return i.basePrice
}

func (i Item) IsAddOn() bool {
	return i.category == AddOn
}

func (i Item) IsEqual(other Item) bool {
	return i.name == other.name && i.category == other.category
}

func (i Item) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.name, i.category, i.basePrice.StringFixed(2))
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setBasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("base price", fmt.Errorf("%s is negative", price))
	}
	i.basePrice = price
	return nil
}
