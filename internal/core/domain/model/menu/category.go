package menu

import (
	"fmt"
	"strings"

	"coffeeshop/internal/pkg/errs"
)

// Category tags an Item with the role it plays in an order.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	Beverage
	Dessert
	AddOn
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Beverage: "beverage",
		Dessert:  "dessert",
		AddOn:    "add-on",
	}
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// AcceptsAddOns reports whether an item of this category may carry add-ons.
func (c Category) AcceptsAddOns() bool {
	return c == Beverage
}

// ParseCategory accepts the names produced by String, case-insensitively.
// "addon" and "add_on" are accepted as spellings of AddOn.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "addon", "add_on":
		return AddOn, nil
	}
	for c, name := range getCategoryStrings() {
		if name == normalized {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}
