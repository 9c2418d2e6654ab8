package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the whole menu grouped by category.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type MenuItemResponse struct {
	Name     string
	Category menu.Category
	Price    decimal.Decimal
}

// GetMenuQueryResponse keeps each section in menu order.
type GetMenuQueryResponse struct {
	Beverages []MenuItemResponse
	Desserts  []MenuItemResponse
	AddOns    []MenuItemResponse
}
