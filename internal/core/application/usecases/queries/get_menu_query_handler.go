package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"
)

type GetMenuQueryHandler struct {
	menu MenuReader
}

func NewGetMenuQueryHandler(menu MenuReader) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}
	if h.menu == nil {
		return GetMenuQueryResponse{}, errs.NewValueIsRequiredError("menu")
	}

	return GetMenuQueryResponse{
		Beverages: toMenuItems(h.menu.ListBeverages()),
		Desserts:  toMenuItems(h.menu.ListDesserts()),
		AddOns:    toMenuItems(h.menu.ListAddOns()),
	}, nil
}

func toMenuItems(items []menu.Item) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItemResponse{
			Name:     item.Name(),
			Category: item.Category(),
			Price:    item.BasePrice(),
		})
	}
	return out
}
