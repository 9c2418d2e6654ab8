package ports

import "coffeeshop/internal/core/domain/model/menu"

// MenuCatalog is the read-only menu used to resolve names into items.
// *menu.Catalog implements it; adapters load one from a file.
type MenuCatalog interface {
	LookupAny(name string) (menu.Item, error)
	LookupAddOn(name string) (menu.Item, error)

	ListBeverages() []menu.Item
	ListDesserts() []menu.Item
	ListAddOns() []menu.Item
}
