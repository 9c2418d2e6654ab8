package menu

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrItemNotFound is the cause attached to every failed catalog lookup.
	ErrItemNotFound = errors.New("menu item not found")

	ErrDuplicateItem = errors.New("menu item is listed twice")
)

// Catalog is a read-only index over a fixed list of items. Lists preserve the
// order the items were supplied in.
type Catalog struct {
	beverages section
	desserts  section
	addOns    section
}

type section struct {
	items  []Item
	byName map[string]int
}

func newSection() section {
	return section{byName: make(map[string]int)}
}

func (s *section) add(item Item) error {
	if _, exists := s.byName[item.Name()]; exists {
		return fmt.Errorf("%w: %s %q", ErrDuplicateItem, item.Category(), item.Name())
	}
	s.byName[item.Name()] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

func (s section) get(name string) (Item, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

func (s section) list() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// NewCatalog indexes items by category. Names must be unique within a
// category; the same name may appear once as a beverage and once as an add-on.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		beverages: newSection(),
		desserts:  newSection(),
		addOns:    newSection(),
	}

	var errList []error
	for _, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if err := c.sectionFor(item.Category()).add(item); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) sectionFor(category Category) *section {
	switch category {
	case Beverage:
		return &c.beverages
	case Dessert:
		return &c.desserts
	default:
		return &c.addOns
	}
}

func (c *Catalog) LookupBeverage(name string) (Item, error) {
	return c.lookup(c.beverages, Beverage, name)
}

func (c *Catalog) LookupDessert(name string) (Item, error) {
	return c.lookup(c.desserts, Dessert, name)
}

func (c *Catalog) LookupAddOn(name string) (Item, error) {
	return c.lookup(c.addOns, AddOn, name)
}

// LookupAny searches beverages, then desserts, then add-ons.
func (c *Catalog) LookupAny(name string) (Item, error) {
	for _, s := range []section{c.beverages, c.desserts, c.addOns} {
		if item, ok := s.get(name); ok {
			return item, nil
		}
	}
	return Item{}, errs.NewObjectNotFoundErrorWithCause("item", name, ErrItemNotFound)
}

func (c *Catalog) ListBeverages() []Item {
	return c.beverages.list()
}

func (c *Catalog) ListDesserts() []Item {
	return c.desserts.list()
}

func (c *Catalog) ListAddOns() []Item {
	return c.addOns.list()
}

func (c *Catalog) lookup(s section, category Category, name string) (Item, error) {
	item, ok := s.get(name)
	if !ok {
		return Item{}, errs.NewObjectNotFoundErrorWithCause(category.String(), name, ErrItemNotFound)
	}
	return item, nil
}
