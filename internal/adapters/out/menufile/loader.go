// Package menufile builds the shop catalog from a YAML document. A default
// menu is embedded in the binary and used when no file is configured.
package menufile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"coffeeshop/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// ErrEmptyMenu is returned for a document without a single item.
var ErrEmptyMenu = errors.New("menu has no items")

// ItemDTO is one entry of a menu section. Price is kept as a string in YAML
// so that values such as 0.7 are read exactly.
type ItemDTO struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// DocumentDTO is the YAML layout of a menu file.
type DocumentDTO struct {
	Beverages []ItemDTO `yaml:"beverages"`
	Desserts  []ItemDTO `yaml:"desserts"`
	AddOns    []ItemDTO `yaml:"add_ons"`
}

// Default returns the catalog embedded in the binary.
func Default() (*menu.Catalog, error) {
	return Parse(defaultMenu)
}

// Load reads the menu at path. An empty path selects the embedded menu.
func Load(path string) (*menu.Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func Read(r io.Reader) (*menu.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML menu. Unknown keys are rejected so that a misspelled
// section does not silently drop items.
func Parse(data []byte) (*menu.Catalog, error) {
	var doc DocumentDTO
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	items, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}
	return menu.NewCatalog(items)
}

func decodeStrict(data []byte, out *DocumentDTO) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (d DocumentDTO) toDomain() ([]menu.Item, error) {
	var (
		items   []menu.Item
		errList []error
	)
	for _, section := range []struct {
		category menu.Category
		entries  []ItemDTO
	}{
		{menu.Beverage, d.Beverages},
		{menu.Dessert, d.Desserts},
		{menu.AddOn, d.AddOns},
	} {
		for _, entry := range section.entries {
			item, err := entry.toDomain(section.category)
			if err != nil {
				errList = append(errList, err)
				continue
			}
			items = append(items, item)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}

func (e ItemDTO) toDomain(category menu.Category) (menu.Item, error) {
	price, err := decimal.NewFromString(e.Price)
	if err != nil {
		return menu.Item{}, fmt.Errorf("%s %q: invalid price %q: %w", category, e.Name, e.Price, err)
	}
	item, err := menu.NewItem(e.Name, category, price)
	if err != nil {
		return menu.Item{}, fmt.Errorf("%s %q: %w", category, e.Name, err)
	}
	return item, nil
}
