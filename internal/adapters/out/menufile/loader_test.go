package menufile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coffeeshop/internal/adapters/out/menufile"
	"coffeeshop/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []menu.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name())
	}
	return out
}

func TestDefault(t *testing.T) {
	catalog, err := menufile.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Эспрессо", "Капучино", "Латте"}, names(catalog.ListBeverages()))
	assert.Equal(t, []string{"Чизкейк", "Круассан"}, names(catalog.ListDesserts()))
	assert.Equal(t, []string{
		"Ванильный сироп", "Карамельный сироп", "Кокосовое молоко",
		"Миндальное молоко", "Шот эспрессо", "Взбитые сливки",
	}, names(catalog.ListAddOns()))

	milk, err := catalog.LookupAddOn("Кокосовое молоко")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.7").Equal(milk.BasePrice()))
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses the embedded menu", func(t *testing.T) {
		catalog, err := menufile.Load("")
		require.NoError(t, err)
		assert.Len(t, catalog.ListBeverages(), 3)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
beverages:
  - name: Раф
    price: "4.2"
add_ons:
  - name: Лавандовый сироп
    price: "0.55"
`), 0o600))

		catalog, err := menufile.Load(path)
		require.NoError(t, err)

		raf, err := catalog.LookupBeverage("Раф")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("4.2").Equal(raf.BasePrice()))
		assert.Empty(t, catalog.ListDesserts())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := menufile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRead(t *testing.T) {
	t.Run("unknown section is rejected", func(t *testing.T) {
		_, err := menufile.Read(strings.NewReader("drinks:\n  - name: Чай\n    price: \"1\"\n"))
		require.Error(t, err)
	})

	t.Run("bad price and empty name are both reported", func(t *testing.T) {
		_, err := menufile.Read(strings.NewReader(`
beverages:
  - name: Латте
    price: four
desserts:
  - name: ""
    price: "1"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid price")
		assert.Contains(t, err.Error(), "value is required")
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := menufile.Read(strings.NewReader(`
desserts:
  - name: Круассан
    price: "3"
  - name: Круассан
    price: "3.5"
`))
		require.ErrorIs(t, err, menu.ErrDuplicateItem)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := menufile.Read(strings.NewReader(""))
		require.ErrorIs(t, err, menufile.ErrEmptyMenu)
	})
}
