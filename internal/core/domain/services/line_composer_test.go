package services_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	catalog, err := menu.NewCatalog([]menu.Item{
		menu.MustNewItem("Эспрессо", menu.Beverage, "2.5"),
		menu.MustNewItem("Латте", menu.Beverage, "4.0"),
		menu.MustNewItem("Чизкейк", menu.Dessert, "4.5"),
		menu.MustNewItem("Ванильный сироп", menu.AddOn, "0.5"),
		menu.MustNewItem("Шот эспрессо", menu.AddOn, "1.0"),
	})
	require.NoError(t, err)
	return catalog
}

func TestLineComposer_Compose(t *testing.T) {
	catalog := newCatalog(t)
	composer := services.NewLineComposer()

	t.Run("should compose a beverage with add-ons", func(t *testing.T) {
		line, err := composer.Compose(catalog, "Латте", []string{"Ванильный сироп", "Шот эспрессо"})

		require.NoError(t, err)
		assert.Equal(t, "Латте (+ Ванильный сироп, Шот эспрессо)", line.DisplayName())
		assert.True(t, decimal.RequireFromString("5.5").Equal(line.Price()))
	})

	t.Run("should compose a plain dessert", func(t *testing.T) {
		line, err := composer.Compose(catalog, "Чизкейк", nil)

		require.NoError(t, err)
		assert.Equal(t, "Чизкейк", line.DisplayName())
	})

	t.Run("should allow the same add-on twice", func(t *testing.T) {
		line, err := composer.Compose(catalog, "Эспрессо", []string{"Шот эспрессо", "Шот эспрессо"})

		require.NoError(t, err)
		assert.Len(t, line.AddOns(), 2)
		assert.True(t, decimal.RequireFromString("4.5").Equal(line.Price()))
	})

	t.Run("should reject add-ons on a dessert", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Чизкейк", []string{"Ванильный сироп"})

		require.ErrorIs(t, err, order.ErrInvalidAddOn)
	})

	t.Run("should reject an add-on ordered on its own", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Ванильный сироп", nil)

		require.ErrorIs(t, err, order.ErrInvalidAddOn)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("add-on check runs before add-on lookup", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Ванильный сироп", []string{"Нет такого"})

		require.ErrorIs(t, err, order.ErrInvalidAddOn)
	})

	t.Run("should report an unknown item", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Раф", nil)

		require.ErrorIs(t, err, menu.ErrItemNotFound)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report an unknown add-on", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Латте", []string{"Кленовый сироп"})

		require.ErrorIs(t, err, menu.ErrItemNotFound)
	})

	t.Run("a beverage name is not an add-on", func(t *testing.T) {
		_, err := composer.Compose(catalog, "Латте", []string{"Эспрессо"})

		require.ErrorIs(t, err, menu.ErrItemNotFound)
	})

	t.Run("should require a menu", func(t *testing.T) {
		_, err := composer.Compose(nil, "Латте", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
