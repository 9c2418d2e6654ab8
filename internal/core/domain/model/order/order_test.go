package order_test

import (
	"context"
	"errors"
	"testing"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	name   string
	order  int
	event  order.Event
	status order.Status
}

type recorder struct {
	events *[]recordedEvent
	name   string
	err    error
}

func (r recorder) Notify(_ context.Context, o *order.Order, event order.Event) error {
	*r.events = append(*r.events, recordedEvent{name: r.name, order: o.ID(), event: event, status: o.Status()})
	return r.err
}

func mustLine(t *testing.T, item menu.Item, addOns ...menu.Item) order.Line {
	t.Helper()
	line, err := order.NewLine(item, addOns)
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		require.NoError(t, o.Validate())
		assert.Equal(t, 1, o.ID())
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.Discount().IsZero())
		assert.Equal(t, order.DefaultDiscountLabel, o.DiscountLabel())
		assert.True(t, o.Total().IsZero())
		assert.Empty(t, o.Lines())
		assert.Empty(t, o.Subscribers())
	})

	t.Run("non-positive id", func(t *testing.T) {
		for _, id := range []int{0, -3} {
			o, err := order.NewOrder(id)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, o)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderLines(t *testing.T) {
	t.Run("add and remove keep insertion order", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		first := mustLine(t, latte, vanilla)
		second := mustLine(t, cheesecake)
		third := mustLine(t, espresso)
		require.NoError(t, o.AddLine(first))
		require.NoError(t, o.AddLine(second))
		require.NoError(t, o.AddLine(third))

		require.NoError(t, o.RemoveLine(1))

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.True(t, first.ID().IsEqual(lines[0].ID()))
		assert.True(t, third.ID().IsEqual(lines[1].ID()))
	})

	t.Run("remove with a bad index leaves lines untouched", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(mustLine(t, latte)))

		for _, idx := range []int{-1, 1, 5} {
			err := o.RemoveLine(idx)
			require.ErrorIs(t, err, order.ErrIndexOutOfRange)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.Equal(t, 1, o.LineCount())
	})

	t.Run("remove from an empty order fails", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		require.ErrorIs(t, o.RemoveLine(0), order.ErrIndexOutOfRange)
	})

	t.Run("zero value line is rejected", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		require.ErrorIs(t, o.AddLine(order.Line{}), order.ErrLineIsNotConstructed)
		assert.Zero(t, o.LineCount())
	})

	t.Run("Lines returns a copy", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(mustLine(t, latte)))

		lines := o.Lines()
		lines[0] = mustLine(t, espresso)

		assert.Equal(t, "Латте", o.Lines()[0].DisplayName())
	})
}

func TestOrderDiscountAndTotal(t *testing.T) {
	t.Run("total applies the discount", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(mustLine(t, latte, vanilla)))  // 4.5
		require.NoError(t, o.AddLine(mustLine(t, cheesecake)))      // 4.5
		require.NoError(t, o.AddLine(mustLine(t, espresso)))        // 2.5

		require.NoError(t, o.SetDiscount(decimal.NewFromInt(10), "студент"))

		assert.True(t, decimal.RequireFromString("11.5").Equal(o.Subtotal()))
		assert.True(t, decimal.RequireFromString("10.35").Equal(o.CalculateTotal()))
		assert.True(t, decimal.RequireFromString("10.35").Equal(o.Total()))
		assert.Equal(t, "студент", o.DiscountLabel())
	})

	t.Run("cached total is not refreshed by mutations", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(mustLine(t, latte)))
		o.CalculateTotal()

		require.NoError(t, o.AddLine(mustLine(t, espresso)))

		assert.True(t, decimal.RequireFromString("4").Equal(o.Total()))
		assert.True(t, decimal.RequireFromString("6.5").Equal(o.CalculateTotal()))
	})

	t.Run("full discount gives zero", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(mustLine(t, latte)))
		require.NoError(t, o.SetDiscount(decimal.NewFromInt(100), "бесплатно"))

		assert.True(t, o.CalculateTotal().IsZero())
	})

	t.Run("out of range discount keeps previous values", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.SetDiscount(decimal.NewFromInt(15), "постоянный"))

		for _, p := range []string{"-0.01", "100.5", "150"} {
			err := o.SetDiscount(decimal.RequireFromString(p), "ошибка")
			require.ErrorIs(t, err, order.ErrInvalidDiscount)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}

		assert.True(t, decimal.NewFromInt(15).Equal(o.Discount().Decimal()))
		assert.Equal(t, "постоянный", o.DiscountLabel())
	})
}

func TestOrderSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("status changes then subscribers hear about it", func(t *testing.T) {
		var events []recordedEvent
		o, err := order.NewOrder(3)
		require.NoError(t, err)
		require.NoError(t, o.Subscribe(recorder{events: &events, name: "kitchen"}))

		require.NoError(t, o.SetStatus(ctx, order.Preparing))

		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, []recordedEvent{
			{name: "kitchen", order: 3, event: order.EventStatusChanged, status: order.Preparing},
		}, events)
	})

	t.Run("same status is rejected without notification", func(t *testing.T) {
		var events []recordedEvent
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.Subscribe(recorder{events: &events}))

		require.ErrorIs(t, o.SetStatus(ctx, order.Created), order.ErrInvalidState)
		require.ErrorIs(t, o.SetStatus(ctx, order.Unknown), order.ErrInvalidState)

		assert.Equal(t, order.Created, o.Status())
		assert.Empty(t, events)
	})

	t.Run("subscriber failure is returned but the status is kept", func(t *testing.T) {
		var events []recordedEvent
		boom := errors.New("display offline")
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.Subscribe(recorder{events: &events, name: "first", err: boom}))
		require.NoError(t, o.Subscribe(recorder{events: &events, name: "second"}))

		err = o.SetStatus(ctx, order.Ready)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, order.Ready, o.Status())
		require.Len(t, events, 1)
		assert.Equal(t, "first", events[0].name)
	})
}

func TestOrderEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("registration order and duplicates", func(t *testing.T) {
		var events []recordedEvent
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		a := recorder{events: &events, name: "a"}
		b := recorder{events: &events, name: "b"}
		require.NoError(t, o.Subscribe(a))
		require.NoError(t, o.Subscribe(b))
		require.NoError(t, o.Subscribe(a))

		require.NoError(t, o.Emit(ctx, order.EventCreated))

		names := make([]string, 0, len(events))
		for _, e := range events {
			names = append(names, e.name)
			assert.Equal(t, order.EventCreated, e.event)
		}
		assert.Equal(t, []string{"a", "b", "a"}, names)
		assert.Len(t, o.Subscribers(), 3)
	})

	t.Run("SubscriberFunc adapts a function", func(t *testing.T) {
		var got order.Event
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		require.NoError(t, o.Subscribe(order.SubscriberFunc(func(_ context.Context, _ *order.Order, e order.Event) error {
			got = e
			return nil
		})))

		require.NoError(t, o.Emit(ctx, order.EventCreated))
		assert.Equal(t, order.EventCreated, got)
	})

	t.Run("nil subscriber is rejected", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		require.ErrorIs(t, o.Subscribe(nil), errs.ErrValueIsRequired)
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)

		require.NoError(t, o.Emit(ctx, order.EventStatusChanged))
	})
}
