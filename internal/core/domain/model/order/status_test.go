package order_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("labels are the customer-facing strings", func(t *testing.T) {
		assert.Equal(t, "создан", order.Created.Label())
		assert.Equal(t, "готовится", order.Preparing.Label())
		assert.Equal(t, "готов", order.Ready.Label())
		assert.Equal(t, "оплачен", order.Paid.Label())
		assert.Empty(t, order.Unknown.Label())
	})

	t.Run("String returns the English name", func(t *testing.T) {
		assert.Equal(t, "Created", order.Created.String())
		assert.Equal(t, "Paid", order.Paid.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})

	t.Run("only Paid is inactive", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			assert.Equal(t, s != order.Paid, s.IsActive(), s.String())
		}
	})

	t.Run("Validate rejects unknown values", func(t *testing.T) {
		require.NoError(t, order.Ready.Validate())

		err := order.Unknown.Validate()
		require.ErrorIs(t, err, order.ErrInvalidState)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		require.ErrorIs(t, order.Status(99).Validate(), order.ErrInvalidState)
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("any distinct recognised status is reachable", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				if from == to {
					continue
				}
				next, err := from.TransitionTo(to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("Paid can move back to Preparing", func(t *testing.T) {
		next, err := order.Paid.TransitionTo(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("self transition is rejected", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			next, err := s.TransitionTo(s)
			require.ErrorIs(t, err, order.ErrInvalidState)
			assert.Equal(t, order.Unknown, next)
		}
	})

	t.Run("unrecognised target is rejected", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, order.ErrInvalidState)

		_, err = order.Created.TransitionTo(order.Status(7))
		require.ErrorIs(t, err, order.ErrInvalidState)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want order.Status
	}{
		{"Created", order.Created},
		{"preparing", order.Preparing},
		{" READY ", order.Ready},
		{"оплачен", order.Paid},
		{"готовится", order.Preparing},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := order.ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown text is rejected", func(t *testing.T) {
		got, err := order.ParseStatus("shipped")
		require.ErrorIs(t, err, order.ErrInvalidState)
		assert.Equal(t, order.Unknown, got)

		_, err = order.ParseStatus("Unknown")
		require.ErrorIs(t, err, order.ErrInvalidState)
	})
}
