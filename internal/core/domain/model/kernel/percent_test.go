package kernel_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercent(t *testing.T) {
	t.Run("should accept the inclusive bounds", func(t *testing.T) {
		for _, v := range []string{"0", "0.5", "10", "99.99", "100"} {
			p, err := kernel.NewPercent(decimal.RequireFromString(v))

			require.NoError(t, err, v)
			assert.True(t, decimal.RequireFromString(v).Equal(p.Decimal()))
		}
	})

	t.Run("should reject values outside the bounds", func(t *testing.T) {
		for _, v := range []string{"-0.01", "-5", "100.01", "150"} {
			p, err := kernel.NewPercent(decimal.RequireFromString(v))

			require.Error(t, err, v)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.True(t, p.IsZero())
		}
	})
}

func TestPercent_Apply(t *testing.T) {
	t.Run("should reduce the amount by the rate", func(t *testing.T) {
		p, _ := kernel.NewPercent(decimal.NewFromInt(10))

		assert.True(t, decimal.NewFromInt(9).Equal(p.Apply(decimal.NewFromInt(10))))
	})

	t.Run("zero percent leaves the amount unchanged", func(t *testing.T) {
		var p kernel.Percent

		assert.True(t, decimal.RequireFromString("4.7").Equal(p.Apply(decimal.RequireFromString("4.7"))))
	})

	t.Run("hundred percent makes the amount zero", func(t *testing.T) {
		p, _ := kernel.NewPercent(decimal.NewFromInt(100))

		assert.True(t, p.Apply(decimal.RequireFromString("12.3")).IsZero())
	})
}

func TestPercent_String(t *testing.T) {
	p, _ := kernel.NewPercent(decimal.RequireFromString("12.5"))

	assert.Equal(t, "12.5%", p.String())
}
