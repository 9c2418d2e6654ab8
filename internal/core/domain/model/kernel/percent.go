package kernel

import (
	"github.com/shopspring/decimal"

	"coffeeshop/internal/pkg/errs"
)

var (
	percentMin = decimal.Zero
	percentMax = decimal.NewFromInt(100)
)

// Percent is a rate in the inclusive range [0, 100]. The zero value is 0%.
type Percent struct {
	value decimal.Decimal
}

// NewPercent validates the bounds and returns an *errs.ValueIsOutOfRangeError
// when value falls outside them.
func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.LessThan(percentMin) || value.GreaterThan(percentMax) {
		return Percent{}, errs.NewValueIsOutOfRangeError("percent", value.String(), percentMin.String(), percentMax.String())
	}
	return Percent{value: value}, nil
}

func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// Factor returns 1 - p/100, the multiplier applied to a subtotal.
func (p Percent) Factor() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(p.value.Div(percentMax))
}

// Apply returns amount reduced by the percentage.
func (p Percent) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.Factor())
}

func (p Percent) String() string {
	return p.value.String() + "%"
}
