package kernel

import (
	"fmt"
	"math"

	"docflow/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// The amount is stored in minor currency units (cents) so that arithmetic
// and payment-processor calls stay integer-safe; the float view exists only
// for presentation.
//
// The zero value represents zero money and is valid. Negative amounts are
// rejected at construction.
type Money struct {
	minorUnits int64
}

// NewMoney creates Money from an amount in minor currency units.
// The amount must not be negative.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", minorUnits, 0, math.MaxInt64)
	}
	return Money{minorUnits: minorUnits}, nil
}

// MoneyFromFloat creates Money from a major-unit amount (e.g. 25.00),
// rounding to the nearest minor unit.
func MoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxFloat64)
	}
	return Money{minorUnits: int64(math.Round(amount * 100))}, nil
}

// MinorUnits returns the amount in minor currency units.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// Float returns the amount in major currency units for display.
func (m Money) Float() float64 {
	return float64(m.minorUnits) / 100
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.minorUnits > 0
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}

// String formats the amount in major units with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float())
}
