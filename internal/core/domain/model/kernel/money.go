package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Money is a value object holding a monetary amount in minor currency units
// (cents). Amounts are never negative; arithmetic that would produce a
// negative amount is rejected.
//
// Money is immutable: operations return new values.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in major currency units.
// Intended for reporting output only; business comparisons use Cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsGreaterThan reports whether m exceeds other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
