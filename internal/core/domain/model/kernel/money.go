package kernel

import (
	"fmt"
	"math"

	"grocery/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in cents.
// Storing cents as an integer keeps order arithmetic exact: a subtotal of
// 9.25 plus a 5.99 delivery fee is always exactly 15.24, which the order
// invariants depend on.
//
// The zero value is a valid amount of zero. Money is immutable; arithmetic
// methods return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(350) // 3.50
//	total := price.MultiplyQuantity(2)        // 7.00
//	fmt.Println(total)                        // Output: 7.00
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Returns an error for negative amounts; prices and totals are never negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat converts a decimal amount (e.g. 3.50) into Money, rounding
// to the nearest cent. Intended for boundaries that speak in decimals, such
// as catalog feeds; internal arithmetic never goes back through floats.
func MoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%v is not a valid amount", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units.
// Only for presentation; never feed the result back into arithmetic.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQuantity returns the amount multiplied by an item quantity.
func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount as a plain decimal, e.g. "15.24".
// Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
