package kernel

import (
	"fmt"
	"math"

	"tacoshare/internal/pkg/errs"
)

// ErrPriceIsNegative is returned when constructing a price below zero.
// Catalog prices and computed totals are always non-negative.
var ErrPriceIsNegative = errs.NewValueIsInvalidError("price must not be negative")

// Price is an immutable money value with a fixed two-decimal-place unit,
// stored as an integer number of cents. Using integer arithmetic keeps sums
// exact: intermediate results are never truncated, and addition is commutative,
// which is what makes order pricing permutation-invariant.
//
// The zero value is a valid zero price.
type Price struct {
	cents int64
}

// ZeroPrice returns the zero money value.
func ZeroPrice() Price {
	return Price{}
}

// NewPriceFromCents creates a Price from an integer number of cents.
// Negative amounts are rejected.
func NewPriceFromCents(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrPriceIsNegative
	}
	return Price{cents: cents}, nil
}

// PriceFromFloat converts a decimal amount (e.g. 9.50) to a Price, rounding to
// the nearest cent. Intended for catalog feeds and test fixtures; domain
// arithmetic stays in cents.
func PriceFromFloat(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrPriceIsNegative
	}
	return Price{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// IsZero reports whether the price is exactly zero.
func (p Price) IsZero() bool {
	return p.cents == 0
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{cents: p.cents + other.cents}
}

// MulQuantity returns the price multiplied by a non-negative item quantity.
func (p Price) MulQuantity(quantity int) Price {
	return Price{cents: p.cents * int64(quantity)}
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "11.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}
