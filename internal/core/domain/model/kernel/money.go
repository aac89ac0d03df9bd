package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. It wraps a decimal value so that
// menu prices, snapshot prices, and order totals never accumulate
// floating-point drift. Amounts are non-negative; arithmetic stays in decimal
// space and only renders to two fractional digits at the presentation edge.
//
// The zero value is a valid zero amount, which lets aggregates start from
// Money{} and sum into it.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromString parses an amount such as "28.00". Negative amounts are
// rejected.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", d.String()),
		)
	}
	return Money{amount: d}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Decimal exposes the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two fractional digits, e.g. "98.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate rejects negative amounts that bypassed the constructors, e.g.
// corrupted rows restored from persistence.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
