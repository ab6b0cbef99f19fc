package kernel

import (
	"fmt"

	"autoservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through one of the constructor functions. It is returned when validating a
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a value object representing a non-negative monetary amount with at
// most two fraction digits. It backs service catalog prices, order line price
// snapshots, and order totals.
//
// Money follows these invariants:
//   - The amount is never negative
//   - The amount has at most two fraction digits
//   - Can only be created through a constructor function
//
// Money is immutable: arithmetic methods return new values. The zero value of
// the struct is invalid; a legitimate amount of zero is obtained via
// ZeroMoney.
type Money struct {
	amount decimal.Decimal

	// isConstructed distinguishes ZeroMoney from the zero value
	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount with validation.
//
// Returns a validation error when the amount is negative or carries more than
// two fraction digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	if !amount.Equal(amount.Round(2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than 2 fraction digits", amount))
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a decimal string ("25.00", "9.5", "100") into Money.
// Used at input boundaries where prices arrive as text.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money of amount zero. A freshly created order has
// a total of ZeroMoney until lines are added.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulInt returns the Money multiplied by an integer factor. Used for line
// totals (price snapshot times quantity).
func (m Money) MulInt(factor int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(factor))),
		isConstructed: true,
	}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fraction digits, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money was created through a constructor function.
// Returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
