package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
// Prices must be created via NewPrice so that a legitimate zero amount can be
// distinguished from an uninitialized value.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is an immutable monetary amount in a currency-agnostic unit.
// Amounts are non-negative and finite; the zero value is invalid.
//
// Example:
//
//	price, err := kernel.NewPrice(1500)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Printf("%.0f", price.Amount()) // Output: 1500
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from the given amount.
// The amount must be a non-negative finite number.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", amount))
	}

	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// Amount returns the numeric amount.
func (p Price) Amount() float64 {
	return p.amount
}

// IsEqual reports whether two prices carry the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// Validate ensures the Price was created via NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
