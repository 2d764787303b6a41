package kernel

import (
	"errors"

	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	PriceMin         = decimal.Zero
	PriceMax         = decimal.RequireFromString("1000.00")
	BillingAmountMin = decimal.Zero
	BillingAmountMax = decimal.RequireFromString("10000.00")
)

var (
	ErrPriceIsNotConstructed         = errors.New("Price must be created via NewPrice constructor")
	ErrBillingAmountIsNotConstructed = errors.New("BillingAmount must be created via NewBillingAmount constructor")
)

// Price is a monetary amount between 0.00 and 1000.00 inclusive.
// It is used both for unit prices and for line totals.
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice validates d against the Price bounds.
//
// Returns:
//   - Price: The validated price
//   - error: errs.ValueIsOutOfRangeError naming "Price" when d is outside [0.00..1000.00]
func NewPrice(d decimal.Decimal) (Price, error) {
	v, err := CreateDecimal("Price", PriceMin, PriceMax, d)
	if err != nil {
		return Price{}, err
	}
	return Price{value: v, guard: guard.NewConstructorGuard()}, nil
}

// ZeroPrice returns a constructed price of 0.00.
func ZeroPrice() Price {
	return Price{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// MultiplyPrice computes quantity × unit price and re-validates the result,
// so a line total above the Price bound fails here.
//
// Example:
//
//	unit, _ := NewPrice(decimal.NewFromInt(10))
//	total, err := MultiplyPrice(decimal.NewFromInt(2), unit) // 20.00
func MultiplyPrice(quantity decimal.Decimal, price Price) (Price, error) {
	if err := price.Validate(); err != nil {
		return Price{}, err
	}
	return NewPrice(quantity.Mul(price.value))
}

// Validate ensures the Price was created through the constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Value() decimal.Decimal {
	return p.value
}

func (p Price) String() string {
	return p.value.StringFixed(2)
}

// BillingAmount is the total amount to bill, between 0.00 and 10000.00 inclusive.
type BillingAmount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewBillingAmount validates d against the BillingAmount bounds.
func NewBillingAmount(d decimal.Decimal) (BillingAmount, error) {
	v, err := CreateDecimal("BillingAmount", BillingAmountMin, BillingAmountMax, d)
	if err != nil {
		return BillingAmount{}, err
	}
	return BillingAmount{value: v, guard: guard.NewConstructorGuard()}, nil
}

// SumPrices adds all prices and validates the total as a BillingAmount.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		if err := p.Validate(); err != nil {
			return BillingAmount{}, err
		}
		total = total.Add(p.value)
	}
	return NewBillingAmount(total)
}

// Validate ensures the BillingAmount was created through the constructor.
func (b BillingAmount) Validate() error {
	return b.guard.Validate(ErrBillingAmountIsNotConstructed)
}

func (b BillingAmount) Value() decimal.Decimal {
	return b.value
}

// IsPositive reports whether there is anything to bill.
func (b BillingAmount) IsPositive() bool {
	return b.value.IsPositive()
}

func (b BillingAmount) String() string {
	return b.value.StringFixed(2)
}
