package kernel

import (
	"errors"
	"fmt"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	UnitQuantityMin = 1
	UnitQuantityMax = 1000
)

var (
	KilogramQuantityMin = decimal.RequireFromString("0.05")
	KilogramQuantityMax = decimal.RequireFromString("100.00")
)

var (
	ErrUnitQuantityIsNotConstructed     = errors.New("UnitQuantity must be created via NewUnitQuantity")
	ErrKilogramQuantityIsNotConstructed = errors.New("KilogramQuantity must be created via NewKilogramQuantity")
	ErrOrderQuantityIsNotConstructed    = errors.New("OrderQuantity must be created via NewOrderQuantity")
)

// UnitQuantity is a whole number of items between 1 and 1000 inclusive.
type UnitQuantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewUnitQuantity checks that i lies between 1 and 1000.
func NewUnitQuantity(fieldName string, i int) (UnitQuantity, error) {
	v, err := CreateInt(fieldName, UnitQuantityMin, UnitQuantityMax, i)
	if err != nil {
		return UnitQuantity{}, err
	}
	return UnitQuantity{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the UnitQuantity was created through the constructor.
func (q UnitQuantity) Validate() error {
	return q.guard.Validate(ErrUnitQuantityIsNotConstructed)
}

func (q UnitQuantity) Value() int {
	return q.value
}

// KilogramQuantity is a weight between 0.05 and 100.00 kg inclusive.
type KilogramQuantity struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewKilogramQuantity checks that d lies between 0.05 and 100.
func NewKilogramQuantity(fieldName string, d decimal.Decimal) (KilogramQuantity, error) {
	v, err := CreateDecimal(fieldName, KilogramQuantityMin, KilogramQuantityMax, d)
	if err != nil {
		return KilogramQuantity{}, err
	}
	return KilogramQuantity{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the KilogramQuantity was created through the constructor.
func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}

func (q KilogramQuantity) Value() decimal.Decimal {
	return q.value
}

// OrderQuantity is either a UnitQuantity or a KilogramQuantity. The variant
// always agrees with the Kind of the product code it was created for.
type OrderQuantity struct {
	kind      ProductKind
	units     UnitQuantity
	kilograms KilogramQuantity
	guard     guard.ConstructorGuard
}

// NewOrderQuantity measures raw according to the product family:
// widgets take a whole number of units, gizmos a weight in kilograms.
//
// Parameters:
//   - productCode: A constructed product code; its Kind selects the variant
//   - raw: The quantity as received on the order line
//
// Returns:
//   - OrderQuantity: The unit or kilogram quantity
//   - error: errs.ValueIsOutOfRangeError naming "UnitQuantity" or "KilogramQuantity",
//     or errs.ValueIsInvalidError when a widget quantity has a fractional part
//
// Example:
//
//	code, _ := NewProductCode("ProductCode", "G123")
//	qty, err := NewOrderQuantity(code, decimal.RequireFromString("2.5"))
//	// qty.Kind() == Gizmo, qty.Kilograms().Value() == 2.5
func NewOrderQuantity(productCode ProductCode, raw decimal.Decimal) (OrderQuantity, error) {
	if err := productCode.Validate(); err != nil {
		return OrderQuantity{}, err
	}

	switch productCode.Kind() {
	case Widget:
		if !raw.Equal(raw.Truncate(0)) {
			return OrderQuantity{}, errs.NewValueIsInvalidErrorWithCause(
				"UnitQuantity",
				fmt.Errorf("%s is not a whole number of units", raw.String()),
			)
		}
		if raw.GreaterThan(decimal.NewFromInt(UnitQuantityMax)) || raw.LessThan(decimal.NewFromInt(UnitQuantityMin)) {
			return OrderQuantity{}, errs.NewValueIsOutOfRangeError(
				"UnitQuantity", raw.String(), UnitQuantityMin, UnitQuantityMax)
		}
		units, err := NewUnitQuantity("UnitQuantity", int(raw.IntPart()))
		if err != nil {
			return OrderQuantity{}, err
		}
		return OrderQuantity{kind: Widget, units: units, guard: guard.NewConstructorGuard()}, nil
	case Gizmo:
		kilograms, err := NewKilogramQuantity("KilogramQuantity", raw)
		if err != nil {
			return OrderQuantity{}, err
		}
		return OrderQuantity{kind: Gizmo, kilograms: kilograms, guard: guard.NewConstructorGuard()}, nil
	case ProductKindUnknown:
	}
	return OrderQuantity{}, ErrProductCodeIsNotConstructed
}

// Validate ensures the OrderQuantity was created through the constructor.
func (q OrderQuantity) Validate() error {
	return q.guard.Validate(ErrOrderQuantityIsNotConstructed)
}

// Kind returns Widget for unit quantities and Gizmo for kilogram quantities.
func (q OrderQuantity) Kind() ProductKind {
	return q.kind
}

// Units returns the unit quantity. Only meaningful when Kind is Widget.
func (q OrderQuantity) Units() UnitQuantity {
	return q.units
}

// Kilograms returns the weight. Only meaningful when Kind is Gizmo.
func (q OrderQuantity) Kilograms() KilogramQuantity {
	return q.kilograms
}

// Value returns the quantity as a decimal, whichever the variant.
func (q OrderQuantity) Value() decimal.Decimal {
	switch q.kind {
	case Widget:
		return decimal.NewFromInt(int64(q.units.Value()))
	case Gizmo:
		return q.kilograms.Value()
	case ProductKindUnknown:
	}
	return decimal.Zero
}

func (q OrderQuantity) String() string {
	switch q.kind {
	case Widget:
		return fmt.Sprintf("%d units", q.units.Value())
	case Gizmo:
		return q.kilograms.Value().String() + " kg"
	case ProductKindUnknown:
	}
	return "unknown quantity"
}
