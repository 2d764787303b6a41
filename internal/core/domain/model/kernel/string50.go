package kernel

import (
	"errors"

	"ordertaking/internal/pkg/guard"
)

// MaxString50Length is the length limit shared by names, address lines and identifiers.
const MaxString50Length = 50

var (
	ErrString50IsNotConstructed    = errors.New("String50 must be created via NewString50 constructor")
	ErrOrderIDIsNotConstructed     = errors.New("OrderID must be created via NewOrderID constructor")
	ErrOrderLineIDIsNotConstructed = errors.New("OrderLineID must be created via NewOrderLineID constructor")
)

// String50 is a non-empty string of at most 50 characters.
// It backs names, cities, countries and address lines.
type String50 struct {
	value string
	guard guard.ConstructorGuard
}

// NewString50 validates s as a required String50; fieldName is reported on failure.
func NewString50(fieldName string, s string) (String50, error) {
	v, err := CreateString(fieldName, MaxString50Length, s)
	if err != nil {
		return String50{}, err
	}
	return String50{value: v, guard: guard.NewConstructorGuard()}, nil
}

// NewString50Option validates s as an optional String50.
// An empty s yields nil without error.
func NewString50Option(fieldName string, s string) (*String50, error) {
	v, err := CreateStringOption(fieldName, MaxString50Length, s)
	if err != nil || v == nil {
		return nil, err
	}
	return &String50{value: *v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the String50 was created through the constructor.
func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

func (s String50) String() string {
	return s.value
}

// OptionalString50Value returns the value of an optional String50, or "" when absent.
func OptionalString50Value(s *String50) string {
	if s == nil {
		return ""
	}
	return s.value
}

// OrderID identifies an order. Non-empty, at most 50 characters.
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderID rejects empty ids and ids longer than 50 characters.
func NewOrderID(fieldName string, s string) (OrderID, error) {
	v, err := CreateString(fieldName, MaxString50Length, s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the OrderID was created through the constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

func (id OrderID) String() string {
	return id.value
}

// OrderLineID identifies a line within an order. Non-empty, at most 50 characters.
type OrderLineID struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderLineID rejects empty ids and ids longer than 50 characters.
func NewOrderLineID(fieldName string, s string) (OrderLineID, error) {
	v, err := CreateString(fieldName, MaxString50Length, s)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the OrderLineID was created through the constructor.
func (id OrderLineID) Validate() error {
	return id.guard.Validate(ErrOrderLineIDIsNotConstructed)
}

func (id OrderLineID) String() string {
	return id.value
}
