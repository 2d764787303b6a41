package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ErrProductCodeIsNotConstructed is returned when a ProductCode was not created
// via NewProductCode, NewWidgetCode or NewGizmoCode.
var ErrProductCodeIsNotConstructed = errors.New(
	"ProductCode must be created via NewProductCode, NewWidgetCode or NewGizmoCode constructors")

// ProductKind distinguishes the two product families. The family decides how
// an order line's quantity is measured.
type ProductKind int

const (
	// ProductKindUnknown is the zero value and never a valid kind.
	ProductKindUnknown ProductKind = iota
	// Widget products are counted in units. Codes look like "W1234".
	Widget
	// Gizmo products are weighed in kilograms. Codes look like "G123".
	Gizmo
)

func (k ProductKind) String() string {
	switch k {
	case Widget:
		return "Widget"
	case Gizmo:
		return "Gizmo"
	case ProductKindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// ProductCode identifies a product and remembers which family it belongs to.
//
// Example:
//
//	code, err := kernel.NewProductCode("ProductCode", "W1234")
//	if err != nil {
//	    return err
//	}
//	code.Kind() // kernel.Widget
type ProductCode struct {
	kind  ProductKind
	value string
	guard guard.ConstructorGuard
}

// NewProductCode selects the family from the code's prefix: "W" for widgets,
// "G" for gizmos. Any other prefix is a format error.
//
// Returns:
//   - ProductCode: A widget or gizmo code
//   - error: errs.ValueIsRequiredError for an empty code, errs.ValueIsInvalidError
//     for an unknown prefix or a code that does not match its family's pattern
func NewProductCode(fieldName string, s string) (ProductCode, error) {
	switch {
	case s == "":
		return ProductCode{}, errs.NewValueIsRequiredError(fieldName)
	case strings.HasPrefix(s, "W"):
		return NewWidgetCode(fieldName, s)
	case strings.HasPrefix(s, "G"):
		return NewGizmoCode(fieldName, s)
	default:
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(
			fieldName,
			fmt.Errorf("format not recognized '%s'", s),
		)
	}
}

// NewWidgetCode validates s against the widget pattern W followed by four digits.
func NewWidgetCode(fieldName string, s string) (ProductCode, error) {
	v, err := CreateLike(fieldName, widgetCodePattern, s)
	if err != nil {
		return ProductCode{}, err
	}
	return ProductCode{kind: Widget, value: v, guard: guard.NewConstructorGuard()}, nil
}

// NewGizmoCode validates s against the gizmo pattern G followed by three digits.
func NewGizmoCode(fieldName string, s string) (ProductCode, error) {
	v, err := CreateLike(fieldName, gizmoCodePattern, s)
	if err != nil {
		return ProductCode{}, err
	}
	return ProductCode{kind: Gizmo, value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the ProductCode was created through the constructor.
func (p ProductCode) Validate() error {
	return p.guard.Validate(ErrProductCodeIsNotConstructed)
}

// Kind returns the product family.
func (p ProductCode) Kind() ProductKind {
	return p.kind
}

func (p ProductCode) String() string {
	return p.value
}
