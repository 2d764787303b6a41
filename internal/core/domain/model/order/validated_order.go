package order

import (
	"errors"
	"slices"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrValidatedOrderLineIsNotConstructed = errors.New("ValidatedOrderLine must be created via NewValidatedOrderLine")
	ErrValidatedOrderIsNotConstructed     = errors.New("ValidatedOrder must be created via NewValidatedOrder")
	ErrQuantityDoesNotMatchProduct        = errors.New("quantity kind does not match product code kind")
)

// UnvalidatedCustomerInfo is customer data as received from the caller.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
	VipStatus    string
}

// UnvalidatedOrderLine is an order line as received from the caller.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// UnvalidatedOrder is the workflow's input. Nothing about it is trusted.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
	PromotionCode   *string
}

// ValidatedOrderLine is an order line whose product exists and whose quantity
// is measured the way its product requires.
type ValidatedOrderLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	guard       guard.ConstructorGuard
}

// NewValidatedOrderLine assembles an already validated id, product code and quantity.
func NewValidatedOrderLine(
	id kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
) (ValidatedOrderLine, error) {
	if err := errors.Join(id.Validate(), productCode.Validate(), quantity.Validate()); err != nil {
		return ValidatedOrderLine{}, err
	}
	if productCode.Kind() != quantity.Kind() {
		return ValidatedOrderLine{}, ErrQuantityDoesNotMatchProduct
	}
	return ValidatedOrderLine{
		orderLineID: id,
		productCode: productCode,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ValidatedOrderLine was created through the constructor.
func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }
func (l ValidatedOrderLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity { return l.quantity }

// ValidatedOrder is an order whose every field passed validation.
// It is immutable: accessors return copies.
type ValidatedOrder struct {
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	pricingMethod   kernel.PricingMethod
	guard           guard.ConstructorGuard
}

// NewValidatedOrder assembles a ValidatedOrder from validated parts.
// The lines slice is copied.
func NewValidatedOrder(
	orderID kernel.OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
	pricingMethod kernel.PricingMethod,
) (ValidatedOrder, error) {
	errList := []error{
		orderID.Validate(),
		customerInfo.Validate(),
		shippingAddress.Validate(),
		billingAddress.Validate(),
	}
	for _, l := range lines {
		errList = append(errList, l.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ValidatedOrder{}, err
	}

	return ValidatedOrder{
		orderID:         orderID,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           slices.Clone(lines),
		pricingMethod:   pricingMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ValidatedOrder was created through the constructor.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

func (o ValidatedOrder) OrderID() kernel.OrderID { return o.orderID }
func (o ValidatedOrder) CustomerInfo() CustomerInfo { return o.customerInfo }
func (o ValidatedOrder) ShippingAddress() Address { return o.shippingAddress }
func (o ValidatedOrder) BillingAddress() Address { return o.billingAddress }
func (o ValidatedOrder) Lines() []ValidatedOrderLine { return slices.Clone(o.lines) }
func (o ValidatedOrder) PricingMethod() kernel.PricingMethod { return o.pricingMethod }
