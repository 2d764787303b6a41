package order

import (
	"errors"
	"slices"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var ErrPricedOrderIsNotConstructed = errors.New("PricedOrder must be created via NewPricedOrder constructor")

var ErrPricedOrderLineIsNotConstructed = errors.New(
	"PricedOrderLine must be created via NewPricedProductLine or NewCommentLine constructors")

// PricedOrderLineKind tells product lines from comment lines.
type PricedOrderLineKind int

const (
	// PricedOrderLineUnknown is the zero value and never a valid kind.
	PricedOrderLineUnknown PricedOrderLineKind = iota
	// ProductLine is a validated line with its computed price.
	ProductLine
	// CommentLine is a free-text line with no product and a zero price.
	CommentLine
)

func (k PricedOrderLineKind) String() string {
	switch k {
	case ProductLine:
		return "ProductLine"
	case CommentLine:
		return "CommentLine"
	case PricedOrderLineUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// PricedOrderLine is either a priced product line or a comment line.
//
// Use Kind to tell them apart:
//
//	switch line.Kind() {
//	case order.ProductLine:
//	    line.ProductCode(), line.Quantity()
//	case order.CommentLine:
//	    line.Comment()
//	}
type PricedOrderLine struct {
	kind        PricedOrderLineKind
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	linePrice   kernel.Price
	comment     string
	guard       guard.ConstructorGuard
}

// NewPricedProductLine prices a validated line.
func NewPricedProductLine(line ValidatedOrderLine, linePrice kernel.Price) (PricedOrderLine, error) {
	if err := errors.Join(line.Validate(), linePrice.Validate()); err != nil {
		return PricedOrderLine{}, err
	}
	return PricedOrderLine{
		kind:        ProductLine,
		orderLineID: line.OrderLineID(),
		productCode: line.ProductCode(),
		quantity:    line.Quantity(),
		linePrice:   linePrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewCommentLine creates a comment line. Its price is always zero.
func NewCommentLine(comment string) PricedOrderLine {
	return PricedOrderLine{
		kind:      CommentLine,
		linePrice: kernel.ZeroPrice(),
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the PricedOrderLine was created through the constructor.
func (l PricedOrderLine) Validate() error {
	return l.guard.Validate(ErrPricedOrderLineIsNotConstructed)
}

func (l PricedOrderLine) Kind() PricedOrderLineKind { return l.kind }

// OrderLineID is only meaningful for product lines.
func (l PricedOrderLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }

// ProductCode is only meaningful for product lines.
func (l PricedOrderLine) ProductCode() kernel.ProductCode { return l.productCode }

// Quantity is only meaningful for product lines.
func (l PricedOrderLine) Quantity() kernel.OrderQuantity { return l.quantity }

// Comment is only meaningful for comment lines.
func (l PricedOrderLine) Comment() string { return l.comment }

// LinePrice is zero for comment lines.
func (l PricedOrderLine) LinePrice() kernel.Price { return l.linePrice }

// PricedOrder is a validated order with a price on every line and the total to bill.
type PricedOrder struct {
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	pricingMethod   kernel.PricingMethod
	guard           guard.ConstructorGuard
}

// NewPricedOrder carries the validated order's fields over and attaches the priced
// lines and the amount to bill. The caller is responsible for the amount being
// the sum of the line prices.
func NewPricedOrder(
	validated ValidatedOrder,
	lines []PricedOrderLine,
	amountToBill kernel.BillingAmount,
) (PricedOrder, error) {
	errList := []error{validated.Validate(), amountToBill.Validate()}
	for _, l := range lines {
		errList = append(errList, l.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return PricedOrder{}, err
	}

	return PricedOrder{
		orderID:         validated.OrderID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		amountToBill:    amountToBill,
		lines:           slices.Clone(lines),
		pricingMethod:   validated.PricingMethod(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PricedOrder was created through the constructor.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

func (o PricedOrder) OrderID() kernel.OrderID { return o.orderID }
func (o PricedOrder) CustomerInfo() CustomerInfo { return o.customerInfo }
func (o PricedOrder) ShippingAddress() Address { return o.shippingAddress }
func (o PricedOrder) BillingAddress() Address { return o.billingAddress }
func (o PricedOrder) AmountToBill() kernel.BillingAmount { return o.amountToBill }
func (o PricedOrder) Lines() []PricedOrderLine { return slices.Clone(o.lines) }
func (o PricedOrder) PricingMethod() kernel.PricingMethod { return o.pricingMethod }

// ShippingMethod is the carrier service used to ship an order.
type ShippingMethod int

// Fedex24 is the only carrier service offered.
const Fedex24 ShippingMethod = 1

func (m ShippingMethod) String() string {
	if m == Fedex24 {
		return "Fedex24"
	}
	return "Unknown"
}

// ShippingInfo is how an order ships and what that costs.
type ShippingInfo struct {
	ShippingMethod ShippingMethod
	ShippingCost   kernel.Price
}

// PricedOrderWithShipping is a priced order plus its shipping information.
type PricedOrderWithShipping struct {
	PricedOrder
	shippingInfo ShippingInfo
}

// NewPricedOrderWithShipping attaches shipping information to a priced order.
func NewPricedOrderWithShipping(priced PricedOrder, info ShippingInfo) (PricedOrderWithShipping, error) {
	if err := errors.Join(priced.Validate(), info.ShippingCost.Validate()); err != nil {
		return PricedOrderWithShipping{}, err
	}
	return PricedOrderWithShipping{PricedOrder: priced, shippingInfo: info}, nil
}

func (o PricedOrderWithShipping) ShippingInfo() ShippingInfo {
	return o.shippingInfo
}

// WithShippingInfo returns a copy of the order with different shipping information.
func (o PricedOrderWithShipping) WithShippingInfo(info ShippingInfo) PricedOrderWithShipping {
	o.shippingInfo = info
	return o
}
