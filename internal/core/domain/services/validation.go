package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// AddressService names the address checker in remote service errors.
var AddressService = order.ServiceInfo{Name: "AddressCheckingService"}

// OrderValidator turns an UnvalidatedOrder into a ValidatedOrder.
//
// Fields are validated in a fixed order and the first failure is returned:
// order id, customer info, shipping address, billing address, lines, pricing method.
// Both addresses are checked with the address service concurrently.
//
// Example usage:
//
//	validator := services.NewOrderValidator(catalog, checker)
//	validated, err := validator.Validate(ctx, unvalidated)
//	if errors.Is(err, order.ErrValidation) {
//	    // the caller sent bad data
//	}
type OrderValidator struct {
	catalog ports.ProductCatalog
	checker ports.AddressChecker
}

func NewOrderValidator(catalog ports.ProductCatalog, checker ports.AddressChecker) OrderValidator {
	return OrderValidator{catalog: catalog, checker: checker}
}

// Validate returns a *order.PlaceOrderError of kind ValidationFailed for bad input,
// or of kind RemoteServiceFailed when the address service could not be reached.
func (v OrderValidator) Validate(ctx context.Context, unvalidated order.UnvalidatedOrder) (order.ValidatedOrder, error) {
	orderID, err := kernel.NewOrderID("OrderId", unvalidated.OrderID)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err)
	}

	customerInfo, err := toCustomerInfo(unvalidated.CustomerInfo)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err)
	}

	shippingAddress, billingAddress, err := v.toAddresses(ctx, unvalidated.ShippingAddress, unvalidated.BillingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	lines := make([]order.ValidatedOrderLine, 0, len(unvalidated.Lines))
	for _, l := range unvalidated.Lines {
		line, err := v.toValidatedOrderLine(l)
		if err != nil {
			return order.ValidatedOrder{}, order.NewValidationError(err)
		}
		lines = append(lines, line)
	}

	validated, err := order.NewValidatedOrder(
		orderID,
		customerInfo,
		shippingAddress,
		billingAddress,
		lines,
		kernel.NewPricingMethod(unvalidated.PromotionCode),
	)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err)
	}
	return validated, nil
}

func toCustomerInfo(unvalidated order.UnvalidatedCustomerInfo) (order.CustomerInfo, error) {
	firstName, err := kernel.NewString50("FirstName", unvalidated.FirstName)
	if err != nil {
		return order.CustomerInfo{}, err
	}
	lastName, err := kernel.NewString50("LastName", unvalidated.LastName)
	if err != nil {
		return order.CustomerInfo{}, err
	}
	email, err := kernel.NewEmailAddress("EmailAddress", unvalidated.EmailAddress)
	if err != nil {
		return order.CustomerInfo{}, err
	}
	vipStatus, err := kernel.NewVipStatus("VipStatus", unvalidated.VipStatus)
	if err != nil {
		return order.CustomerInfo{}, err
	}

	name, err := order.NewPersonalName(firstName, lastName)
	if err != nil {
		return order.CustomerInfo{}, err
	}
	return order.NewCustomerInfo(name, email, vipStatus)
}

// toAddresses checks both addresses at once. A failed shipping address is
// reported ahead of a failed billing address regardless of which check ended first.
func (v OrderValidator) toAddresses(
	ctx context.Context,
	shipping, billing order.UnvalidatedAddress,
) (order.Address, order.Address, error) {
	var (
		g                               errgroup.Group
		shippingAddress, billingAddress order.Address
		shippingErr, billingErr         error
	)

	g.Go(func() error {
		shippingAddress, shippingErr = v.toAddress(ctx, shipping)
		return shippingErr
	})
	g.Go(func() error {
		billingAddress, billingErr = v.toAddress(ctx, billing)
		return billingErr
	})

	if err := g.Wait(); err != nil {
		return order.Address{}, order.Address{}, cmp.Or(shippingErr, billingErr)
	}
	return shippingAddress, billingAddress, nil
}

func (v OrderValidator) toAddress(ctx context.Context, unvalidated order.UnvalidatedAddress) (order.Address, error) {
	checked, err := v.checker.CheckAddressExists(ctx, unvalidated)
	if err != nil {
		var addressErr *order.AddressValidationError
		if errors.As(err, &addressErr) {
			return order.Address{}, order.NewValidationError(addressErr)
		}
		return order.Address{}, order.NewRemoteServiceError(AddressService, err)
	}

	address, err := toAddress(checked)
	if err != nil {
		return order.Address{}, order.NewValidationError(err)
	}
	return address, nil
}

func toAddress(checked order.CheckedAddress) (order.Address, error) {
	line1, err := kernel.NewString50("AddressLine1", checked.AddressLine1)
	if err != nil {
		return order.Address{}, err
	}
	line2, err := kernel.NewString50Option("AddressLine2", checked.AddressLine2)
	if err != nil {
		return order.Address{}, err
	}
	line3, err := kernel.NewString50Option("AddressLine3", checked.AddressLine3)
	if err != nil {
		return order.Address{}, err
	}
	line4, err := kernel.NewString50Option("AddressLine4", checked.AddressLine4)
	if err != nil {
		return order.Address{}, err
	}
	city, err := kernel.NewString50("City", checked.City)
	if err != nil {
		return order.Address{}, err
	}
	zip, err := kernel.NewZipCode("ZipCode", checked.ZipCode)
	if err != nil {
		return order.Address{}, err
	}
	state, err := kernel.NewUsStateCode("State", checked.State)
	if err != nil {
		return order.Address{}, err
	}
	country, err := kernel.NewString50("Country", checked.Country)
	if err != nil {
		return order.Address{}, err
	}

	return order.NewAddress(line1, line2, line3, line4, city, zip, state, country)
}

func (v OrderValidator) toValidatedOrderLine(unvalidated order.UnvalidatedOrderLine) (order.ValidatedOrderLine, error) {
	id, err := kernel.NewOrderLineID("OrderLineId", unvalidated.OrderLineID)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}
	productCode, err := v.toProductCode(unvalidated.ProductCode)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}
	raw, err := toQuantityValue(productCode, unvalidated.Quantity)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}
	quantity, err := kernel.NewOrderQuantity(productCode, raw)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}
	return order.NewValidatedOrderLine(id, productCode, quantity)
}

// toQuantityValue rejects NaN and infinities, which have no decimal form.
func toQuantityValue(productCode kernel.ProductCode, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		fieldName := "UnitQuantity"
		if productCode.Kind() == kernel.Gizmo {
			fieldName = "KilogramQuantity"
		}
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(fieldName, fmt.Errorf("%v is not a number", f))
	}
	return decimal.NewFromFloat(f), nil
}

func (v OrderValidator) toProductCode(raw string) (kernel.ProductCode, error) {
	productCode, err := kernel.NewProductCode("ProductCode", raw)
	if err != nil {
		return kernel.ProductCode{}, err
	}
	if !v.catalog.ProductExists(productCode) {
		return kernel.ProductCode{}, errs.NewValueIsInvalidErrorWithCause(
			"ProductCode",
			fmt.Errorf("invalid product code '%s'", productCode),
		)
	}
	return productCode, nil
}
