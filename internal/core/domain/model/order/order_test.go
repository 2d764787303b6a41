package order_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

func string50(t *testing.T, s string) kernel.String50 {
	t.Helper()
	v, err := kernel.NewString50("Field", s)
	require.NoError(t, err)
	return v
}

func newAddress(t *testing.T, line1 string) order.Address {
	t.Helper()
	zip, err := kernel.NewZipCode("ZipCode", "97201")
	require.NoError(t, err)
	state, err := kernel.NewUsStateCode("State", "OR")
	require.NoError(t, err)
	line2, err := kernel.NewString50Option("AddressLine2", "Suite 5")
	require.NoError(t, err)

	a, err := order.NewAddress(string50(t, line1), line2, nil, nil, string50(t, "Portland"), zip, state, string50(t, "US"))
	require.NoError(t, err)
	return a
}

func newCustomer(t *testing.T, vip kernel.VipStatus) order.CustomerInfo {
	t.Helper()
	name, err := order.NewPersonalName(string50(t, "Ada"), string50(t, "Lovelace"))
	require.NoError(t, err)
	email, err := kernel.NewEmailAddress("EmailAddress", "ada@example.com")
	require.NoError(t, err)
	c, err := order.NewCustomerInfo(name, email, vip)
	require.NoError(t, err)
	return c
}

func newLine(t *testing.T, id, code string, qty int64) order.ValidatedOrderLine {
	t.Helper()
	lineID, err := kernel.NewOrderLineID("OrderLineId", id)
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode("ProductCode", code)
	require.NoError(t, err)
	quantity, err := kernel.NewOrderQuantity(productCode, decimal.NewFromInt(qty))
	require.NoError(t, err)
	l, err := order.NewValidatedOrderLine(lineID, productCode, quantity)
	require.NoError(t, err)
	return l
}

func newValidatedOrder(t *testing.T, lines ...order.ValidatedOrderLine) order.ValidatedOrder {
	t.Helper()
	id, err := kernel.NewOrderID("OrderId", "ord1")
	require.NoError(t, err)
	o, err := order.NewValidatedOrder(
		id, newCustomer(t, kernel.Normal), newAddress(t, "1 Ship St"), newAddress(t, "2 Bill St"),
		lines, kernel.StandardPricing(),
	)
	require.NoError(t, err)
	return o
}

func TestAddress(t *testing.T) {
	t.Run("round trips to its raw form", func(t *testing.T) {
		a := newAddress(t, "1 Main St")

		assert.Equal(t, order.UnvalidatedAddress{
			AddressLine1: "1 Main St",
			AddressLine2: "Suite 5",
			City:         "Portland",
			ZipCode:      "97201",
			State:        "OR",
			Country:      "US",
		}, a.ToUnvalidated())
		assert.Nil(t, a.AddressLine3())
		assert.NoError(t, a.Validate())
	})

	t.Run("rejects unconstructed parts", func(t *testing.T) {
		_, err := order.NewAddress(kernel.String50{}, nil, nil, nil, string50(t, "x"), kernel.ZipCode{}, kernel.UsStateCode{}, string50(t, "US"))

		assert.ErrorIs(t, err, kernel.ErrString50IsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrZipCodeIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrUsStateCodeIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		assert.Equal(t, order.ErrAddressIsNotConstructed, order.Address{}.Validate())
	})
}

func TestAddressValidationError(t *testing.T) {
	assert.Equal(t, "address has bad format", (&order.AddressValidationError{Kind: order.InvalidFormat}).Error())
	assert.Equal(t, "address not found", (&order.AddressValidationError{Kind: order.AddressNotFound}).Error())
}

func TestCustomerInfo(t *testing.T) {
	c := newCustomer(t, kernel.VIP)
	assert.Equal(t, "Ada", c.Name().FirstName().String())
	assert.Equal(t, "Lovelace", c.Name().LastName().String())
	assert.Equal(t, kernel.VIP, c.VipStatus())

	_, err := order.NewCustomerInfo(order.PersonalName{}, kernel.EmailAddress{}, kernel.VipStatusUnknown)
	assert.ErrorIs(t, err, order.ErrPersonalNameIsNotConstructed)
	assert.ErrorIs(t, err, kernel.ErrEmailAddressIsNotConstructed)
}

func TestNewValidatedOrderLine(t *testing.T) {
	t.Run("quantity must match the product kind", func(t *testing.T) {
		lineID, err := kernel.NewOrderLineID("OrderLineId", "l1")
		require.NoError(t, err)
		widget, err := kernel.NewProductCode("ProductCode", "W1234")
		require.NoError(t, err)
		gizmo, err := kernel.NewProductCode("ProductCode", "G123")
		require.NoError(t, err)
		kilograms, err := kernel.NewOrderQuantity(gizmo, decimal.RequireFromString("1.5"))
		require.NoError(t, err)

		_, err = order.NewValidatedOrderLine(lineID, widget, kilograms)

		assert.ErrorIs(t, err, order.ErrQuantityDoesNotMatchProduct)
	})
}

func TestValidatedOrder(t *testing.T) {
	t.Run("lines are copied", func(t *testing.T) {
		lines := []order.ValidatedOrderLine{newLine(t, "l1", "W1234", 2)}
		o := newValidatedOrder(t, lines...)

		got := o.Lines()
		got[0] = newLine(t, "l2", "W5678", 1)

		assert.Equal(t, "l1", o.Lines()[0].OrderLineID().String())
		assert.Equal(t, kernel.Standard, o.PricingMethod().Kind())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		assert.Equal(t, order.ErrValidatedOrderIsNotConstructed, order.ValidatedOrder{}.Validate())
	})
}

func TestPricedOrder(t *testing.T) {
	validated := newValidatedOrder(t, newLine(t, "l1", "W1234", 2))
	linePrice, err := kernel.NewPrice(decimal.RequireFromString("20.00"))
	require.NoError(t, err)
	productLine, err := order.NewPricedProductLine(validated.Lines()[0], linePrice)
	require.NoError(t, err)
	comment := order.NewCommentLine("Applied promotion HALF")
	total, err := kernel.SumPrices([]kernel.Price{productLine.LinePrice(), comment.LinePrice()})
	require.NoError(t, err)

	priced, err := order.NewPricedOrder(validated, []order.PricedOrderLine{productLine, comment}, total)
	require.NoError(t, err)

	t.Run("carries the validated order", func(t *testing.T) {
		assert.Equal(t, "ord1", priced.OrderID().String())
		assert.Equal(t, "2 Bill St", priced.BillingAddress().AddressLine1().String())
		assert.Equal(t, "20.00", priced.AmountToBill().String())
	})

	t.Run("keeps product and comment lines apart", func(t *testing.T) {
		lines := priced.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, order.ProductLine, lines[0].Kind())
		assert.Equal(t, "W1234", lines[0].ProductCode().String())
		assert.Equal(t, order.CommentLine, lines[1].Kind())
		assert.Equal(t, "Applied promotion HALF", lines[1].Comment())
		assert.True(t, lines[1].LinePrice().Value().IsZero())
	})

	t.Run("shipping info is replaced, not mutated", func(t *testing.T) {
		five, err := kernel.NewPrice(decimal.NewFromInt(5))
		require.NoError(t, err)
		withShipping, err := order.NewPricedOrderWithShipping(priced, order.ShippingInfo{
			ShippingMethod: order.Fedex24,
			ShippingCost:   five,
		})
		require.NoError(t, err)

		free := withShipping.WithShippingInfo(order.ShippingInfo{ShippingMethod: order.Fedex24, ShippingCost: kernel.ZeroPrice()})

		assert.Equal(t, "5.00", withShipping.ShippingInfo().ShippingCost.String())
		assert.Equal(t, "0.00", free.ShippingInfo().ShippingCost.String())
		assert.Equal(t, "Fedex24", free.ShippingInfo().ShippingMethod.String())
		assert.Equal(t, "Unknown", order.ShippingMethod(0).String())
	})

	t.Run("rejects an unconstructed shipping cost", func(t *testing.T) {
		_, err := order.NewPricedOrderWithShipping(priced, order.ShippingInfo{ShippingMethod: order.Fedex24})
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestPlaceOrderError(t *testing.T) {
	cause := errors.New("boom")

	t.Run("validation error matches its sentinel and cause", func(t *testing.T) {
		err := order.NewValidationError(cause)

		assert.ErrorIs(t, err, order.ErrValidation)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, order.ErrPricing)
		assert.Equal(t, "validation error: boom", err.Error())
	})

	t.Run("pricing error", func(t *testing.T) {
		err := order.NewPricingError(cause)

		assert.ErrorIs(t, err, order.ErrPricing)
		assert.Equal(t, "Pricing", err.Kind.String())
	})

	t.Run("remote service error names the service", func(t *testing.T) {
		withEndpoint := order.NewRemoteServiceError(order.ServiceInfo{Name: "AddressCheckingService", Endpoint: "http://x/addresses/check"}, cause)
		withoutEndpoint := order.NewRemoteServiceError(order.ServiceInfo{Name: "PricingService"}, cause)

		assert.ErrorIs(t, withEndpoint, order.ErrRemoteService)
		assert.Equal(t, "remote service error: AddressCheckingService (http://x/addresses/check): boom", withEndpoint.Error())
		assert.Equal(t, "remote service error: PricingService: boom", withoutEndpoint.Error())
	})
}

func TestPlaceOrderEvent(t *testing.T) {
	id, err := kernel.NewOrderID("OrderId", "ord1")
	require.NoError(t, err)

	e := order.NewBillableOrderPlacedEvent(order.BillableOrderPlaced{OrderID: id})

	assert.Equal(t, order.BillableOrderPlacedEvent, e.Kind())
	assert.Equal(t, "BillableOrderPlaced", e.Kind().String())
	assert.Equal(t, "ord1", e.BillableOrderPlaced().OrderID.String())
	assert.Equal(t, order.EventUnknown, order.PlaceOrderEvent{}.Kind())
}
