package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
)

type fakeCatalog map[string]bool

func (c fakeCatalog) ProductExists(productCode kernel.ProductCode) bool {
	return c[productCode.String()]
}

// fakeAddressChecker fails addresses whose first line is a key of failures.
type fakeAddressChecker struct {
	mu       sync.Mutex
	failures map[string]error
	checked  []string
}

func (c *fakeAddressChecker) CheckAddressExists(
	_ context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = append(c.checked, address.AddressLine1)
	if err, ok := c.failures[address.AddressLine1]; ok {
		return order.CheckedAddress{}, err
	}
	return order.CheckedAddress(address), nil
}

type priceTable map[string]string

func (t priceTable) lookup(productCode kernel.ProductCode) (kernel.Price, error) {
	raw, ok := t[productCode.String()]
	if !ok {
		return kernel.Price{}, fmt.Errorf("no price for %s", productCode)
	}
	return kernel.NewPrice(decimal.RequireFromString(raw))
}

type fakeResolver struct {
	standard   priceTable
	promotions map[string]priceTable
	err        error
	calls      int
}

func (r *fakeResolver) PricingFunction(_ context.Context, method kernel.PricingMethod) (ports.PriceFunc, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if code, ok := method.PromotionCode(); ok {
		if table, found := r.promotions[code.String()]; found {
			return table.lookup, nil
		}
	}
	return r.standard.lookup, nil
}

type fakeLetterWriter struct {
	calls int
}

func (w *fakeLetterWriter) CreateLetter(o order.PricedOrderWithShipping) order.HTMLString {
	w.calls++
	return order.HTMLString(fmt.Sprintf("<p>Order %s</p>", o.OrderID()))
}

type fakeSender struct {
	result order.SendResult
	sent   []order.OrderAcknowledgment
}

func (s *fakeSender) SendAcknowledgment(_ context.Context, ack order.OrderAcknowledgment) order.SendResult {
	s.sent = append(s.sent, ack)
	return s.result
}

func newAddress(line1, state, country string) order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: line1,
		City:         "Springfield",
		ZipCode:      "90210",
		State:        state,
		Country:      country,
	}
}

func newUnvalidatedOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "ord1",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jane@example.com",
			VipStatus:    "Normal",
		},
		ShippingAddress: newAddress("1 Ship St", "CA", "US"),
		BillingAddress:  newAddress("2 Bill St", "CA", "US"),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "line1", ProductCode: "W1234", Quantity: 2},
		},
	}
}

func defaultCatalog() fakeCatalog {
	return fakeCatalog{"W1234": true, "W5678": true, "G123": true, "G999": true}
}

func defaultResolver() *fakeResolver {
	return &fakeResolver{
		standard: priceTable{"W1234": "10.00", "W5678": "10.00", "G123": "10.00", "G999": "0.00"},
		promotions: map[string]priceTable{
			"HALF": {"W1234": "5.00", "W5678": "5.00", "G123": "5.00", "G999": "0.00"},
		},
	}
}

func mustValidate(t *testing.T, unvalidated order.UnvalidatedOrder) order.ValidatedOrder {
	t.Helper()
	validated, err := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{}).
		Validate(context.Background(), unvalidated)
	require.NoError(t, err)
	return validated
}

func mustPrice(t *testing.T, unvalidated order.UnvalidatedOrder) order.PricedOrderWithShipping {
	t.Helper()
	priced, err := services.NewOrderPricer(defaultResolver()).
		Price(context.Background(), mustValidate(t, unvalidated))
	require.NoError(t, err)
	withShipping, err := services.AddShippingInfo(priced)
	require.NoError(t, err)
	return withShipping
}
