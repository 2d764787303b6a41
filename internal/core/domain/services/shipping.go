package services

import (
	"slices"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ShippingZone groups destinations that cost the same to ship to.
type ShippingZone int

const (
	UsLocalState ShippingZone = iota + 1
	UsRemoteState
	International
)

func (z ShippingZone) String() string {
	switch z {
	case UsLocalState:
		return "UsLocalState"
	case UsRemoteState:
		return "UsRemoteState"
	case International:
		return "International"
	}
	return "Unknown"
}

var localStates = []string{"CA", "OR", "AZ", "NV"}

var (
	localShippingCost         = mustPrice("5.00")
	remoteShippingCost        = mustPrice("10.00")
	internationalShippingCost = mustPrice("20.00")
)

func mustPrice(s string) kernel.Price {
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return p
}

// ClassifyShippingZone places an address in a zone by country and state.
func ClassifyShippingZone(address order.Address) ShippingZone {
	if address.Country().String() != "US" {
		return International
	}
	if slices.Contains(localStates, address.State().String()) {
		return UsLocalState
	}
	return UsRemoteState
}

// CalculateShippingCost prices shipping to the order's shipping address.
func CalculateShippingCost(priced order.PricedOrder) kernel.Price {
	switch ClassifyShippingZone(priced.ShippingAddress()) {
	case UsLocalState:
		return localShippingCost
	case UsRemoteState:
		return remoteShippingCost
	default:
		return internationalShippingCost
	}
}

// AddShippingInfo attaches Fedex24 shipping at the zone's cost. It fails only
// for a PricedOrder that was not built by its constructor.
func AddShippingInfo(priced order.PricedOrder) (order.PricedOrderWithShipping, error) {
	return order.NewPricedOrderWithShipping(priced, order.ShippingInfo{
		ShippingMethod: order.Fedex24,
		ShippingCost:   CalculateShippingCost(priced),
	})
}

// FreeVipShipping waives the shipping cost for VIP customers.
func FreeVipShipping(o order.PricedOrderWithShipping) order.PricedOrderWithShipping {
	if o.CustomerInfo().VipStatus() != kernel.VIP {
		return o
	}
	info := o.ShippingInfo()
	info.ShippingCost = kernel.ZeroPrice()
	return o.WithShippingInfo(info)
}
