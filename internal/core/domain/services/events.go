package services

import (
	"fmt"

	"ordertaking/internal/core/domain/model/order"
)

// CreateEvents lists the events a placed order emits, in this order:
// AcknowledgmentSent when ack is non-nil, ShippableOrderPlaced always,
// BillableOrderPlaced when the amount to bill is positive.
func CreateEvents(placed order.PricedOrderWithShipping, ack *order.AcknowledgmentSent) []order.PlaceOrderEvent {
	events := make([]order.PlaceOrderEvent, 0, 3)

	if ack != nil {
		events = append(events, order.NewAcknowledgmentSentEvent(*ack))
	}

	events = append(events, order.NewShippableOrderPlacedEvent(createShippingEvent(placed)))

	if billing, ok := createBillingEvent(placed); ok {
		events = append(events, order.NewBillableOrderPlacedEvent(billing))
	}

	return events
}

func createShippingEvent(placed order.PricedOrderWithShipping) order.ShippableOrderPlaced {
	var shipmentLines []order.ShippableOrderLine
	for _, line := range placed.Lines() {
		if line.Kind() != order.ProductLine {
			continue
		}
		shipmentLines = append(shipmentLines, order.ShippableOrderLine{
			ProductCode: line.ProductCode(),
			Quantity:    line.Quantity(),
		})
	}

	return order.ShippableOrderPlaced{
		OrderID:         placed.OrderID(),
		ShippingAddress: placed.ShippingAddress(),
		ShipmentLines:   shipmentLines,
		Pdf: order.PdfAttachment{
			Name:  fmt.Sprintf("Order%s.pdf", placed.OrderID()),
			Bytes: []byte{},
		},
	}
}

func createBillingEvent(placed order.PricedOrderWithShipping) (order.BillableOrderPlaced, bool) {
	if !placed.AmountToBill().IsPositive() {
		return order.BillableOrderPlaced{}, false
	}
	return order.BillableOrderPlaced{
		OrderID:        placed.OrderID(),
		BillingAddress: placed.BillingAddress(),
		AmountToBill:   placed.AmountToBill(),
	}, true
}
