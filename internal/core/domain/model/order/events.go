package order

import (
	"ordertaking/internal/core/domain/model/kernel"
)

// ShippableOrderLine is one product line the shipping department must pack.
type ShippableOrderLine struct {
	ProductCode kernel.ProductCode
	Quantity    kernel.OrderQuantity
}

// PdfAttachment is a document sent along with the shipment.
type PdfAttachment struct {
	Name  string
	Bytes []byte
}

// ShippableOrderPlaced tells shipping that an order is ready to ship.
type ShippableOrderPlaced struct {
	OrderID         kernel.OrderID
	ShippingAddress Address
	ShipmentLines   []ShippableOrderLine
	Pdf             PdfAttachment
}

// BillableOrderPlaced tells billing how much to charge and where to send the bill.
type BillableOrderPlaced struct {
	OrderID        kernel.OrderID
	BillingAddress Address
	AmountToBill   kernel.BillingAmount
}

// EventKind identifies which event a PlaceOrderEvent carries.
type EventKind int

const (
	// EventUnknown is the zero value and never a valid kind.
	EventUnknown EventKind = iota
	ShippableOrderPlacedEvent
	BillableOrderPlacedEvent
	AcknowledgmentSentEvent
)

func (k EventKind) String() string {
	switch k {
	case ShippableOrderPlacedEvent:
		return "ShippableOrderPlaced"
	case BillableOrderPlacedEvent:
		return "BillableOrderPlaced"
	case AcknowledgmentSentEvent:
		return "AcknowledgmentSent"
	case EventUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// PlaceOrderEvent is one of the events emitted by a placed order.
// Exactly the field matching Kind is set.
type PlaceOrderEvent struct {
	kind                 EventKind
	shippableOrderPlaced ShippableOrderPlaced
	billableOrderPlaced  BillableOrderPlaced
	acknowledgmentSent   AcknowledgmentSent
}

func NewShippableOrderPlacedEvent(e ShippableOrderPlaced) PlaceOrderEvent {
	return PlaceOrderEvent{kind: ShippableOrderPlacedEvent, shippableOrderPlaced: e}
}

func NewBillableOrderPlacedEvent(e BillableOrderPlaced) PlaceOrderEvent {
	return PlaceOrderEvent{kind: BillableOrderPlacedEvent, billableOrderPlaced: e}
}

func NewAcknowledgmentSentEvent(e AcknowledgmentSent) PlaceOrderEvent {
	return PlaceOrderEvent{kind: AcknowledgmentSentEvent, acknowledgmentSent: e}
}

func (e PlaceOrderEvent) Kind() EventKind {
	return e.kind
}

// ShippableOrderPlaced returns the payload when Kind is ShippableOrderPlacedEvent.
func (e PlaceOrderEvent) ShippableOrderPlaced() ShippableOrderPlaced {
	return e.shippableOrderPlaced
}

// BillableOrderPlaced returns the payload when Kind is BillableOrderPlacedEvent.
func (e PlaceOrderEvent) BillableOrderPlaced() BillableOrderPlaced {
	return e.billableOrderPlaced
}

// AcknowledgmentSent returns the payload when Kind is AcknowledgmentSentEvent.
func (e PlaceOrderEvent) AcknowledgmentSent() AcknowledgmentSent {
	return e.acknowledgmentSent
}
