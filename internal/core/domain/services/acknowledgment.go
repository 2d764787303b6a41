package services

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderAcknowledger writes the acknowledgment letter and sends it to the customer.
type OrderAcknowledger struct {
	writer ports.AcknowledgmentLetterWriter
	sender ports.AcknowledgmentSender
}

func NewOrderAcknowledger(writer ports.AcknowledgmentLetterWriter, sender ports.AcknowledgmentSender) OrderAcknowledger {
	return OrderAcknowledger{writer: writer, sender: sender}
}

// Acknowledge always writes a letter and attempts to send it. It returns nil
// when the sender reports NotSent; the order is placed either way.
func (a OrderAcknowledger) Acknowledge(ctx context.Context, o order.PricedOrderWithShipping) *order.AcknowledgmentSent {
	acknowledgment := order.OrderAcknowledgment{
		EmailAddress: o.CustomerInfo().EmailAddress(),
		Letter:       a.writer.CreateLetter(o),
	}

	if a.sender.SendAcknowledgment(ctx, acknowledgment) != order.Sent {
		return nil
	}
	return &order.AcknowledgmentSent{
		OrderID:      o.OrderID(),
		EmailAddress: o.CustomerInfo().EmailAddress(),
	}
}
