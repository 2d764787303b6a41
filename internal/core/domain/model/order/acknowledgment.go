package order

import "ordertaking/internal/core/domain/model/kernel"

// HTMLString is the rendered body of an acknowledgment letter.
type HTMLString string

// OrderAcknowledgment is a letter addressed to the customer's email.
type OrderAcknowledgment struct {
	EmailAddress kernel.EmailAddress
	Letter       HTMLString
}

// SendResult is the outcome of sending an acknowledgment. A failed send is a
// normal outcome, not an error: the order is placed either way.
type SendResult int

const (
	NotSent SendResult = iota
	Sent
)

func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}

// AcknowledgmentSent records that the customer was sent an acknowledgment.
type AcknowledgmentSent struct {
	OrderID      kernel.OrderID
	EmailAddress kernel.EmailAddress
}
