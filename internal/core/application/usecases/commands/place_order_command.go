package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks for an unvalidated order to be placed.
// The order itself is validated by the handler, not here.
//
// Example:
//
//	cmd := NewPlaceOrderCommand(unvalidatedOrder)
//	events, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	order order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(unvalidated order.UnvalidatedOrder) PlaceOrderCommand {
	return PlaceOrderCommand{
		order: unvalidated,
		guard: guard.NewConstructorGuard(),
	}
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns the order as the caller sent it.
func (c PlaceOrderCommand) Order() order.UnvalidatedOrder {
	return c.order
}
