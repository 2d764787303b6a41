// Package queries contains read operations over the product catalog.
// Queries return read models shaped for a specific caller.
package queries

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrGetProductPricesQueryIsNotConstructed = errors.New(
		"GetProductPricesQuery must be created via NewGetProductPricesQuery constructor",
	)
)

// GetProductPricesQuery lists every product with the price an order would pay
// for it under a pricing method.
//
// Example:
//
//	query := NewGetProductPricesQuery(kernel.NewPricingMethod(&code))
//	prices, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list prices: %w", err)
//	}
type GetProductPricesQuery struct {
	method kernel.PricingMethod
	guard  guard.ConstructorGuard
}

// NewGetProductPricesQuery builds a query for the given pricing method.
func NewGetProductPricesQuery(method kernel.PricingMethod) GetProductPricesQuery {
	return GetProductPricesQuery{method: method, guard: guard.NewConstructorGuard()}
}

// Validate ensures the GetProductPricesQuery was created through the constructor.
func (q GetProductPricesQuery) Validate() error {
	return q.guard.Validate(ErrGetProductPricesQueryIsNotConstructed)
}

func (q GetProductPricesQuery) PricingMethod() kernel.PricingMethod {
	return q.method
}

// GetProductPricesQueryResponse is one product in the price list. Price equals
// StandardPrice unless Promoted is set.
type GetProductPricesQueryResponse struct {
	ProductCode   string
	StandardPrice kernel.Price
	Price         kernel.Price
	Promoted      bool
}
