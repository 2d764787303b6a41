package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ProductCatalog answers whether a product code refers to a product we sell.
type ProductCatalog interface {
	// ProductExists is synchronous and has no failure mode: an unknown or
	// unreachable product is reported as not existing.
	ProductExists(productCode kernel.ProductCode) bool
}

// AddressChecker asks the address service whether an address exists.
type AddressChecker interface {
	// CheckAddressExists returns the normalized address, or an
	// *order.AddressValidationError when the service rejects it.
	// Any other error means the service could not be reached.
	CheckAddressExists(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error)
}

// PriceFunc looks up the unit price of a product.
type PriceFunc func(productCode kernel.ProductCode) (kernel.Price, error)

// PricingResolver turns a pricing method into the price lookup used for an order.
type PricingResolver interface {
	// PricingFunction returns the lookup for method. Promotion lookups fall back
	// to the standard price for products the promotion does not cover.
	PricingFunction(ctx context.Context, method kernel.PricingMethod) (PriceFunc, error)
}

// AcknowledgmentLetterWriter renders the letter confirming an order.
type AcknowledgmentLetterWriter interface {
	CreateLetter(pricedOrder order.PricedOrderWithShipping) order.HTMLString
}

// AcknowledgmentSender delivers an acknowledgment letter.
type AcknowledgmentSender interface {
	// SendAcknowledgment reports delivery failure as order.NotSent, never as an error.
	SendAcknowledgment(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult
}

// PriceSource loads price tables keyed by product code.
type PriceSource interface {
	StandardPrices(ctx context.Context) (map[string]kernel.Price, error)
	// PromotionPrices returns only the products the promotion covers.
	PromotionPrices(ctx context.Context, promotion kernel.PromotionCode) (map[string]kernel.Price, error)
}
