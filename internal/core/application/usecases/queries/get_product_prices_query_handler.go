package queries

import (
	"cmp"
	"context"
	"slices"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/ports"
)

// GetProductPricesQueryHandler reads prices straight from the price source,
// bypassing the cached catalog.
type GetProductPricesQueryHandler struct {
	source ports.PriceSource
}

// NewGetProductPricesQueryHandler lists prices from the given source.
func NewGetProductPricesQueryHandler(source ports.PriceSource) GetProductPricesQueryHandler {
	return GetProductPricesQueryHandler{source: source}
}

// Handle returns the price list sorted by product code. Promotion prices for
// products missing from the standard table are ignored.
func (h GetProductPricesQueryHandler) Handle(
	ctx context.Context,
	query GetProductPricesQuery,
) ([]GetProductPricesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	standard, err := h.source.StandardPrices(ctx)
	if err != nil {
		return nil, err
	}

	var promoted map[string]kernel.Price
	if promotion, ok := query.PricingMethod().PromotionCode(); ok {
		promoted, err = h.source.PromotionPrices(ctx, promotion)
		if err != nil {
			return nil, err
		}
	}

	prices := make([]GetProductPricesQueryResponse, 0, len(standard))
	for code, price := range standard {
		item := GetProductPricesQueryResponse{ProductCode: code, StandardPrice: price, Price: price}
		if p, ok := promoted[code]; ok {
			item.Price = p
			item.Promoted = true
		}
		prices = append(prices, item)
	}

	slices.SortFunc(prices, func(a, b GetProductPricesQueryResponse) int {
		return cmp.Compare(a.ProductCode, b.ProductCode)
	})
	return prices, nil
}
