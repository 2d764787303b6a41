package services

import (
	"context"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// PricingService names the pricing resolver in remote service errors.
var PricingService = order.ServiceInfo{Name: "PricingService"}

// OrderPricer prices every line of a validated order and totals the bill.
type OrderPricer struct {
	resolver ports.PricingResolver
}

func NewOrderPricer(resolver ports.PricingResolver) OrderPricer {
	return OrderPricer{resolver: resolver}
}

// Price resolves the price lookup for the order's pricing method once, then
// prices each line as quantity times unit price. Promotion orders get a trailing
// comment line naming the promotion.
//
// Returns:
//   - order.PricedOrder: the order with priced lines and the amount to bill
//   - error: a RemoteServiceFailed error when the lookup cannot be resolved,
//     a PricingFailed error when a price is unknown or out of bounds
func (p OrderPricer) Price(ctx context.Context, validated order.ValidatedOrder) (order.PricedOrder, error) {
	getPrice, err := p.resolver.PricingFunction(ctx, validated.PricingMethod())
	if err != nil {
		return order.PricedOrder{}, order.NewRemoteServiceError(PricingService, err)
	}
	return PriceOrder(getPrice, validated)
}

// PriceOrder prices validated with an already resolved lookup.
func PriceOrder(getPrice ports.PriceFunc, validated order.ValidatedOrder) (order.PricedOrder, error) {
	lines := validated.Lines()
	pricedLines := make([]order.PricedOrderLine, 0, len(lines)+1)
	for _, line := range lines {
		pricedLine, err := toPricedOrderLine(getPrice, line)
		if err != nil {
			return order.PricedOrder{}, order.NewPricingError(err)
		}
		pricedLines = append(pricedLines, pricedLine)
	}

	if code, ok := validated.PricingMethod().PromotionCode(); ok {
		pricedLines = append(pricedLines, order.NewCommentLine(fmt.Sprintf("Applied promotion %s", code)))
	}

	linePrices := make([]kernel.Price, 0, len(pricedLines))
	for _, line := range pricedLines {
		linePrices = append(linePrices, line.LinePrice())
	}
	amountToBill, err := kernel.SumPrices(linePrices)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err)
	}

	priced, err := order.NewPricedOrder(validated, pricedLines, amountToBill)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err)
	}
	return priced, nil
}

func toPricedOrderLine(getPrice ports.PriceFunc, line order.ValidatedOrderLine) (order.PricedOrderLine, error) {
	unitPrice, err := getPrice(line.ProductCode())
	if err != nil {
		return order.PricedOrderLine{}, err
	}
	linePrice, err := kernel.MultiplyPrice(line.Quantity().Value(), unitPrice)
	if err != nil {
		return order.PricedOrderLine{}, err
	}
	return order.NewPricedProductLine(line, linePrice)
}
