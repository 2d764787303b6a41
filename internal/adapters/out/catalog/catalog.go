// Package catalog answers product existence and resolves price lookups from a
// cached copy of the product catalog.
//
// The cache is loaded from a PriceSource when the catalog is built and again by
// Refresh on a schedule. Promotion price tables are loaded on first use and
// dropped on refresh.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// ErrNoPrice is the cause reported for a product missing from the price tables.
var ErrNoPrice = errors.New("product has no price")

// Catalog is safe for concurrent use.
type Catalog struct {
	source ports.PriceSource
	logger *slog.Logger

	mu         sync.RWMutex
	standard   map[string]kernel.Price
	promotions map[string]map[string]kernel.Price
	// generation counts successful refreshes; promotion tables loaded under an
	// older generation are not cached.
	generation uint64
}

var (
	_ ports.ProductCatalog  = (*Catalog)(nil)
	_ ports.PricingResolver = (*Catalog)(nil)
)

// NewCatalog loads the standard prices from source, so a returned catalog
// always answers both ProductExists and PricingFunction from the same table.
func NewCatalog(ctx context.Context, source ports.PriceSource, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		source:     source,
		logger:     logger.With("component", "catalog"),
		promotions: make(map[string]map[string]kernel.Price),
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh reloads the standard prices and forgets every cached promotion.
// On error the previous tables stay in use.
func (c *Catalog) Refresh(ctx context.Context) error {
	standard, err := c.source.StandardPrices(ctx)
	if err != nil {
		return fmt.Errorf("load standard prices: %w", err)
	}

	c.mu.Lock()
	c.standard = standard
	c.promotions = make(map[string]map[string]kernel.Price)
	c.generation++
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "catalog refreshed", "products", len(standard))
	return nil
}

// ProductExists reports whether productCode has a standard price.
func (c *Catalog) ProductExists(productCode kernel.ProductCode) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.standard[productCode.String()]
	return ok
}

// PricingFunction returns a lookup over a snapshot of the price tables, so a
// Refresh during pricing does not change the prices of an order in flight.
// Products missing from a promotion are priced at their standard price.
func (c *Catalog) PricingFunction(ctx context.Context, method kernel.PricingMethod) (ports.PriceFunc, error) {
	c.mu.RLock()
	standard := c.standard
	c.mu.RUnlock()

	promotion, ok := method.PromotionCode()
	if !ok {
		return lookup(standard, nil), nil
	}

	promoted, err := c.promotionPrices(ctx, promotion)
	if err != nil {
		return nil, err
	}
	return lookup(standard, promoted), nil
}

func (c *Catalog) promotionPrices(ctx context.Context, promotion kernel.PromotionCode) (map[string]kernel.Price, error) {
	c.mu.RLock()
	prices, ok := c.promotions[promotion.String()]
	generation := c.generation
	c.mu.RUnlock()
	if ok {
		return prices, nil
	}

	prices, err := c.source.PromotionPrices(ctx, promotion)
	if err != nil {
		return nil, fmt.Errorf("load prices of promotion %s: %w", promotion, err)
	}

	c.mu.Lock()
	if c.generation == generation {
		c.promotions[promotion.String()] = prices
	}
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "promotion prices loaded", "promotion", promotion.String(), "products", len(prices))
	return prices, nil
}

func lookup(standard, promoted map[string]kernel.Price) ports.PriceFunc {
	return func(productCode kernel.ProductCode) (kernel.Price, error) {
		if price, ok := promoted[productCode.String()]; ok {
			return price, nil
		}
		if price, ok := standard[productCode.String()]; ok {
			return price, nil
		}
		return kernel.Price{}, errs.NewObjectNotFoundErrorWithCause("ProductCode", productCode.String(), ErrNoPrice)
	}
}
