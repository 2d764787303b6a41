package catalog

import (
	"context"
	"maps"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
)

// StaticPriceSource serves fixed price tables. It backs the catalog when no
// database is configured and seeds an empty database.
type StaticPriceSource struct {
	Standard   map[string]kernel.Price
	Promotions map[string]map[string]kernel.Price
}

// DefaultPriceSource returns the built-in catalog: two widgets and two gizmos
// at 10.00, with the HALF and QUARTER promotions on W1234.
func DefaultPriceSource() StaticPriceSource {
	ten := mustPrice("10.00")
	return StaticPriceSource{
		Standard: map[string]kernel.Price{
			"W1234": ten,
			"W5678": ten,
			"G123":  ten,
			"G456":  ten,
		},
		Promotions: map[string]map[string]kernel.Price{
			"HALF":    {"W1234": mustPrice("5.00")},
			"QUARTER": {"W1234": mustPrice("2.50")},
		},
	}
}

func (s StaticPriceSource) StandardPrices(context.Context) (map[string]kernel.Price, error) {
	return maps.Clone(s.Standard), nil
}

func (s StaticPriceSource) PromotionPrices(_ context.Context, promotion kernel.PromotionCode) (map[string]kernel.Price, error) {
	return maps.Clone(s.Promotions[promotion.String()]), nil
}

func mustPrice(s string) kernel.Price {
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return p
}
