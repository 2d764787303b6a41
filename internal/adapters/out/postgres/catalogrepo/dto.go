// Package catalogrepo persists the product catalog: the standard price of every
// product we sell and the per-promotion price overrides.
package catalogrepo

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
)

// ProductDTO is a product we sell with its standard unit price.
type ProductDTO struct {
	Code  string          `gorm:"type:varchar(5);primaryKey"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

// PromotionPriceDTO is the unit price of a product under a promotion.
type PromotionPriceDTO struct {
	PromotionCode string          `gorm:"type:varchar(50);primaryKey"`
	ProductCode   string          `gorm:"type:varchar(5);primaryKey"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default "promotion_price_dtos".
func (PromotionPriceDTO) TableName() string {
	return "promotion_prices"
}

func productFromDomain(code kernel.ProductCode, price kernel.Price) ProductDTO {
	return ProductDTO{Code: code.String(), Price: price.Value()}
}

func promotionPriceFromDomain(promotion kernel.PromotionCode, code kernel.ProductCode, price kernel.Price) PromotionPriceDTO {
	return PromotionPriceDTO{
		PromotionCode: promotion.String(),
		ProductCode:   code.String(),
		Price:         price.Value(),
	}
}

// toDomain re-validates a stored row, so a bad row is reported instead of
// being used to price an order.
func toDomain(code string, price decimal.Decimal) (kernel.ProductCode, kernel.Price, error) {
	productCode, err := kernel.NewProductCode("ProductCode", code)
	if err != nil {
		return kernel.ProductCode{}, kernel.Price{}, err
	}
	p, err := kernel.NewPrice(price)
	if err != nil {
		return kernel.ProductCode{}, kernel.Price{}, err
	}
	return productCode, p, nil
}
