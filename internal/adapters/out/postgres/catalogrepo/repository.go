package catalogrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordertaking/internal/core/domain/model/kernel"
)

// GormCatalogRepository reads and writes catalog prices using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Migrate creates or updates the catalog tables.
func (r *GormCatalogRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&ProductDTO{}, &PromotionPriceDTO{})
}

// SaveProduct inserts a product or replaces its standard price.
func (r *GormCatalogRepository) SaveProduct(ctx context.Context, code kernel.ProductCode, price kernel.Price) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(code, price)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// SavePromotionPrice inserts or replaces the price of a product under a promotion.
func (r *GormCatalogRepository) SavePromotionPrice(
	ctx context.Context,
	promotion kernel.PromotionCode,
	code kernel.ProductCode,
	price kernel.Price,
) error {
	if err := promotion.Validate(); err != nil {
		return err
	}
	if err := code.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	dto := promotionPriceFromDomain(promotion, code, price)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// StandardPrices returns the standard price of every product, keyed by product code.
func (r *GormCatalogRepository) StandardPrices(ctx context.Context) (map[string]kernel.Price, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	prices := make(map[string]kernel.Price, len(dtos))
	for _, dto := range dtos {
		code, price, err := toDomain(dto.Code, dto.Price)
		if err != nil {
			return nil, err
		}
		prices[code.String()] = price
	}
	return prices, nil
}

// PromotionPrices returns the prices a promotion overrides, keyed by product code.
// An unknown promotion yields an empty map.
func (r *GormCatalogRepository) PromotionPrices(ctx context.Context, promotion kernel.PromotionCode) (map[string]kernel.Price, error) {
	if err := promotion.Validate(); err != nil {
		return nil, err
	}

	var dtos []PromotionPriceDTO
	if err := r.db.WithContext(ctx).
		Where("promotion_code = ?", promotion.String()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	prices := make(map[string]kernel.Price, len(dtos))
	for _, dto := range dtos {
		code, price, err := toDomain(dto.ProductCode, dto.Price)
		if err != nil {
			return nil, err
		}
		prices[code.String()] = price
	}
	return prices, nil
}

// IsEmpty reports whether no product has been stored yet.
func (r *GormCatalogRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// SeedIfEmpty stores the given prices in one transaction when the catalog has
// no products yet. It reports whether anything was written.
//
// Parameters:
//   - standard: standard unit prices keyed by product code
//   - promotions: promotion prices keyed by promotion code, then product code
func (r *GormCatalogRepository) SeedIfEmpty(
	ctx context.Context,
	standard map[string]kernel.Price,
	promotions map[string]map[string]kernel.Price,
) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewGormCatalogRepository(tx)

		empty, err := txRepo.IsEmpty(ctx)
		if err != nil || !empty {
			return err
		}

		for raw, price := range standard {
			code, err := kernel.NewProductCode("ProductCode", raw)
			if err != nil {
				return err
			}
			if err = txRepo.SaveProduct(ctx, code, price); err != nil {
				return err
			}
		}

		for rawPromotion, prices := range promotions {
			promotion, err := kernel.NewPromotionCode("PromotionCode", rawPromotion)
			if err != nil {
				return err
			}
			for raw, price := range prices {
				code, err := kernel.NewProductCode("ProductCode", raw)
				if err != nil {
					return err
				}
				if err = txRepo.SavePromotionPrice(ctx, promotion, code, price); err != nil {
					return err
				}
			}
		}

		seeded = true
		return nil
	})
	return seeded, err
}
