package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartShop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShopContextRepository struct {
	DB *gorm.DB
}

func NewShopContextRepository(db *gorm.DB) *ShopContextRepository {
	return &ShopContextRepository{
		DB: db,
	}
}

func (r *ShopContextRepository) Get(ctx context.Context) (domain.ShopContext, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShopContext{}, false, fmt.Errorf("context error: %w", err)
	}

	var shopCtx domain.ShopContext

	err := r.DB.WithContext(ctx).First(&shopCtx, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShopContext{}, false, nil
		}
		return domain.ShopContext{}, false, fmt.Errorf("failed to find shop context: %w", err)
	}

	return shopCtx, true, nil
}

func (r *ShopContextRepository) Upsert(ctx context.Context, shopCtx *domain.ShopContext) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(shopCtx).Error
	if err != nil {
		return fmt.Errorf("failed to upsert shop context: %w", err)
	}

	return nil
}
