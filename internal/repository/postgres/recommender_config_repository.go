package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartShop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommenderConfigRepository struct {
	DB *gorm.DB
}

func NewRecommenderConfigRepository(db *gorm.DB) *RecommenderConfigRepository {
	return &RecommenderConfigRepository{
		DB: db,
	}
}

func (r *RecommenderConfigRepository) GetConfig(ctx context.Context) (domain.RecommenderConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommenderConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.RecommenderConfig

	err := r.DB.WithContext(ctx).First(&cfg, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecommenderConfig{}, false, nil
		}
		return domain.RecommenderConfig{}, false, fmt.Errorf("failed to find recommender config: %w", err)
	}

	return cfg, true, nil
}

func (r *RecommenderConfigRepository) UpsertConfig(ctx context.Context, cfg domain.RecommenderConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	cfg.ID = 1
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recommender config: %w", err)
	}

	return nil
}
