package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartShop/domain"

	"gorm.io/gorm"
)

type RestockRepository struct {
	DB *gorm.DB
}

func NewRestockRepository(db *gorm.DB) *RestockRepository {
	return &RestockRepository{
		DB: db,
	}
}

func (r *RestockRepository) Create(ctx context.Context, restock *domain.Restock) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(restock).Error; err != nil {
		return fmt.Errorf("failed to create restock: %w", err)
	}

	return nil
}

func (r *RestockRepository) FindByID(ctx context.Context, id string) (domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return domain.Restock{}, fmt.Errorf("context error: %w", err)
	}

	var restock domain.Restock

	err := r.DB.WithContext(ctx).First(&restock, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Restock{}, errors.New("restock not found")
		}
		return domain.Restock{}, fmt.Errorf("failed to find restock: %w", err)
	}

	return restock, nil
}

func (r *RestockRepository) FindByProduct(ctx context.Context, productID string, limit int) ([]domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var restocks []domain.Restock
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("timestamp desc").
		Limit(limit).
		Find(&restocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find restocks for product %s: %w", productID, err)
	}

	return restocks, nil
}

func (r *RestockRepository) FindAll(ctx context.Context) ([]domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var restocks []domain.Restock
	err := r.DB.WithContext(ctx).Order("timestamp desc").Find(&restocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find restocks: %w", err)
	}

	return restocks, nil
}

func (r *RestockRepository) Update(ctx context.Context, restock *domain.Restock) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Restock{}).Where("id = ?", restock.ID).Updates(map[string]interface{}{
		"consumed": restock.Consumed,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update restock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("restock not found")
	}

	return nil
}
