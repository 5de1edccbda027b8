package postgres

import (
	"context"
	"fmt"

	"smartShop/domain"

	"gorm.io/gorm"
)

type SalesRepository struct {
	DB *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{
		DB: db,
	}
}

func (r *SalesRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

// FindAll returns the full history in chronological order, the order the
// learning replay expects.
func (r *SalesRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sales []domain.Sale
	err := r.DB.WithContext(ctx).Order("timestamp asc").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sales: %w", err)
	}

	return sales, nil
}

func (r *SalesRepository) FindSince(ctx context.Context, sinceMs int64) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sales []domain.Sale
	err := r.DB.WithContext(ctx).Where("timestamp >= ?", sinceMs).Order("timestamp asc").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sales since %d: %w", sinceMs, err)
	}

	return sales, nil
}

func (r *SalesRepository) FindRecent(ctx context.Context, limit int) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sales []domain.Sale
	err := r.DB.WithContext(ctx).Order("timestamp desc").Limit(limit).Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent sales: %w", err)
	}

	return sales, nil
}
