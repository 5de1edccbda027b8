package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartShop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DetectorConfigRepository struct {
	DB *gorm.DB
}

func NewDetectorConfigRepository(db *gorm.DB) *DetectorConfigRepository {
	return &DetectorConfigRepository{
		DB: db,
	}
}

func (r *DetectorConfigRepository) Get(ctx context.Context) (domain.DetectorConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectorConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.DetectorConfig

	err := r.DB.WithContext(ctx).First(&cfg, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DetectorConfig{}, false, nil
		}
		return domain.DetectorConfig{}, false, fmt.Errorf("failed to find detector config: %w", err)
	}

	return cfg, true, nil
}

func (r *DetectorConfigRepository) Upsert(ctx context.Context, cfg *domain.DetectorConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert detector config: %w", err)
	}

	return nil
}

type DetectionEventRepository struct {
	DB *gorm.DB
}

func NewDetectionEventRepository(db *gorm.DB) *DetectionEventRepository {
	return &DetectionEventRepository{
		DB: db,
	}
}

func (r *DetectionEventRepository) Create(ctx context.Context, event *domain.DetectionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create detection event: %w", err)
	}

	return nil
}

func (r *DetectionEventRepository) FindByID(ctx context.Context, id string) (domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("context error: %w", err)
	}

	var event domain.DetectionEvent

	err := r.DB.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DetectionEvent{}, errors.New("detection event not found")
		}
		return domain.DetectionEvent{}, fmt.Errorf("failed to find detection event: %w", err)
	}

	return event, nil
}

func (r *DetectionEventRepository) FindRecent(ctx context.Context, limit int) ([]domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.DetectionEvent
	err := r.DB.WithContext(ctx).Order("timestamp desc").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find detection events: %w", err)
	}

	return events, nil
}

func (r *DetectionEventRepository) FindAll(ctx context.Context) ([]domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.DetectionEvent
	err := r.DB.WithContext(ctx).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find detection events: %w", err)
	}

	return events, nil
}

func (r *DetectionEventRepository) Update(ctx context.Context, event *domain.DetectionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.DetectionEvent{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
		"is_true_positive": event.IsTruePositive,
		"is_processed":     event.IsProcessed,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update detection event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("detection event not found")
	}

	return nil
}
