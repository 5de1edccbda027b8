package restock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/google/uuid"
)

const historyLimit = 20

// ---- Repository interfaces ----

type RestockRepository interface {
	Create(ctx context.Context, restock *domain.Restock) error
	FindByID(ctx context.Context, id string) (domain.Restock, error)
	FindByProduct(ctx context.Context, productID string, limit int) ([]domain.Restock, error)
	FindAll(ctx context.Context) ([]domain.Restock, error)
	Update(ctx context.Context, restock *domain.Restock) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	AdjustStockAndPopularity(ctx context.Context, id string, stockDelta, popularityDelta int) error
}

// ---- Inputs ----

type RestockInput struct {
	ProductID   string  `json:"product_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
	ExpiryDate  *int64  `json:"expiry_date"`
	BatchID     string  `json:"batch_id"`
}

// ---- Service ----

type Service struct {
	restockRepo RestockRepository
	productRepo ProductRepository
	now         func() time.Time
}

func NewService(restockRepo RestockRepository, productRepo ProductRepository) *Service {
	return &Service{
		restockRepo: restockRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// AddRestock records a delivery batch and puts its units on the shelf.
func (s *Service) AddRestock(ctx context.Context, input RestockInput) (domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return domain.Restock{}, fmt.Errorf("context error: %w", err)
	}
	if input.ProductID == "" {
		return domain.Restock{}, errors.New("product id is required")
	}
	if input.Quantity <= 0 {
		return domain.Restock{}, errors.New("quantity must be greater than zero")
	}
	if input.CostPerUnit < 0 {
		return domain.Restock{}, errors.New("cost per unit cannot be negative")
	}

	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return domain.Restock{}, fmt.Errorf("look up product %s: %w", input.ProductID, err)
	}

	entry := domain.Restock{
		ID:          uuid.NewString(),
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		CostPerUnit: input.CostPerUnit,
		Supplier:    input.Supplier,
		Timestamp:   s.now().UnixMilli(),
		ExpiryDate:  input.ExpiryDate,
		BatchID:     input.BatchID,
	}

	if err := s.restockRepo.Create(ctx, &entry); err != nil {
		return domain.Restock{}, fmt.Errorf("failed to save restock: %w", err)
	}

	if err := s.productRepo.AdjustStockAndPopularity(ctx, input.ProductID, input.Quantity, 0); err != nil {
		return domain.Restock{}, fmt.Errorf("failed to add stock for %s: %w", input.ProductID, err)
	}

	logger.Info("restock recorded",
		"restock_id", entry.ID,
		"product_id", entry.ProductID,
		"quantity", entry.Quantity,
	)
	return entry, nil
}

// History returns the last batches for a product, newest first.
func (s *Service) History(ctx context.Context, productID string) ([]domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if productID == "" {
		return nil, errors.New("product id is required")
	}

	history, err := s.restockRepo.FindByProduct(ctx, productID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load restock history: %w", err)
	}
	return history, nil
}

// ExpiringSoon lists batches whose expiry falls within the next N days and
// that still have units on the shelf.
func (s *Service) ExpiringSoon(ctx context.Context, days int) ([]domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if days <= 0 {
		days = 7
	}

	all, err := s.restockRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restocks: %w", err)
	}

	nowMs := s.now().UnixMilli()
	horizon := nowMs + int64(days)*24*int64(time.Hour/time.Millisecond)

	soon := make([]domain.Restock, 0)
	for _, entry := range all {
		if entry.ExpiryDate == nil || entry.Remaining() == 0 {
			continue
		}
		if *entry.ExpiryDate >= nowMs && *entry.ExpiryDate <= horizon {
			soon = append(soon, entry)
		}
	}
	return soon, nil
}

// Expired lists batches past their expiry date with units still on the shelf.
func (s *Service) Expired(ctx context.Context) ([]domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	all, err := s.restockRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restocks: %w", err)
	}

	nowMs := s.now().UnixMilli()

	expired := make([]domain.Restock, 0)
	for _, entry := range all {
		if entry.ExpiryDate == nil || entry.Remaining() == 0 {
			continue
		}
		if *entry.ExpiryDate < nowMs {
			expired = append(expired, entry)
		}
	}
	return expired, nil
}

// Discard writes off whatever is left of a batch: the batch is marked fully
// consumed and the remaining units come off the product's stock.
func (s *Service) Discard(ctx context.Context, restockID string) (domain.Restock, error) {
	if err := ctx.Err(); err != nil {
		return domain.Restock{}, fmt.Errorf("context error: %w", err)
	}

	entry, err := s.restockRepo.FindByID(ctx, restockID)
	if err != nil {
		return domain.Restock{}, fmt.Errorf("look up restock %s: %w", restockID, err)
	}

	remaining := entry.Remaining()
	if remaining == 0 {
		return entry, nil
	}

	entry.Consumed = entry.Quantity
	if err := s.restockRepo.Update(ctx, &entry); err != nil {
		return domain.Restock{}, fmt.Errorf("failed to mark restock consumed: %w", err)
	}

	if err := s.productRepo.AdjustStockAndPopularity(ctx, entry.ProductID, -remaining, 0); err != nil {
		return domain.Restock{}, fmt.Errorf("failed to remove stock for %s: %w", entry.ProductID, err)
	}

	logger.Info("restock discarded",
		"restock_id", entry.ID,
		"product_id", entry.ProductID,
		"units", remaining,
	)
	return entry, nil
}
