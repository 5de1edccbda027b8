package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type SalesRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	FindAll(ctx context.Context) ([]domain.Sale, error)
	FindSince(ctx context.Context, sinceMs int64) ([]domain.Sale, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Sale, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	AdjustStockAndPopularity(ctx context.Context, id string, stockDelta, popularityDelta int) error
}

// LearningCache holds the serialized aggregates so each suggestion request
// does not replay the whole sale history.
type LearningCache interface {
	Get(ctx context.Context) (*domain.LearningData, bool, error)
	Set(ctx context.Context, ld *domain.LearningData) error
}

// SaleRecordedEvent is published after a sale is durably stored.
type SaleRecordedEvent struct {
	SaleID    string   `json:"sale_id"`
	Timestamp int64    `json:"timestamp"`
	Amount    float64  `json:"amount"`
	Items     []string `json:"items"`
}

type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, event SaleRecordedEvent) error
}

// ---- Service ----

type Service struct {
	salesRepo   SalesRepository
	productRepo ProductRepository
	cache       LearningCache
	publisher   EventPublisher
	now         func() time.Time
}

func NewService(
	salesRepo SalesRepository,
	productRepo ProductRepository,
	cache LearningCache,
	publisher EventPublisher,
) *Service {
	return &Service{
		salesRepo:   salesRepo,
		productRepo: productRepo,
		cache:       cache,
		publisher:   publisher,
		now:         time.Now,
	}
}

// RecordSale confirms a basket: stock down and popularity up per unit, one
// immutable Sale appended with items expanded per unit, aggregates updated,
// event published. The Sale write is the transaction boundary; cache and
// broker failures only log.
func (s *Service) RecordSale(ctx context.Context, amount float64, items []domain.SaleItemRequest) (domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sale{}, fmt.Errorf("context error: %w", err)
	}
	if amount <= 0 {
		return domain.Sale{}, errors.New("amount must be greater than zero")
	}
	if len(items) == 0 {
		return domain.Sale{}, errors.New("sale must contain at least one item")
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return domain.Sale{}, errors.New("item quantity must be greater than zero")
		}

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return domain.Sale{}, fmt.Errorf("look up product %s: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return domain.Sale{}, fmt.Errorf("insufficient stock for %s", product.Name)
		}
	}

	sale := domain.Sale{
		ID:        uuid.NewString(),
		Timestamp: s.now().UnixMilli(),
		Amount:    amount,
		Items:     ExpandItems(items),
	}

	if err := s.salesRepo.Create(ctx, &sale); err != nil {
		return domain.Sale{}, fmt.Errorf("failed to save sale: %w", err)
	}

	for _, item := range items {
		if err := s.productRepo.AdjustStockAndPopularity(ctx, item.ProductID, -item.Quantity, item.Quantity); err != nil {
			return domain.Sale{}, fmt.Errorf("failed to adjust stock for %s: %w", item.ProductID, err)
		}
	}

	s.refreshLearningCache(ctx, sale)

	if s.publisher != nil {
		event := SaleRecordedEvent{
			SaleID:    sale.ID,
			Timestamp: sale.Timestamp,
			Amount:    sale.Amount,
			Items:     sale.Items,
		}
		if err := s.publisher.PublishSaleRecorded(ctx, event); err != nil {
			logger.Warn("failed to publish sale event", "sale_id", sale.ID, "error", err)
		}
	}

	SalesRecordedTotal.Inc()

	logger.Info("sale recorded",
		"sale_id", sale.ID,
		"amount", sale.Amount,
		"units", len(sale.Items),
	)

	return sale, nil
}

// LearningData serves the recommender its aggregates: cache hit, or full
// replay on miss. Implements recommender.LearningProvider.
func (s *Service) LearningData(ctx context.Context) (*domain.LearningData, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		ld, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("learning cache read failed, replaying history", "error", err)
		} else if ok {
			return ld, nil
		}
	}

	history, err := s.salesRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sale history: %w", err)
	}

	ld := BuildLearningData(history)

	if s.cache != nil {
		if err := s.cache.Set(ctx, ld); err != nil {
			logger.Warn("learning cache write failed", "error", err)
		}
	}

	return ld, nil
}

// refreshLearningCache folds the new sale into the cached aggregates so the
// next suggestion request sees it without a replay.
func (s *Service) refreshLearningCache(ctx context.Context, sale domain.Sale) {
	if s.cache == nil {
		return
	}

	ld, ok, err := s.cache.Get(ctx)
	if err != nil || !ok {
		// nothing cached: next LearningData call replays including this sale
		return
	}

	ApplySale(ld, sale)

	if err := s.cache.Set(ctx, ld); err != nil {
		logger.Warn("learning cache refresh failed", "sale_id", sale.ID, "error", err)
	}
}
