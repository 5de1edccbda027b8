package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smartShop/business/recommender"
	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	AdjustStockAndPopularity(ctx context.Context, id string, stockDelta, popularityDelta int) error
}

// ProductDraft is what the shelf analyzer returns for one recognized item.
type ProductDraft struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Count int     `json:"count"`
}

type VisionRepository interface {
	AnalyzeShelf(ctx context.Context, imageURI string) ([]ProductDraft, error)
}

// ---- Inputs ----

type ProductInput struct {
	Name              string  `json:"name" validate:"required"`
	Price             float64 `json:"price" validate:"required,gt=0"`
	Stock             int     `json:"stock" validate:"gte=0"`
	Category          string  `json:"category"`
	PhotoURI          string  `json:"photo_uri"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

// ProductUpdate carries only the fields the caller wants changed.
type ProductUpdate struct {
	Name              *string  `json:"name"`
	Price             *float64 `json:"price"`
	Stock             *int     `json:"stock"`
	Category          *string  `json:"category"`
	PhotoURI          *string  `json:"photo_uri"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
}

// ---- Service ----

type Service struct {
	productRepo ProductRepository
	vision      VisionRepository
}

func NewService(productRepo ProductRepository, vision VisionRepository) *Service {
	return &Service{
		productRepo: productRepo,
		vision:      vision,
	}
}

func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	if strings.TrimSpace(input.Name) == "" {
		return domain.Product{}, errors.New("product name is required")
	}
	if input.Price <= 0 {
		return domain.Product{}, errors.New("product price must be greater than zero")
	}
	if input.Stock < 0 {
		return domain.Product{}, errors.New("product stock cannot be negative")
	}

	category := input.Category
	if category == "" {
		category = recommender.DetectCategory(input.Name)
	}

	product := domain.Product{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(input.Name),
		Price:             input.Price,
		Stock:             input.Stock,
		Category:          category,
		PhotoURI:          input.PhotoURI,
		LowStockThreshold: input.LowStockThreshold,
	}

	if err := s.productRepo.Create(ctx, &product); err != nil {
		return domain.Product{}, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}
	return s.productRepo.FindByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.productRepo.FindAll(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("look up product %s: %w", id, err)
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return domain.Product{}, errors.New("product name is required")
		}
		product.Name = strings.TrimSpace(*update.Name)
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return domain.Product{}, errors.New("product price must be greater than zero")
		}
		product.Price = *update.Price
	}
	if update.Stock != nil {
		if *update.Stock < 0 {
			return domain.Product{}, errors.New("product stock cannot be negative")
		}
		product.Stock = *update.Stock
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.PhotoURI != nil {
		product.PhotoURI = *update.PhotoURI
	}
	if update.LowStockThreshold != nil {
		product.LowStockThreshold = *update.LowStockThreshold
	}

	if err := s.productRepo.Update(ctx, &product); err != nil {
		return domain.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// AdjustStock applies a manual correction, e.g. breakage or a count audit.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("look up product %s: %w", id, err)
	}
	if product.Stock+delta < 0 {
		return domain.Product{}, errors.New("stock cannot go negative")
	}

	if err := s.productRepo.AdjustStockAndPopularity(ctx, id, delta, 0); err != nil {
		return domain.Product{}, fmt.Errorf("failed to adjust stock: %w", err)
	}

	product.Stock += delta
	return product, nil
}

// LowStock filters with each product's own threshold, so a fast mover with a
// raised threshold surfaces before it actually runs out.
func (s *Service) LowStock(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.Stock <= p.EffectiveLowStockThreshold() {
			low = append(low, p)
		}
	}
	return low, nil
}

// ImportShelf runs the vision analyzer over a shelf photo and creates a
// product per recognized draft. Drafts without a usable name or price are
// skipped, not fatal.
func (s *Service) ImportShelf(ctx context.Context, imageURI string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.vision == nil {
		return nil, errors.New("shelf analysis is not configured")
	}
	if strings.TrimSpace(imageURI) == "" {
		return nil, errors.New("image uri is required")
	}

	drafts, err := s.vision.AnalyzeShelf(ctx, imageURI)
	if err != nil {
		return nil, fmt.Errorf("analyze shelf photo: %w", err)
	}

	created := make([]domain.Product, 0, len(drafts))
	for _, draft := range drafts {
		if strings.TrimSpace(draft.Name) == "" || draft.Price <= 0 {
			logger.Warn("skipping unusable shelf draft", "name", draft.Name, "price", draft.Price)
			continue
		}

		stock := draft.Count
		if stock < 0 {
			stock = 0
		}

		product, err := s.CreateProduct(ctx, ProductInput{
			Name:  draft.Name,
			Price: draft.Price,
			Stock: stock,
		})
		if err != nil {
			return created, fmt.Errorf("import draft %q: %w", draft.Name, err)
		}
		created = append(created, product)
	}

	logger.Info("shelf import complete", "recognized", len(drafts), "created", len(created))
	return created, nil
}
