package recommender

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// LearningProvider hands the scorer its point-in-time sales aggregates.
type LearningProvider interface {
	LearningData(ctx context.Context) (*domain.LearningData, error)
}

// ---- Service ----

type Service struct {
	productRepo ProductRepository
	learning    LearningProvider
	cfgRepo     ConfigRepository
	defaultCfg  Config
	now         func() time.Time
}

func NewService(
	productRepo ProductRepository,
	learning LearningProvider,
	cfgRepo ConfigRepository,
	defaultCfg Config,
) *Service {
	return &Service{
		productRepo: productRepo,
		learning:    learning,
		cfgRepo:     cfgRepo,
		defaultCfg:  defaultCfg,
		now:         time.Now,
	}
}

// Suggest loads a catalog snapshot plus learning aggregates and runs the pure
// suggestion engine against them. Empty results are a normal outcome, not an
// error; a non-positive amount is a caller bug and is rejected outright.
func (s *Service) Suggest(ctx context.Context, amount float64) ([]domain.SuggestedCombination, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if amount <= 0 {
		return nil, errors.New("amount must be greater than zero")
	}

	cfg := s.loadConfig(ctx)

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}

	// learning data is best-effort: without it the provisional stage
	// confidences still produce a usable ranking
	var learning *domain.LearningData
	if s.learning != nil {
		learning, err = s.learning.LearningData(ctx)
		if err != nil {
			logger.Warn("learning data unavailable, using stage confidences", "error", err)
			learning = nil
		}
	}

	suggestions := SuggestCombinationsWithConfig(products, amount, learning, s.now(), cfg)

	outcome := "matched"
	if len(suggestions) == 0 {
		outcome = "no_match"
	}
	SuggestionRequestsTotal.WithLabelValues(outcome).Inc()
	SuggestionResultCount.Observe(float64(len(suggestions)))

	tid := TraceIDFromContext(ctx)
	logger.Debug("suggest_combinations",
		"trace_id", tid,
		"amount", amount,
		"catalog_size", len(products),
		"has_learning", learning != nil,
		"result_count", len(suggestions),
	)

	return suggestions, nil
}
