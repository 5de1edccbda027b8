package recommender

import (
	"context"
	"smartShop/domain"
)

// loadConfig reads persisted overrides, falling back to the service default
// for anything unset or unreadable.
func (s *Service) loadConfig(ctx context.Context) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx)
	if err != nil || !ok {
		return s.defaultCfg
	}

	// start from defaults so an old row with missing columns keeps sane values
	cfg := s.defaultCfg

	if dbCfg.CandidatePool > 0 {
		cfg.CandidatePool = dbCfg.CandidatePool
	}
	if dbCfg.TriplePool > 0 {
		cfg.TriplePool = dbCfg.TriplePool
	}
	if dbCfg.QuadPool > 0 {
		cfg.QuadPool = dbCfg.QuadPool
	}
	if dbCfg.TripleThreshold > 0 {
		cfg.TripleThreshold = dbCfg.TripleThreshold
	}
	if dbCfg.QuadThreshold > 0 {
		cfg.QuadThreshold = dbCfg.QuadThreshold
	}
	if dbCfg.MaxSuggestions > 0 {
		cfg.MaxSuggestions = dbCfg.MaxSuggestions
	}

	if dbCfg.BaseExactFit > 0 {
		cfg.BaseExactFit = dbCfg.BaseExactFit
	}
	if dbCfg.BaseNearFit > 0 {
		cfg.BaseNearFit = dbCfg.BaseNearFit
	}
	if dbCfg.PopularityWeight > 0 {
		cfg.PopularityWeight = dbCfg.PopularityWeight
	}
	if dbCfg.PopularityCap > 0 {
		cfg.PopularityCap = dbCfg.PopularityCap
	}
	if dbCfg.ComboWeight > 0 {
		cfg.ComboWeight = dbCfg.ComboWeight
	}
	if dbCfg.ComboCap > 0 {
		cfg.ComboCap = dbCfg.ComboCap
	}
	if dbCfg.HourlyWeight > 0 {
		cfg.HourlyWeight = dbCfg.HourlyWeight
	}
	if dbCfg.HourlyItemCap > 0 {
		cfg.HourlyItemCap = dbCfg.HourlyItemCap
	}
	if dbCfg.RecencyPenalty > 0 {
		cfg.RecencyPenalty = dbCfg.RecencyPenalty
	}
	if dbCfg.LowStockPenalty > 0 {
		cfg.LowStockPenalty = dbCfg.LowStockPenalty
	}
	if dbCfg.LowStockAt > 0 {
		cfg.LowStockAt = dbCfg.LowStockAt
	}
	if dbCfg.CategoryPenaltyStep > 0 {
		cfg.CategoryPenaltyStep = dbCfg.CategoryPenaltyStep
	}
	if dbCfg.SimplicityStep > 0 {
		cfg.SimplicityStep = dbCfg.SimplicityStep
	}

	return cfg
}

// ConfigSnapshot returns the effective config as a persistable row, for the
// admin surface.
func (s *Service) ConfigSnapshot(ctx context.Context) domain.RecommenderConfig {
	cfg := s.loadConfig(ctx)
	return domain.RecommenderConfig{
		CandidatePool:       cfg.CandidatePool,
		TriplePool:          cfg.TriplePool,
		QuadPool:            cfg.QuadPool,
		TripleThreshold:     cfg.TripleThreshold,
		QuadThreshold:       cfg.QuadThreshold,
		MaxSuggestions:      cfg.MaxSuggestions,
		BaseExactFit:        cfg.BaseExactFit,
		BaseNearFit:         cfg.BaseNearFit,
		PopularityWeight:    cfg.PopularityWeight,
		PopularityCap:       cfg.PopularityCap,
		ComboWeight:         cfg.ComboWeight,
		ComboCap:            cfg.ComboCap,
		HourlyWeight:        cfg.HourlyWeight,
		HourlyItemCap:       cfg.HourlyItemCap,
		RecencyPenalty:      cfg.RecencyPenalty,
		LowStockPenalty:     cfg.LowStockPenalty,
		LowStockAt:          cfg.LowStockAt,
		CategoryPenaltyStep: cfg.CategoryPenaltyStep,
		SimplicityStep:      cfg.SimplicityStep,
	}
}

// SaveConfig persists weight overrides through the repository.
func (s *Service) SaveConfig(ctx context.Context, cfg domain.RecommenderConfig) error {
	if s.cfgRepo == nil {
		return nil
	}
	return s.cfgRepo.UpsertConfig(ctx, cfg)
}
