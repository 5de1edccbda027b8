package recommender

import (
	"context"
	"smartShop/domain"
)

// Config holds every tunable of the suggestion engine: search-stage bounds,
// provisional stage confidences, and the weights of the scoring signals.
type Config struct {
	// candidate pool bounds per search stage
	CandidatePool int // popularity-ranked window for singles/pairs
	TriplePool    int // tighter window for triples
	QuadPool      int // tightest window for quadruples

	// stage gating: triples run only while results < TripleThreshold,
	// quadruples only while results < QuadThreshold
	TripleThreshold int
	QuadThreshold   int
	MaxSuggestions  int

	// provisional confidences per stage, used when no learning data is given
	StageSingle   float64
	StageMultiple float64
	StagePair     float64
	StageTriple   float64
	StageQuad     float64

	// scoring signal weights
	BaseExactFit        float64
	BaseNearFit         float64
	PopularityWeight    float64
	PopularityCap       float64
	ComboWeight         float64
	ComboCap            float64
	HourlyWeight        float64
	HourlyItemCap       float64
	RecencyPenalty      float64
	LowStockPenalty     float64
	LowStockAt          int // stock <= LowStockAt triggers the penalty
	CategoryPenaltyStep float64
	SimplicityStep      float64
}

const (
	defaultCandidatePool   = 20
	defaultTriplePool      = 10
	defaultQuadPool        = 8
	defaultTripleThreshold = 3
	defaultQuadThreshold   = 2
	defaultMaxSuggestions  = 3

	defaultStageSingle   = 1.0
	defaultStageMultiple = 0.95
	defaultStagePair     = 0.85
	defaultStageTriple   = 0.75
	defaultStageQuad     = 0.65

	defaultBaseExactFit        = 0.5
	defaultBaseNearFit         = 0.3
	defaultPopularityWeight    = 0.05
	defaultPopularityCap       = 0.25
	defaultComboWeight         = 0.10
	defaultComboCap            = 0.20
	defaultHourlyWeight        = 0.05
	defaultHourlyItemCap       = 0.05
	defaultRecencyPenalty      = 0.10
	defaultLowStockPenalty     = 0.20
	defaultLowStockAt          = 1
	defaultCategoryPenaltyStep = 0.10
	defaultSimplicityStep      = 0.05
)

func DefaultConfig() Config {
	return Config{
		CandidatePool:   defaultCandidatePool,
		TriplePool:      defaultTriplePool,
		QuadPool:        defaultQuadPool,
		TripleThreshold: defaultTripleThreshold,
		QuadThreshold:   defaultQuadThreshold,
		MaxSuggestions:  defaultMaxSuggestions,

		StageSingle:   defaultStageSingle,
		StageMultiple: defaultStageMultiple,
		StagePair:     defaultStagePair,
		StageTriple:   defaultStageTriple,
		StageQuad:     defaultStageQuad,

		BaseExactFit:        defaultBaseExactFit,
		BaseNearFit:         defaultBaseNearFit,
		PopularityWeight:    defaultPopularityWeight,
		PopularityCap:       defaultPopularityCap,
		ComboWeight:         defaultComboWeight,
		ComboCap:            defaultComboCap,
		HourlyWeight:        defaultHourlyWeight,
		HourlyItemCap:       defaultHourlyItemCap,
		RecencyPenalty:      defaultRecencyPenalty,
		LowStockPenalty:     defaultLowStockPenalty,
		LowStockAt:          defaultLowStockAt,
		CategoryPenaltyStep: defaultCategoryPenaltyStep,
		SimplicityStep:      defaultSimplicityStep,
	}
}

// ConfigRepository reads the persisted weight overrides, if any.
type ConfigRepository interface {
	GetConfig(ctx context.Context) (domain.RecommenderConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RecommenderConfig) error
}
