package domain

import "time"

// RecommenderConfig is the persisted override for the suggestion engine's
// scoring weights and search bounds. Single row; defaults live in
// business/recommender.
type RecommenderConfig struct {
	ID uint `gorm:"primaryKey;column:id" json:"-"`

	CandidatePool int `gorm:"column:candidate_pool" json:"candidate_pool"`
	TriplePool    int `gorm:"column:triple_pool" json:"triple_pool"`
	QuadPool      int `gorm:"column:quad_pool" json:"quad_pool"`

	TripleThreshold int `gorm:"column:triple_threshold" json:"triple_threshold"`
	QuadThreshold   int `gorm:"column:quad_threshold" json:"quad_threshold"`
	MaxSuggestions  int `gorm:"column:max_suggestions" json:"max_suggestions"`

	BaseExactFit float64 `gorm:"column:base_exact_fit;type:numeric" json:"base_exact_fit"`
	BaseNearFit  float64 `gorm:"column:base_near_fit;type:numeric" json:"base_near_fit"`

	PopularityWeight float64 `gorm:"column:popularity_weight;type:numeric" json:"popularity_weight"`
	PopularityCap    float64 `gorm:"column:popularity_cap;type:numeric" json:"popularity_cap"`

	ComboWeight float64 `gorm:"column:combo_weight;type:numeric" json:"combo_weight"`
	ComboCap    float64 `gorm:"column:combo_cap;type:numeric" json:"combo_cap"`

	HourlyWeight  float64 `gorm:"column:hourly_weight;type:numeric" json:"hourly_weight"`
	HourlyItemCap float64 `gorm:"column:hourly_item_cap;type:numeric" json:"hourly_item_cap"`

	RecencyPenalty      float64 `gorm:"column:recency_penalty;type:numeric" json:"recency_penalty"`
	LowStockPenalty     float64 `gorm:"column:low_stock_penalty;type:numeric" json:"low_stock_penalty"`
	LowStockAt          int     `gorm:"column:low_stock_at" json:"low_stock_at"`
	CategoryPenaltyStep float64 `gorm:"column:category_penalty_step;type:numeric" json:"category_penalty_step"`
	SimplicityStep      float64 `gorm:"column:simplicity_step;type:numeric" json:"simplicity_step"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RecommenderConfig) TableName() string {
	return "recommender_config"
}
