package domain

// CombinationItem is one product line of a suggested basket.
type CombinationItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// SuggestedCombination is a basket whose total exactly matches the observed
// payment amount, plus a [0,1] ranking confidence and display-only reasons.
type SuggestedCombination struct {
	Items      []CombinationItem `json:"items"`
	Total      float64           `json:"total"`
	Confidence float64           `json:"confidence"`
	Reasons    []string          `json:"reasons,omitempty"`
}

// LearningData bundles the three read-only sales aggregates consumed by the
// confidence scorer. All three are rebuildable by replaying the full sale
// history; none is independently authoritative.
type LearningData struct {
	LastTenSales []Sale                 `json:"last_ten_sales"`
	HourlyStats  map[int]map[string]int `json:"hourly_stats"` // hour -> productID -> units sold
	ComboStats   map[string]int         `json:"combo_stats"`  // sorted pipe-joined ids -> sale count
}
