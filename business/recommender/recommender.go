package recommender

import (
	"time"

	"smartShop/domain"
)

// SuggestCombinations proposes up to three product baskets whose prices sum
// exactly to amount, ranked by confidence. Pure function over its inputs:
// identical catalog, amount, learning data and time always yield identical
// output. When learning is nil the provisional per-stage confidences stand.
//
// Callers must guarantee amount > 0; the service layer rejects anything else
// before reaching this function.
func SuggestCombinations(
	products []domain.Product,
	amount float64,
	learning *domain.LearningData,
	at time.Time,
) []domain.SuggestedCombination {
	return SuggestCombinationsWithConfig(products, amount, learning, at, DefaultConfig())
}

// SuggestCombinationsWithConfig is SuggestCombinations with explicit weights.
func SuggestCombinationsWithConfig(
	products []domain.Product,
	amount float64,
	learning *domain.LearningData,
	at time.Time,
	cfg Config,
) []domain.SuggestedCombination {
	suggestions := searchCombinations(products, amount, cfg)
	if len(suggestions) == 0 {
		return []domain.SuggestedCombination{}
	}

	if learning != nil {
		for i := range suggestions {
			confidence, reasons := scoreCombination(suggestions[i], *learning, amount, at, cfg)
			suggestions[i].Confidence = confidence
			suggestions[i].Reasons = reasons
		}
	}

	return rankSuggestions(suggestions, cfg.MaxSuggestions)
}
