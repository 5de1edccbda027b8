package recommender

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"smartShop/domain"
)

// scoreCombination blends the base price fit with six behavioral signals into
// a clamped [0,1] confidence plus display-only reason strings. The hour used
// by the time-of-day signal comes from at, never from the wall clock, so the
// whole scorer stays deterministic.
func scoreCombination(
	suggestion domain.SuggestedCombination,
	learning domain.LearningData,
	targetAmount float64,
	at time.Time,
	cfg Config,
) (float64, []string) {
	var reasons []string
	score := 0.0

	// base price fit
	if suggestion.Total == targetAmount {
		score += cfg.BaseExactFit
	} else {
		score += cfg.BaseNearFit
	}

	// popularity boost
	popSum := 0
	for _, item := range suggestion.Items {
		popSum += item.Product.Popularity
	}
	avgPopularity := float64(popSum) / float64(len(suggestion.Items))
	popularityBoost := min(cfg.PopularityCap, avgPopularity*cfg.PopularityWeight)
	score += popularityBoost
	if popularityBoost > 0.1 {
		reasons = append(reasons, "Popular items")
	}

	// combo frequency boost
	comboCount := learning.ComboStats[comboKey(suggestion.Items)]
	comboBoost := min(cfg.ComboCap, float64(comboCount)*cfg.ComboWeight)
	score += comboBoost
	if comboCount > 0 {
		reasons = append(reasons, fmt.Sprintf("Bought together %dx before", comboCount))
	}

	// time-of-day boost, capped per item
	hourlyBoost := 0.0
	if hourly, ok := learning.HourlyStats[at.Hour()]; ok {
		for _, item := range suggestion.Items {
			hourCount := hourly[item.Product.ID]
			hourlyBoost += min(cfg.HourlyItemCap, float64(hourCount)*cfg.HourlyWeight)
		}
	}
	score += hourlyBoost
	if hourlyBoost > 0.05 {
		reasons = append(reasons, "Popular in "+dayPartLabel(at.Hour()))
	}

	// recency dampening
	recentIDs := make(map[string]struct{})
	for _, sale := range learning.LastTenSales {
		for _, id := range sale.Items {
			recentIDs[id] = struct{}{}
		}
	}
	for _, item := range suggestion.Items {
		if _, ok := recentIDs[item.Product.ID]; ok {
			score -= cfg.RecencyPenalty
			reasons = append(reasons, "Recently sold (less likely)")
			break
		}
	}

	// low stock penalty
	for _, item := range suggestion.Items {
		if item.Product.Stock <= cfg.LowStockAt {
			score -= cfg.LowStockPenalty
			reasons = append(reasons, "Low stock warning")
			break
		}
	}

	// weird combo penalty: many distinct categories in a larger basket
	if len(suggestion.Items) > 2 {
		distinct := make(map[string]struct{})
		for _, item := range suggestion.Items {
			distinct[DetectCategory(item.Product.Name)] = struct{}{}
		}
		if len(distinct) > 2 {
			score -= float64(len(distinct)-2) * cfg.CategoryPenaltyStep
			reasons = append(reasons, "Unusual combination")
		}
	}

	// simplicity bonus
	score += float64(4-len(suggestion.Items)) * cfg.SimplicityStep
	if len(suggestion.Items) == 1 {
		reasons = append(reasons, "Simple single item")
	}

	return clamp01(score), reasons
}

// comboKey builds the canonical co-purchase lookup key: one product id per
// unit, sorted, pipe-joined. Matches the key the sales aggregates are written
// under.
func comboKey(items []domain.CombinationItem) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		for range item.Quantity {
			ids = append(ids, item.Product.ID)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

func dayPartLabel(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
