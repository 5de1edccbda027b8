package recommender

import (
	"fmt"
	"sort"
	"strings"

	"smartShop/domain"
)

// rankSuggestions deduplicates by canonical basket key, sorts by confidence
// descending (stable otherwise) and truncates to limit. It never pads: an
// empty input stays empty.
func rankSuggestions(suggestions []domain.SuggestedCombination, limit int) []domain.SuggestedCombination {
	seen := make(map[string]struct{}, len(suggestions))
	unique := make([]domain.SuggestedCombination, 0, len(suggestions))

	for _, s := range suggestions {
		key := basketKey(s.Items)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, s)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Confidence > unique[j].Confidence
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}

	return unique
}

// basketKey is the dedup key: sorted "productID:quantity" pairs, pipe-joined.
// Distinct from comboKey, which encodes one id per unit for frequency lookup.
func basketKey(items []domain.CombinationItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s:%d", item.Product.ID, item.Quantity))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
