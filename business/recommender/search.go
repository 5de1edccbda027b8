package recommender

import (
	"math"
	"sort"

	"smartShop/domain"
)

// searchCombinations enumerates baskets whose total price exactly equals
// amount. Stages run in order of basket size so that simpler combinations fill
// the result list first; the triple and quadruple stages are skipped entirely
// once enough simpler matches exist.
func searchCombinations(products []domain.Product, amount float64, cfg Config) []domain.SuggestedCombination {
	var suggestions []domain.SuggestedCombination

	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Price <= amount && p.Stock > 0 {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return nil
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Popularity > available[j].Popularity
	})

	top := available
	if len(top) > cfg.CandidatePool {
		top = top[:cfg.CandidatePool]
	}

	// stage A: single unit exact match
	for _, p := range top {
		if p.Price == amount {
			suggestions = append(suggestions, domain.SuggestedCombination{
				Items:      []domain.CombinationItem{{Product: p, Quantity: 1}},
				Total:      p.Price,
				Confidence: cfg.StageSingle,
			})
		}
	}

	// stage B: multiple units of the same product
	for _, p := range top {
		quantity := int(math.Floor(amount / p.Price))
		if quantity > 1 && quantity <= p.Stock && p.Price*float64(quantity) == amount {
			suggestions = append(suggestions, domain.SuggestedCombination{
				Items:      []domain.CombinationItem{{Product: p, Quantity: quantity}},
				Total:      p.Price * float64(quantity),
				Confidence: cfg.StageMultiple,
			})
		}
	}

	// stage C: unordered pairs, same product twice allowed
	for i := 0; i < len(top); i++ {
		for j := i; j < len(top); j++ {
			p1, p2 := top[i], top[j]
			if p1.Price+p2.Price != amount {
				continue
			}

			var items []domain.CombinationItem
			if i == j {
				items = []domain.CombinationItem{{Product: p1, Quantity: 2}}
			} else {
				items = []domain.CombinationItem{
					{Product: p1, Quantity: 1},
					{Product: p2, Quantity: 1},
				}
			}

			suggestions = append(suggestions, domain.SuggestedCombination{
				Items:      items,
				Total:      p1.Price + p2.Price,
				Confidence: cfg.StagePair,
			})
		}
	}

	// stage D: triples, only while simpler stages left gaps
	if len(suggestions) < cfg.TripleThreshold {
		n := min(cfg.TriplePool, len(top))
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				for k := j; k < n; k++ {
					p1, p2, p3 := top[i], top[j], top[k]
					if p1.Price+p2.Price+p3.Price != amount {
						continue
					}
					suggestions = append(suggestions, domain.SuggestedCombination{
						Items:      consolidateItems([]domain.Product{p1, p2, p3}),
						Total:      amount,
						Confidence: cfg.StageTriple,
					})
				}
			}
		}
	}

	// stage E: quadruples, tightest bound
	if len(suggestions) < cfg.QuadThreshold {
		n := min(cfg.QuadPool, len(top))
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				for k := j; k < n; k++ {
					for l := k; l < n; l++ {
						p1, p2, p3, p4 := top[i], top[j], top[k], top[l]
						if p1.Price+p2.Price+p3.Price+p4.Price != amount {
							continue
						}
						suggestions = append(suggestions, domain.SuggestedCombination{
							Items:      consolidateItems([]domain.Product{p1, p2, p3, p4}),
							Total:      amount,
							Confidence: cfg.StageQuad,
						})
					}
				}
			}
		}
	}

	return suggestions
}

// consolidateItems merges repeated products into a single item entry with a
// summed quantity, preserving first-seen order.
func consolidateItems(products []domain.Product) []domain.CombinationItem {
	index := make(map[string]int, len(products))
	items := make([]domain.CombinationItem, 0, len(products))

	for _, p := range products {
		if at, ok := index[p.ID]; ok {
			items[at].Quantity++
			continue
		}
		index[p.ID] = len(items)
		items = append(items, domain.CombinationItem{Product: p, Quantity: 1})
	}

	return items
}
