package recommender

import (
	"testing"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basket(conf float64, items ...domain.CombinationItem) domain.SuggestedCombination {
	return domain.SuggestedCombination{Items: items, Confidence: conf}
}

func TestRankDeduplicatesKeepingFirst(t *testing.T) {
	a := product("a", 10, 5, 0)

	first := basket(0.95, domain.CombinationItem{Product: a, Quantity: 3})
	duplicate := basket(0.75, domain.CombinationItem{Product: a, Quantity: 3})

	got := rankSuggestions([]domain.SuggestedCombination{first, duplicate}, 3)

	require.Len(t, got, 1)
	assert.Equal(t, 0.95, got[0].Confidence)
}

func TestRankSortsByConfidenceDescending(t *testing.T) {
	a := product("a", 10, 5, 0)
	b := product("b", 20, 5, 0)
	c := product("c", 30, 5, 0)

	got := rankSuggestions([]domain.SuggestedCombination{
		basket(0.60, domain.CombinationItem{Product: a, Quantity: 1}),
		basket(0.90, domain.CombinationItem{Product: b, Quantity: 1}),
		basket(0.75, domain.CombinationItem{Product: c, Quantity: 1}),
	}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, 0.90, got[0].Confidence)
	assert.Equal(t, 0.75, got[1].Confidence)
	assert.Equal(t, 0.60, got[2].Confidence)
}

func TestRankTruncatesToLimit(t *testing.T) {
	var in []domain.SuggestedCombination
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		p := product(id, float64(10+i), 5, 0)
		in = append(in, basket(float64(i)/10, domain.CombinationItem{Product: p, Quantity: 1}))
	}

	got := rankSuggestions(in, 3)
	assert.Len(t, got, 3)
}

func TestRankEmptyStaysEmpty(t *testing.T) {
	assert.Empty(t, rankSuggestions(nil, 3))
}

func TestBasketKeyOrderIndependent(t *testing.T) {
	a := product("a", 10, 5, 0)
	b := product("b", 20, 5, 0)

	k1 := basketKey([]domain.CombinationItem{{Product: a, Quantity: 2}, {Product: b, Quantity: 1}})
	k2 := basketKey([]domain.CombinationItem{{Product: b, Quantity: 1}, {Product: a, Quantity: 2}})

	assert.Equal(t, k1, k2)
	assert.Equal(t, "a:2|b:1", k1)
}

func TestBasketKeyDistinguishesQuantities(t *testing.T) {
	a := product("a", 10, 5, 0)

	k1 := basketKey([]domain.CombinationItem{{Product: a, Quantity: 2}})
	k2 := basketKey([]domain.CombinationItem{{Product: a, Quantity: 3}})

	assert.NotEqual(t, k1, k2)
}
