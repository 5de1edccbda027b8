package recommender

import (
	"testing"
	"time"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64, stock, popularity int) domain.Product {
	return domain.Product{ID: id, Name: id, Price: price, Stock: stock, Popularity: popularity}
}

var noon = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func TestSingleExactMatch(t *testing.T) {
	products := []domain.Product{product("a", 20, 5, 0)}

	got := SuggestCombinations(products, 20, nil, noon)

	require.Len(t, got, 1)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "a", got[0].Items[0].Product.ID)
	assert.Equal(t, 1, got[0].Items[0].Quantity)
	assert.Equal(t, 20.0, got[0].Total)
	assert.Equal(t, 1.0, got[0].Confidence)
}

func TestSameProductMultipleUnits(t *testing.T) {
	products := []domain.Product{product("a", 10, 10, 0)}

	got := SuggestCombinations(products, 30, nil, noon)

	require.Len(t, got, 1)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "a", got[0].Items[0].Product.ID)
	assert.Equal(t, 3, got[0].Items[0].Quantity)
	assert.Equal(t, 30.0, got[0].Total)
	assert.Equal(t, 0.95, got[0].Confidence)
}

func TestMultipleUnitsStockBound(t *testing.T) {
	// only 2 on the shelf: the multi-unit stage must not offer 3 units, so
	// the only route to 30 is the lower-confidence triple stage
	low := []domain.Product{product("a", 10, 2, 0)}

	got := SuggestCombinations(low, 30, nil, noon)

	require.Len(t, got, 1)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, 3, got[0].Items[0].Quantity)
	assert.Equal(t, 0.75, got[0].Confidence)

	// with enough stock the same basket comes from the multi-unit stage
	stocked := []domain.Product{product("a", 10, 3, 0)}

	got = SuggestCombinations(stocked, 30, nil, noon)

	require.NotEmpty(t, got)
	assert.Equal(t, 0.95, got[0].Confidence)
}

func TestPairCombinations(t *testing.T) {
	products := []domain.Product{
		product("a", 15, 5, 2),
		product("b", 15, 5, 1),
	}

	got := SuggestCombinations(products, 30, nil, noon)

	require.NotEmpty(t, got)
	keys := make(map[string]bool)
	for _, s := range got {
		assert.Equal(t, 30.0, s.Total)
		keys[basketKey(s.Items)] = true
	}
	// the mixed pair must be among the distinct canonical baskets
	assert.True(t, keys["a:1|b:1"], "expected a+b pair, got %v", keys)
}

func TestTriplesOnlyWhenFewResults(t *testing.T) {
	// 5+10+15 = 30, and no single/double stage can reach 30
	products := []domain.Product{
		product("a", 4, 5, 3),
		product("b", 9, 5, 2),
		product("c", 17, 5, 1),
	}

	got := SuggestCombinations(products, 30, nil, noon)

	require.Len(t, got, 1)
	assert.Equal(t, 0.75, got[0].Confidence)
	assert.Len(t, got[0].Items, 3)
}

func TestQuadrupleConsolidatesQuantities(t *testing.T) {
	products := []domain.Product{
		product("a", 7, 10, 2),
		product("b", 9, 10, 1),
	}

	// 7+7+7+9 = 30: a appears three times and must collapse into one entry
	got := SuggestCombinations(products, 30, nil, noon)

	require.NotEmpty(t, got)
	found := false
	for _, s := range got {
		if basketKey(s.Items) == "a:3|b:1" {
			found = true
			assert.Len(t, s.Items, 2)
		}
	}
	assert.True(t, found, "expected consolidated a:3|b:1 basket")
}

func TestEmptyCatalog(t *testing.T) {
	got := SuggestCombinations(nil, 50, nil, noon)
	assert.Empty(t, got)
}

func TestNoAffordableProducts(t *testing.T) {
	products := []domain.Product{
		product("a", 80, 5, 0),
		product("b", 120, 5, 0),
	}

	got := SuggestCombinations(products, 50, nil, noon)
	assert.Empty(t, got)
}

func TestOutOfStockExcluded(t *testing.T) {
	products := []domain.Product{product("a", 20, 0, 10)}

	got := SuggestCombinations(products, 20, nil, noon)
	assert.Empty(t, got)
}

func TestExactTotalInvariant(t *testing.T) {
	products := []domain.Product{
		product("a", 5, 20, 9),
		product("b", 10, 20, 8),
		product("c", 15, 20, 7),
		product("d", 25, 20, 6),
	}

	for _, amount := range []float64{5, 15, 25, 30, 40, 55} {
		for _, s := range SuggestCombinations(products, amount, nil, noon) {
			total := 0.0
			for _, item := range s.Items {
				total += item.Product.Price * float64(item.Quantity)
			}
			assert.Equal(t, amount, total)
			assert.Equal(t, amount, s.Total)
		}
	}
}

func TestCandidatePoolBoundedByPopularity(t *testing.T) {
	// 21 cheap unpopular products plus one popular exact match: the unpopular
	// tail must never crowd out the popular candidate
	products := make([]domain.Product, 0, 22)
	for i := 0; i < 21; i++ {
		products = append(products, product(string(rune('a'+i)), 3, 5, 0))
	}
	products = append(products, product("star", 20, 5, 50))

	got := SuggestCombinations(products, 20, nil, noon)

	require.NotEmpty(t, got)
	assert.Equal(t, "star", got[0].Items[0].Product.ID)
}
