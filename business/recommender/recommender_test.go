package recommender

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.Product {
	return []domain.Product{
		product("tea", 10, 8, 9),
		product("biscuit", 5, 12, 7),
		product("milk", 25, 6, 6),
		product("bread", 20, 4, 5),
		product("soap", 30, 3, 2),
	}
}

func TestSuggestionsBoundedAndSorted(t *testing.T) {
	for _, amount := range []float64{5, 10, 15, 20, 25, 30, 35, 40, 50, 60} {
		got := SuggestCombinations(sampleCatalog(), amount, nil, noon)

		assert.LessOrEqual(t, len(got), 3)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
		}

		seen := make(map[string]bool)
		for _, s := range got {
			key := basketKey(s.Items)
			assert.False(t, seen[key], "duplicate basket %s for amount %v", key, amount)
			seen[key] = true

			assert.GreaterOrEqual(t, s.Confidence, 0.0)
			assert.LessOrEqual(t, s.Confidence, 1.0)
		}
	}
}

func TestSuggestionsDeterministic(t *testing.T) {
	learning := &domain.LearningData{
		LastTenSales: []domain.Sale{{ID: "s1", Items: []string{"tea"}}},
		HourlyStats:  map[int]map[string]int{12: {"biscuit": 3}},
		ComboStats:   map[string]int{"biscuit|tea": 2},
	}

	first := SuggestCombinations(sampleCatalog(), 15, learning, noon)
	second := SuggestCombinations(sampleCatalog(), 15, learning, noon)

	assert.Equal(t, first, second)
}

func TestLearningRerankOverridesStageOrder(t *testing.T) {
	products := []domain.Product{
		product("a", 15, 5, 0),
		product("b", 15, 5, 0),
	}

	// a+b bought together often: the pair should outrank the qty-2 singles
	// despite its lower provisional stage confidence
	learning := &domain.LearningData{
		ComboStats: map[string]int{"a|b": 4},
	}

	got := SuggestCombinations(products, 30, learning, noon)

	require.NotEmpty(t, got)
	assert.Equal(t, "a:1|b:1", basketKey(got[0].Items))
	reasons := got[0].Reasons
	assert.Contains(t, reasons, "Bought together 4x before")
}

// ---- service ----

type stubProductRepo struct {
	products []domain.Product
	err      error
}

func (r stubProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.products, r.err
}

type stubLearning struct {
	data *domain.LearningData
	err  error
}

func (l stubLearning) LearningData(ctx context.Context) (*domain.LearningData, error) {
	return l.data, l.err
}

func newTestService(products []domain.Product, learning LearningProvider) *Service {
	svc := NewService(stubProductRepo{products: products}, learning, nil, DefaultConfig())
	svc.now = func() time.Time { return noon }
	return svc
}

func TestServiceRejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(sampleCatalog(), nil)

	_, err := svc.Suggest(context.Background(), 0)
	assert.Error(t, err)

	_, err = svc.Suggest(context.Background(), -10)
	assert.Error(t, err)
}

func TestServiceEmptyCatalogIsNotAnError(t *testing.T) {
	svc := newTestService(nil, nil)

	got, err := svc.Suggest(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestServiceSurvivesLearningFailure(t *testing.T) {
	svc := newTestService(sampleCatalog(), stubLearning{err: errors.New("redis down")})

	got, err := svc.Suggest(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	// provisional stage confidence survives the fallback
	assert.Equal(t, 1.0, got[0].Confidence)
}

func TestServicePropagatesCatalogError(t *testing.T) {
	svc := NewService(stubProductRepo{err: errors.New("db down")}, nil, nil, DefaultConfig())

	_, err := svc.Suggest(context.Background(), 10)
	assert.Error(t, err)
}
