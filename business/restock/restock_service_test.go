package restock

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRestockRepo struct {
	entries map[string]*domain.Restock
	order   []string
}

func newMemRestockRepo(entries ...domain.Restock) *memRestockRepo {
	repo := &memRestockRepo{entries: make(map[string]*domain.Restock)}
	for i := range entries {
		e := entries[i]
		repo.entries[e.ID] = &e
		repo.order = append(repo.order, e.ID)
	}
	return repo
}

func (r *memRestockRepo) Create(ctx context.Context, restock *domain.Restock) error {
	r.entries[restock.ID] = restock
	r.order = append(r.order, restock.ID)
	return nil
}

func (r *memRestockRepo) FindByID(ctx context.Context, id string) (domain.Restock, error) {
	e, ok := r.entries[id]
	if !ok {
		return domain.Restock{}, errors.New("restock not found")
	}
	return *e, nil
}

func (r *memRestockRepo) FindByProduct(ctx context.Context, productID string, limit int) ([]domain.Restock, error) {
	var out []domain.Restock
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.entries[r.order[i]]
		if e.ProductID == productID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memRestockRepo) FindAll(ctx context.Context) ([]domain.Restock, error) {
	out := make([]domain.Restock, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entries[id])
	}
	return out, nil
}

func (r *memRestockRepo) Update(ctx context.Context, restock *domain.Restock) error {
	if _, ok := r.entries[restock.ID]; !ok {
		return errors.New("restock not found")
	}
	r.entries[restock.ID] = restock
	return nil
}

type memProductRepo struct {
	products map[string]*domain.Product
}

func newMemProductRepo(products ...domain.Product) *memProductRepo {
	repo := &memProductRepo{products: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		repo.products[p.ID] = &p
	}
	return repo
}

func (r *memProductRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return *p, nil
}

func (r *memProductRepo) AdjustStockAndPopularity(ctx context.Context, id string, stockDelta, popularityDelta int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Stock += stockDelta
	p.Popularity += popularityDelta
	return nil
}

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newRestockService(restockRepo *memRestockRepo, productRepo *memProductRepo) *Service {
	svc := NewService(restockRepo, productRepo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func msAt(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

func TestAddRestockIncrementsStock(t *testing.T) {
	productRepo := newMemProductRepo(domain.Product{ID: "rice", Name: "Rice", Price: 60, Stock: 2})
	restockRepo := newMemRestockRepo()
	svc := newRestockService(restockRepo, productRepo)

	entry, err := svc.AddRestock(context.Background(), RestockInput{
		ProductID:   "rice",
		Quantity:    10,
		CostPerUnit: 52,
		Supplier:    "Mahalaxmi Traders",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, testNow.UnixMilli(), entry.Timestamp)
	assert.Equal(t, 0, entry.Consumed)

	rice, _ := productRepo.FindByID(context.Background(), "rice")
	assert.Equal(t, 12, rice.Stock)
	assert.Equal(t, 0, rice.Popularity)
}

func TestAddRestockValidation(t *testing.T) {
	svc := newRestockService(newMemRestockRepo(), newMemProductRepo())

	_, err := svc.AddRestock(context.Background(), RestockInput{Quantity: 5})
	assert.Error(t, err)

	_, err = svc.AddRestock(context.Background(), RestockInput{ProductID: "rice", Quantity: 0})
	assert.Error(t, err)

	// unknown product
	_, err = svc.AddRestock(context.Background(), RestockInput{ProductID: "rice", Quantity: 5})
	assert.Error(t, err)
}

func TestHistoryNewestFirstCapped(t *testing.T) {
	productRepo := newMemProductRepo(domain.Product{ID: "rice", Name: "Rice", Price: 60})
	restockRepo := newMemRestockRepo()
	svc := newRestockService(restockRepo, productRepo)

	for i := 0; i < 25; i++ {
		_, err := svc.AddRestock(context.Background(), RestockInput{ProductID: "rice", Quantity: i + 1})
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), "rice")
	require.NoError(t, err)

	require.Len(t, history, 20)
	assert.Equal(t, 25, history[0].Quantity)
	assert.Equal(t, 6, history[19].Quantity)
}

func TestExpiringSoonAndExpired(t *testing.T) {
	productRepo := newMemProductRepo(domain.Product{ID: "milk", Name: "Milk", Price: 25})
	restockRepo := newMemRestockRepo(
		domain.Restock{ID: "fresh", ProductID: "milk", Quantity: 5, ExpiryDate: msAt(testNow.Add(3 * 24 * time.Hour))},
		domain.Restock{ID: "later", ProductID: "milk", Quantity: 5, ExpiryDate: msAt(testNow.Add(30 * 24 * time.Hour))},
		domain.Restock{ID: "gone", ProductID: "milk", Quantity: 5, ExpiryDate: msAt(testNow.Add(-24 * time.Hour))},
		domain.Restock{ID: "eaten", ProductID: "milk", Quantity: 5, Consumed: 5, ExpiryDate: msAt(testNow.Add(-24 * time.Hour))},
		domain.Restock{ID: "nodate", ProductID: "milk", Quantity: 5},
	)
	svc := newRestockService(restockRepo, productRepo)

	soon, err := svc.ExpiringSoon(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, soon, 1)
	assert.Equal(t, "fresh", soon[0].ID)

	expired, err := svc.Expired(context.Background())
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "gone", expired[0].ID)
}

func TestDiscardRemovesRemainingStock(t *testing.T) {
	productRepo := newMemProductRepo(domain.Product{ID: "milk", Name: "Milk", Price: 25, Stock: 8})
	restockRepo := newMemRestockRepo(
		domain.Restock{ID: "batch", ProductID: "milk", Quantity: 5, Consumed: 2},
	)
	svc := newRestockService(restockRepo, productRepo)

	entry, err := svc.Discard(context.Background(), "batch")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Consumed)
	assert.Equal(t, 0, entry.Remaining())

	milk, _ := productRepo.FindByID(context.Background(), "milk")
	assert.Equal(t, 5, milk.Stock)
}

func TestDiscardIsIdempotentOnceConsumed(t *testing.T) {
	productRepo := newMemProductRepo(domain.Product{ID: "milk", Name: "Milk", Price: 25, Stock: 8})
	restockRepo := newMemRestockRepo(
		domain.Restock{ID: "batch", ProductID: "milk", Quantity: 5, Consumed: 5},
	)
	svc := newRestockService(restockRepo, productRepo)

	_, err := svc.Discard(context.Background(), "batch")
	require.NoError(t, err)

	milk, _ := productRepo.FindByID(context.Background(), "milk")
	assert.Equal(t, 8, milk.Stock)
}
