package shop

import (
	"context"
	"errors"
	"testing"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memContextRepo struct {
	stored *domain.ShopContext
	err    error
}

func (r *memContextRepo) Get(ctx context.Context) (domain.ShopContext, bool, error) {
	if r.err != nil {
		return domain.ShopContext{}, false, r.err
	}
	if r.stored == nil {
		return domain.ShopContext{}, false, nil
	}
	return *r.stored, true, nil
}

func (r *memContextRepo) Upsert(ctx context.Context, shopCtx *domain.ShopContext) error {
	if r.err != nil {
		return r.err
	}
	copied := *shopCtx
	r.stored = &copied
	return nil
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	svc := NewService(&memContextRepo{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "My Shop", got.ShopName)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "08:00", got.OpeningHour)
	assert.Equal(t, 12, got.TimeFormat)
}

func TestUpdateMergesOverDefaults(t *testing.T) {
	repo := &memContextRepo{}
	svc := NewService(repo)

	name := "Sharma General Store"
	demo := true
	got, err := svc.Update(context.Background(), ContextUpdate{
		ShopName: &name,
		DemoMode: &demo,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sharma General Store", got.ShopName)
	assert.True(t, got.DemoMode)
	// untouched fields keep the defaults
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "21:00", got.ClosingHour)

	require.NotNil(t, repo.stored)
	assert.Equal(t, uint(1), repo.stored.ID)
}

func TestUpdateMergesOverStored(t *testing.T) {
	stored := DefaultContext()
	stored.ShopName = "Sharma General Store"
	stored.Currency = "NPR"
	repo := &memContextRepo{stored: &stored}
	svc := NewService(repo)

	closing := "22:00"
	got, err := svc.Update(context.Background(), ContextUpdate{ClosingHour: &closing})
	require.NoError(t, err)

	assert.Equal(t, "22:00", got.ClosingHour)
	assert.Equal(t, "Sharma General Store", got.ShopName)
	assert.Equal(t, "NPR", got.Currency)
}

func TestUpdateReplacesSliceFields(t *testing.T) {
	svc := NewService(&memContextRepo{})

	langs := []string{"hi", "mr"}
	busy := []domain.HourRange{{Start: 18, End: 21}}
	got, err := svc.Update(context.Background(), ContextUpdate{
		SecondaryLanguages: &langs,
		BusyHours:          &busy,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hi", "mr"}, []string(got.SecondaryLanguages))
	require.Len(t, got.BusyHours, 1)
	assert.Equal(t, 18, got.BusyHours[0].Start)
}

func TestUpdateRejectsBadTimeFormat(t *testing.T) {
	svc := NewService(&memContextRepo{})

	bad := 13
	_, err := svc.Update(context.Background(), ContextUpdate{TimeFormat: &bad})
	assert.Error(t, err)
}

func TestGetPropagatesRepoError(t *testing.T) {
	svc := NewService(&memContextRepo{err: errors.New("db down")})

	_, err := svc.Get(context.Background())
	assert.Error(t, err)
}
