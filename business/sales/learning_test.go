package sales

import (
	"fmt"
	"testing"
	"time"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleAt(id string, at time.Time, items ...string) domain.Sale {
	return domain.Sale{
		ID:        id,
		Timestamp: at.UnixMilli(),
		Amount:    float64(len(items)) * 10,
		Items:     items,
	}
}

func TestBuildLearningDataAggregates(t *testing.T) {
	morning := time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 18, 40, 0, 0, time.UTC)

	sales := []domain.Sale{
		saleAt("s1", morning, "milk", "bread"),
		saleAt("s2", morning, "milk"),
		saleAt("s3", evening, "bread", "milk"),
	}

	ld := BuildLearningData(sales)

	assert.Len(t, ld.LastTenSales, 3)
	assert.Equal(t, 2, ld.HourlyStats[9]["milk"])
	assert.Equal(t, 1, ld.HourlyStats[9]["bread"])
	assert.Equal(t, 1, ld.HourlyStats[18]["milk"])

	// item order within a sale does not matter for combo identity
	assert.Equal(t, 2, ld.ComboStats["bread|milk"])
	assert.Equal(t, 1, ld.ComboStats["milk"])
}

func TestApplySaleMatchesReplay(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	var sales []domain.Sale
	for i := 0; i < 25; i++ {
		at := base.Add(time.Duration(i) * 37 * time.Minute)
		items := []string{"tea"}
		if i%3 == 0 {
			items = []string{"tea", "biscuit"}
		}
		sales = append(sales, saleAt(fmt.Sprintf("s%d", i), at, items...))
	}

	replayed := BuildLearningData(sales)

	incremental := BuildLearningData(nil)
	for _, sale := range sales {
		ApplySale(incremental, sale)
	}

	assert.Equal(t, replayed.HourlyStats, incremental.HourlyStats)
	assert.Equal(t, replayed.ComboStats, incremental.ComboStats)
	assert.Equal(t, replayed.LastTenSales, incremental.LastTenSales)
}

func TestApplySaleEvictsOldest(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	ld := BuildLearningData(nil)
	for i := 0; i < 11; i++ {
		ApplySale(ld, saleAt(fmt.Sprintf("s%d", i), base.Add(time.Duration(i)*time.Minute), "tea"))
	}

	require.Len(t, ld.LastTenSales, 10)
	assert.Equal(t, "s1", ld.LastTenSales[0].ID)
	assert.Equal(t, "s10", ld.LastTenSales[9].ID)

	// evicted sales still count in the long-run aggregates
	assert.Equal(t, 11, ld.ComboStats["tea"])
}

func TestApplySaleInitializesNilMaps(t *testing.T) {
	ld := &domain.LearningData{}
	ApplySale(ld, saleAt("s1", time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC), "milk"))

	assert.Equal(t, 1, ld.HourlyStats[7]["milk"])
	assert.Equal(t, 1, ld.ComboStats["milk"])
}

func TestComboKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, ComboKey([]string{"b", "a", "b"}), ComboKey([]string{"a", "b", "b"}))
	assert.Equal(t, "a|b|b", ComboKey([]string{"b", "a", "b"}))
	assert.Equal(t, "", ComboKey(nil))
}

func TestExpandItemsRepeatsPerUnit(t *testing.T) {
	got := ExpandItems([]domain.SaleItemRequest{
		{ProductID: "milk", Quantity: 2},
		{ProductID: "bread", Quantity: 1},
	})

	assert.Equal(t, []string{"milk", "milk", "bread"}, got)
}
