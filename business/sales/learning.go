package sales

import (
	"sort"
	"strings"
	"time"

	"smartShop/domain"
)

const lastSalesWindow = 10

// BuildLearningData replays the full sale history into the three scorer
// aggregates. This is the authoritative path: the incremental ApplySale must
// always agree with a fresh replay.
func BuildLearningData(sales []domain.Sale) *domain.LearningData {
	ld := &domain.LearningData{
		HourlyStats: make(map[int]map[string]int),
		ComboStats:  make(map[string]int),
	}

	for _, sale := range sales {
		applyAggregates(ld, sale)
	}

	start := 0
	if len(sales) > lastSalesWindow {
		start = len(sales) - lastSalesWindow
	}
	ld.LastTenSales = append(ld.LastTenSales, sales[start:]...)

	return ld
}

// ApplySale folds one new sale into existing aggregates: ring-buffer append
// with oldest eviction, hour bucket increments, combo key increment.
func ApplySale(ld *domain.LearningData, sale domain.Sale) {
	if ld.HourlyStats == nil {
		ld.HourlyStats = make(map[int]map[string]int)
	}
	if ld.ComboStats == nil {
		ld.ComboStats = make(map[string]int)
	}

	ld.LastTenSales = append(ld.LastTenSales, sale)
	if len(ld.LastTenSales) > lastSalesWindow {
		ld.LastTenSales = ld.LastTenSales[1:]
	}

	applyAggregates(ld, sale)
}

func applyAggregates(ld *domain.LearningData, sale domain.Sale) {
	hour := time.UnixMilli(sale.Timestamp).Hour()
	bucket, ok := ld.HourlyStats[hour]
	if !ok {
		bucket = make(map[string]int)
		ld.HourlyStats[hour] = bucket
	}
	for _, productID := range sale.Items {
		bucket[productID]++
	}

	ld.ComboStats[ComboKey(sale.Items)]++
}

// ComboKey canonicalizes a per-unit product id list: sorted, pipe-joined.
// The suggestion scorer builds the same key when looking up frequencies.
func ComboKey(items []string) string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// ExpandItems turns basket lines into the per-unit id list stored on a Sale.
func ExpandItems(items []domain.SaleItemRequest) []string {
	var expanded []string
	for _, item := range items {
		for range item.Quantity {
			expanded = append(expanded, item.ProductID)
		}
	}
	return expanded
}
