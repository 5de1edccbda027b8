package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"smartShop/domain"
)

const (
	defaultTopProducts = 3
	defaultRecentSales = 5
)

type ProductCount struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
}

type HourBucket struct {
	Hour  int     `json:"hour"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type Summary struct {
	TodayTotal  float64        `json:"today_total"`
	TodayCount  int            `json:"today_count"`
	HourlySales []HourBucket   `json:"hourly_sales"`
	TopProducts []ProductCount `json:"top_products"`
	RecentSales []domain.Sale  `json:"recent_sales"`
}

func (s *Service) startOfToday() int64 {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.UnixMilli()
}

// TodayTotal sums the amounts of every sale recorded since local midnight.
func (s *Service) TodayTotal(ctx context.Context) (float64, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("context error: %w", err)
	}

	today, err := s.salesRepo.FindSince(ctx, s.startOfToday())
	if err != nil {
		return 0, 0, fmt.Errorf("load today's sales: %w", err)
	}

	var total float64
	for _, sale := range today {
		total += sale.Amount
	}
	return total, len(today), nil
}

// HourlySales buckets today's revenue into 24 hour slots, zero-filled so the
// dashboard can chart the full day.
func (s *Service) HourlySales(ctx context.Context) ([]HourBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	today, err := s.salesRepo.FindSince(ctx, s.startOfToday())
	if err != nil {
		return nil, fmt.Errorf("load today's sales: %w", err)
	}

	buckets := make([]HourBucket, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}
	for _, sale := range today {
		hour := time.UnixMilli(sale.Timestamp).Hour()
		buckets[hour].Total += sale.Amount
		buckets[hour].Count++
	}
	return buckets, nil
}

// TopProducts ranks today's best sellers by units sold. Ties break by product
// id so the order is stable across requests.
func (s *Service) TopProducts(ctx context.Context, limit int) ([]ProductCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultTopProducts
	}

	today, err := s.salesRepo.FindSince(ctx, s.startOfToday())
	if err != nil {
		return nil, fmt.Errorf("load today's sales: %w", err)
	}

	units := make(map[string]int)
	for _, sale := range today {
		for _, productID := range sale.Items {
			units[productID]++
		}
	}

	names := make(map[string]string)
	if products, err := s.productRepo.FindAll(ctx); err == nil {
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}

	ranked := make([]ProductCount, 0, len(units))
	for productID, count := range units {
		ranked = append(ranked, ProductCount{
			ProductID: productID,
			Name:      names[productID],
			Units:     count,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			return ranked[i].Units > ranked[j].Units
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// RecentSales returns the newest sales first.
func (s *Service) RecentSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultRecentSales
	}

	recent, err := s.salesRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent sales: %w", err)
	}
	return recent, nil
}

// DailySummary assembles the dashboard payload in one call.
func (s *Service) DailySummary(ctx context.Context) (Summary, error) {
	total, count, err := s.TodayTotal(ctx)
	if err != nil {
		return Summary{}, err
	}

	hourly, err := s.HourlySales(ctx)
	if err != nil {
		return Summary{}, err
	}

	top, err := s.TopProducts(ctx, defaultTopProducts)
	if err != nil {
		return Summary{}, err
	}

	recent, err := s.RecentSales(ctx, defaultRecentSales)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TodayTotal:  total,
		TodayCount:  count,
		HourlySales: hourly,
		TopProducts: top,
		RecentSales: recent,
	}, nil
}
