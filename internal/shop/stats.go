package shop

import (
	"sort"
	"time"
)

const (
	maxMonthlyBuckets = 12
	maxTopProducts    = 5
)

// SaleFact is the slice of a ledger row the aggregator needs.
type SaleFact struct {
	ProductID   string
	ProductName string
	Quantity    int
	TotalPrice  int64
	SaleDate    time.Time
}

// StatsSnapshot is a consistent read of both stores, taken inside one
// repeatable-read transaction so half-applied sales can never show up.
type StatsSnapshot struct {
	ProductCount  int
	LowStockCount int
	Sales         []SaleFact
}

// ComputeStats derives the dashboard numbers from a snapshot.
//
// Monthly buckets use the sale's calendar month in StatsTimezone (UTC),
// newest first, capped at 12. Top products rank by units sold, capped
// at 5; ties keep the order in which the products first appeared in the
// ledger scan, and each entry carries the product name first seen in
// its group.
func ComputeStats(snap StatsSnapshot) DashboardStats {
	stats := DashboardStats{
		TotalProducts:    snap.ProductCount,
		TotalSales:       len(snap.Sales),
		LowStockProducts: snap.LowStockCount,
		MonthlySales:     []MonthlyBucket{},
		TopProducts:      []TopProduct{},
	}

	type monthKey struct{ year, month int }
	months := map[monthKey]*MonthlyBucket{}

	type group struct {
		TopProduct
		firstSeen int
	}
	groups := map[string]*group{}

	for _, s := range snap.Sales {
		stats.TotalRevenue += s.TotalPrice

		d := s.SaleDate.In(StatsTimezone)
		mk := monthKey{d.Year(), int(d.Month())}
		b, ok := months[mk]
		if !ok {
			b = &MonthlyBucket{Year: mk.year, Month: mk.month}
			months[mk] = b
		}
		b.Count++
		b.Revenue += s.TotalPrice

		g, ok := groups[s.ProductID]
		if !ok {
			g = &group{
				TopProduct: TopProduct{ProductID: s.ProductID, ProductName: s.ProductName},
				firstSeen:  len(groups),
			}
			groups[s.ProductID] = g
		}
		g.TotalSold += s.Quantity
		g.Revenue += s.TotalPrice
	}

	for _, b := range months {
		stats.MonthlySales = append(stats.MonthlySales, *b)
	}
	sort.Slice(stats.MonthlySales, func(i, j int) bool {
		a, b := stats.MonthlySales[i], stats.MonthlySales[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})
	if len(stats.MonthlySales) > maxMonthlyBuckets {
		stats.MonthlySales = stats.MonthlySales[:maxMonthlyBuckets]
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].TotalSold != ordered[j].TotalSold {
			return ordered[i].TotalSold > ordered[j].TotalSold
		}
		return ordered[i].firstSeen < ordered[j].firstSeen
	})
	if len(ordered) > maxTopProducts {
		ordered = ordered[:maxTopProducts]
	}
	for _, g := range ordered {
		stats.TopProducts = append(stats.TopProducts, g.TopProduct)
	}

	return stats
}
