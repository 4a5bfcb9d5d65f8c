package shop

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fact(productID string, qty int, total int64, date time.Time) SaleFact {
	return SaleFact{
		ProductID:   productID,
		ProductName: "phone-" + productID,
		Quantity:    qty,
		TotalPrice:  total,
		SaleDate:    date,
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(StatsSnapshot{})

	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 0, stats.TotalSales)
	assert.Equal(t, 0, stats.LowStockProducts)
	assert.Equal(t, int64(0), stats.TotalRevenue)
	assert.Empty(t, stats.MonthlySales)
	assert.Empty(t, stats.TopProducts)
}

func TestComputeStats_Counts(t *testing.T) {
	now := time.Now().UTC()
	stats := ComputeStats(StatsSnapshot{
		ProductCount:  7,
		LowStockCount: 2,
		Sales: []SaleFact{
			fact("a", 1, 100, now),
			fact("b", 2, 250, now),
		},
	})

	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalSales)
	assert.Equal(t, 2, stats.LowStockProducts)
	assert.Equal(t, int64(350), stats.TotalRevenue)
}

func TestComputeStats_RevenueReconciles(t *testing.T) {
	now := time.Now().UTC()
	var sales []SaleFact
	var want int64
	for i := 1; i <= 20; i++ {
		total := int64(i * 1000)
		want += total
		sales = append(sales, fact(fmt.Sprintf("p%d", i%4), 1, total, now.AddDate(0, -(i%3), 0)))
	}

	stats := ComputeStats(StatsSnapshot{Sales: sales})
	assert.Equal(t, want, stats.TotalRevenue)
}

func TestComputeStats_MonthlyBucketing(t *testing.T) {
	jan10 := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	jan25 := time.Date(2026, time.January, 25, 8, 0, 0, 0, time.UTC)
	dec05 := time.Date(2025, time.December, 5, 9, 0, 0, 0, time.UTC)

	stats := ComputeStats(StatsSnapshot{Sales: []SaleFact{
		fact("a", 1, 100, jan10),
		fact("b", 1, 200, jan25),
		fact("a", 1, 300, dec05),
	}})

	require.Len(t, stats.MonthlySales, 2)
	assert.Equal(t, MonthlyBucket{Year: 2026, Month: 1, Count: 2, Revenue: 300}, stats.MonthlySales[0])
	assert.Equal(t, MonthlyBucket{Year: 2025, Month: 12, Count: 1, Revenue: 300}, stats.MonthlySales[1])
}

func TestComputeStats_MonthlyCappedAtTwelve(t *testing.T) {
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	var sales []SaleFact
	for i := 0; i < 15; i++ {
		sales = append(sales, fact("a", 1, 10, start.AddDate(0, -i, 0)))
	}

	stats := ComputeStats(StatsSnapshot{Sales: sales})

	require.Len(t, stats.MonthlySales, 12)
	// newest bucket first, and the 3 oldest months dropped
	assert.Equal(t, 2026, stats.MonthlySales[0].Year)
	assert.Equal(t, 6, stats.MonthlySales[0].Month)
	assert.Equal(t, 2025, stats.MonthlySales[11].Year)
	assert.Equal(t, 7, stats.MonthlySales[11].Month)
}

func TestComputeStats_MonthlyUsesUTC(t *testing.T) {
	// 2026-02-01 03:00 in UTC+7 is still January in UTC.
	jakarta := time.FixedZone("WIB", 7*3600)
	d := time.Date(2026, time.February, 1, 3, 0, 0, 0, jakarta)

	stats := ComputeStats(StatsSnapshot{Sales: []SaleFact{fact("a", 1, 100, d)}})

	require.Len(t, stats.MonthlySales, 1)
	assert.Equal(t, 2026, stats.MonthlySales[0].Year)
	assert.Equal(t, 1, stats.MonthlySales[0].Month)
}

func TestComputeStats_TopProductsRanking(t *testing.T) {
	now := time.Now().UTC()
	stats := ComputeStats(StatsSnapshot{Sales: []SaleFact{
		fact("A", 5, 500, now),
		fact("B", 8, 800, now),
		fact("C", 2, 200, now),
	}})

	require.Len(t, stats.TopProducts, 3)
	assert.Equal(t, "B", stats.TopProducts[0].ProductID)
	assert.Equal(t, "A", stats.TopProducts[1].ProductID)
	assert.Equal(t, "C", stats.TopProducts[2].ProductID)
	assert.Equal(t, 8, stats.TopProducts[0].TotalSold)
	assert.Equal(t, int64(800), stats.TopProducts[0].Revenue)
}

func TestComputeStats_TopProductsGroupAcrossSales(t *testing.T) {
	now := time.Now().UTC()
	stats := ComputeStats(StatsSnapshot{Sales: []SaleFact{
		{ProductID: "A", ProductName: "first name", Quantity: 2, TotalPrice: 200, SaleDate: now},
		{ProductID: "A", ProductName: "renamed later", Quantity: 3, TotalPrice: 300, SaleDate: now},
	}})

	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, 5, stats.TopProducts[0].TotalSold)
	assert.Equal(t, int64(500), stats.TopProducts[0].Revenue)
	// name comes from the first sale seen for the group
	assert.Equal(t, "first name", stats.TopProducts[0].ProductName)
}

func TestComputeStats_TopProductsTieKeepsFirstSeenOrder(t *testing.T) {
	now := time.Now().UTC()
	stats := ComputeStats(StatsSnapshot{Sales: []SaleFact{
		fact("X", 4, 400, now),
		fact("Y", 4, 100, now),
	}})

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "X", stats.TopProducts[0].ProductID)
	assert.Equal(t, "Y", stats.TopProducts[1].ProductID)
}

func TestComputeStats_TopProductsCappedAtFive(t *testing.T) {
	now := time.Now().UTC()
	var sales []SaleFact
	for i := 1; i <= 8; i++ {
		sales = append(sales, fact(fmt.Sprintf("p%d", i), i, int64(i*100), now))
	}

	stats := ComputeStats(StatsSnapshot{Sales: sales})

	require.Len(t, stats.TopProducts, 5)
	assert.Equal(t, "p8", stats.TopProducts[0].ProductID)
	assert.Equal(t, "p4", stats.TopProducts[4].ProductID)
}
