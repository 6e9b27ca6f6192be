package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// stubSalesRepo serves a fixed set of rows.
type stubSalesRepo struct {
	rows []model.SaleRecord
}

var _ repository.SalesRepository = (*stubSalesRepo)(nil)

func (r *stubSalesRepo) ListRecent(_ context.Context, _ uint, _ int) ([]model.SaleRecord, error) {
	return r.rows, nil
}

func (r *stubSalesRepo) FindAllByUser(_ context.Context, _ uint) ([]model.SaleRecord, error) {
	return r.rows, nil
}

func money(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func saleOn(month time.Month, total float64) model.SaleRecord {
	return model.SaleRecord{
		CustomerAge: "N/A",
		Gender:      "Unknown",
		Category:    "N/A",
		Location:    "Unknown",
		Date:        time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC),
		Total:       money(total),
	}
}

func TestDashboard_AgeDistributionSkipsSentinel(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		{CustomerAge: "25", Total: money(10)},
		{CustomerAge: "27", Total: money(10)},
		{CustomerAge: "41", Total: nil}, // nil total still counts here
		{CustomerAge: "N/A", Total: money(10)},
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"20-30": 2, "40-50": 1}, resp.CustomerBehavior.AgeDistribution)
}

func TestDashboard_RevenueSumsSkipNilTotals(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		{Gender: "Female", Total: money(100)},
		{Gender: "Female", Total: money(50)},
		{Gender: "Male", Total: nil}, // cancelled line carries no revenue
		{Gender: "Unknown", Total: money(25)},
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Female": 150, "Unknown": 25}, resp.CustomerBehavior.GenderSales)
}

func TestDashboard_MonthlySalesKeyedByMonthNumber(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		saleOn(time.January, 100),
		saleOn(time.January, 50),
		saleOn(time.December, 30),
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"1": 150, "12": 30}, resp.SalesAnalysis.MonthlySales)
}

func TestDashboard_ReturnRatesCountAllRows(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		{Category: "Soap", Returned: 1, Total: money(10)},
		{Category: "Soap", Returned: 0, Total: nil}, // cancelled rows still count
		{Category: "Soap", Returned: 0, Total: money(10)},
		{Category: "Towel", Returned: 0, Total: money(10)},
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, resp.SalesAnalysis.ReturnRates["Soap"], 1e-9)
	assert.Equal(t, 0.0, resp.SalesAnalysis.ReturnRates["Towel"])
}

func TestDashboard_TopCategoriesKeepsTen(t *testing.T) {
	rows := make([]model.SaleRecord, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, model.SaleRecord{
			Category: string(rune('A' + i)),
			Total:    money(float64(i + 1)),
		})
	}
	repo := &stubSalesRepo{rows: rows}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.SalesAnalysis.TopCategories, 10)
	// The two lowest-revenue categories are dropped
	assert.NotContains(t, resp.SalesAnalysis.TopCategories, "A")
	assert.NotContains(t, resp.SalesAnalysis.TopCategories, "B")
	assert.Contains(t, resp.SalesAnalysis.TopCategories, "L")
}

func TestDashboard_DiscountImpactBins(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		{DiscountPercentage: decimal.NewFromInt(5), Total: money(100)},
		{DiscountPercentage: decimal.NewFromInt(15), Total: money(50)},
		{DiscountPercentage: decimal.NewFromInt(60), Total: money(20)},
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"0-10":  100,
		"10-20": 50,
		"40+":   20,
	}, resp.CustomerBehavior.DiscountImpact)
}

func TestDashboard_TopSellingPicksMostFrequentPerPriceBand(t *testing.T) {
	repo := &stubSalesRepo{rows: []model.SaleRecord{
		{Category: "Care", ProductName: "Soap", MRP: decimal.NewFromInt(100), Total: money(1)},
		{Category: "Care", ProductName: "Soap", MRP: decimal.NewFromInt(100), Total: money(1)},
		{Category: "Care", ProductName: "Towel", MRP: decimal.NewFromInt(100), Total: money(1)},
		{Category: "Care", ProductName: "Perfume", MRP: decimal.NewFromInt(2000), Total: money(1)},
		// Comma-separated product lists count each product individually
		{Category: "Food", ProductName: "Tea, Coffee, Tea", MRP: decimal.NewFromInt(600), Total: money(1)},
	}}
	svc := NewAnalyticsService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Soap", resp.TopSelling["Care"]["0-500"])
	assert.Equal(t, "Perfume", resp.TopSelling["Care"]["1000+"])
	assert.Equal(t, "Tea", resp.TopSelling["Food"]["500-1000"])
}

func TestDashboard_EmptyDataset(t *testing.T) {
	svc := NewAnalyticsService(&stubSalesRepo{})

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, resp.CustomerBehavior.AgeDistribution)
	assert.Empty(t, resp.SalesAnalysis.MonthlySales)
	assert.Empty(t, resp.TopSelling)
}
