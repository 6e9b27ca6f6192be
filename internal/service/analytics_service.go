package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// AnalyticsService computes the dashboard aggregations over a user's sales
// rows. Everything runs in memory over a single fetch; rows with a nil Total
// are excluded from every revenue sum but still count toward return rates and
// the age histogram.
type AnalyticsService interface {
	Dashboard(ctx context.Context, userID uint) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	repo repository.SalesRepository
}

func NewAnalyticsService(repo repository.SalesRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID uint) (*dto.AnalyticsResponse, error) {
	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		CustomerBehavior: dto.CustomerBehavior{
			AgeDistribution:     ageDistribution(rows),
			GenderSales:         salesByField(rows, func(r *model.SaleRecord) string { return r.Gender }),
			DiscountImpact:      discountImpact(rows),
			CustomerTypes:       salesByField(rows, func(r *model.SaleRecord) string { return r.CustomerType }),
			AdvertisementImpact: salesByField(rows, func(r *model.SaleRecord) string { return r.Advertisement }),
			AgeSales:            ageSales(rows),
		},
		SalesAnalysis: dto.SalesAnalysis{
			MonthlySales:  monthlySales(rows),
			TopCategories: topN(salesByField(rows, func(r *model.SaleRecord) string { return r.Category }), 10),
			ReturnRates:   returnRates(rows),
		},
		Demographics: dto.Demographics{
			LocationSales: topN(salesByField(rows, func(r *model.SaleRecord) string { return r.Location }), 10),
		},
		TopSelling: topSellingProducts(rows),
	}, nil
}

// salesByField sums Total per value of one dimension. Rows with an empty
// dimension value or a nil Total are skipped.
func salesByField(rows []model.SaleRecord, field func(*model.SaleRecord) string) map[string]float64 {
	out := make(map[string]float64)
	for i := range rows {
		key := field(&rows[i])
		if key == "" || rows[i].Total == nil {
			continue
		}
		out[key] += rows[i].Total.InexactFloat64()
	}
	return out
}

// ageDistribution counts customers per decade bucket ("20-30", "30-40", ...).
// Ages that do not parse (the "N/A" sentinel) are skipped.
func ageDistribution(rows []model.SaleRecord) map[string]int {
	out := make(map[string]int)
	for i := range rows {
		age, err := strconv.ParseFloat(rows[i].CustomerAge, 64)
		if err != nil {
			continue
		}
		bin := int(age/10) * 10
		out[fmt.Sprintf("%d-%d", bin, bin+10)]++
	}
	return out
}

// discountImpact sums revenue per discount-percentage bucket. Buckets are
// "0-10" through "40-50", with everything above 50% in "40+".
func discountImpact(rows []model.SaleRecord) map[string]float64 {
	out := make(map[string]float64)
	for i := range rows {
		if rows[i].Total == nil {
			continue
		}
		dp := rows[i].DiscountPercentage.InexactFloat64()
		var label string
		switch {
		case dp <= 10:
			label = "0-10"
		case dp <= 20:
			label = "10-20"
		case dp <= 30:
			label = "20-30"
		case dp <= 40:
			label = "30-40"
		case dp <= 50:
			label = "40-50"
		default:
			label = "40+"
		}
		out[label] += rows[i].Total.InexactFloat64()
	}
	return out
}

// ageSales sums revenue per age bracket ("11-20" .. "51-60", "60+").
func ageSales(rows []model.SaleRecord) map[string]float64 {
	out := make(map[string]float64)
	for i := range rows {
		if rows[i].Total == nil {
			continue
		}
		age, err := strconv.ParseFloat(rows[i].CustomerAge, 64)
		if err != nil {
			continue
		}
		var label string
		switch {
		case age <= 20:
			label = "11-20"
		case age <= 30:
			label = "21-30"
		case age <= 40:
			label = "31-40"
		case age <= 50:
			label = "41-50"
		case age <= 60:
			label = "51-60"
		default:
			label = "60+"
		}
		out[label] += rows[i].Total.InexactFloat64()
	}
	return out
}

// monthlySales sums revenue per calendar month of the sale date, keyed
// "1".."12".
func monthlySales(rows []model.SaleRecord) map[string]float64 {
	out := make(map[string]float64)
	for i := range rows {
		if rows[i].Total == nil || rows[i].Date.IsZero() {
			continue
		}
		out[strconv.Itoa(int(rows[i].Date.Month()))] += rows[i].Total.InexactFloat64()
	}
	return out
}

// returnRates computes returned/total row counts per category. Unlike the
// revenue aggregations this counts every row, so cancelled orders still
// affect the rate.
func returnRates(rows []model.SaleRecord) map[string]float64 {
	type counter struct{ returns, total int }
	counts := make(map[string]*counter)
	for i := range rows {
		cat := rows[i].Category
		if cat == "" {
			continue
		}
		c, ok := counts[cat]
		if !ok {
			c = &counter{}
			counts[cat] = c
		}
		c.returns += rows[i].Returned
		c.total++
	}

	out := make(map[string]float64, len(counts))
	for cat, c := range counts {
		out[cat] = float64(c.returns) / float64(c.total)
	}
	return out
}

// topN keeps the n highest-valued keys of a sum map.
func topN(sums map[string]float64, n int) map[string]float64 {
	if len(sums) <= n {
		return sums
	}
	type kv struct {
		k string
		v float64
	}
	entries := make([]kv, 0, len(sums))
	for k, v := range sums {
		entries = append(entries, kv{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].v > entries[j].v })

	out := make(map[string]float64, n)
	for _, e := range entries[:n] {
		out[e.k] = e.v
	}
	return out
}

// topSellingProducts finds, per category and MRP price band, the product name
// appearing most often. Comma-separated product lists count each product once.
func topSellingProducts(rows []model.SaleRecord) map[string]map[string]string {
	counts := make(map[string]map[string]map[string]int)
	for i := range rows {
		r := &rows[i]
		if r.Category == "" || r.ProductName == "" {
			continue
		}

		price := r.MRP.InexactFloat64()
		var band string
		switch {
		case price <= 500:
			band = "0-500"
		case price <= 1000:
			band = "500-1000"
		default:
			band = "1000+"
		}

		if counts[r.Category] == nil {
			counts[r.Category] = make(map[string]map[string]int)
		}
		if counts[r.Category][band] == nil {
			counts[r.Category][band] = make(map[string]int)
		}
		for _, p := range strings.Split(r.ProductName, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				counts[r.Category][band][p]++
			}
		}
	}

	out := make(map[string]map[string]string, len(counts))
	for cat, bands := range counts {
		out[cat] = make(map[string]string, len(bands))
		for band, products := range bands {
			best, bestCount := "N/A", 0
			for p, n := range products {
				if n > bestCount || (n == bestCount && p < best) {
					best, bestCount = p, n
				}
			}
			out[cat][band] = best
		}
	}
	return out
}
