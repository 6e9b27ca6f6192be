package dto

// AnalyticsResponse is the dashboard payload: every block is a ready-to-chart
// aggregation over the user's sales rows. Keys are the normalizer's sentinel
// values where the source data was missing ("Unknown", "N/A", "None", ...).
type AnalyticsResponse struct {
	CustomerBehavior CustomerBehavior             `json:"customerBehavior"`
	SalesAnalysis    SalesAnalysis                `json:"salesAnalysis"`
	Demographics     Demographics                 `json:"demographics"`
	TopSelling       map[string]map[string]string `json:"topSelling"`
}

type CustomerBehavior struct {
	AgeDistribution     map[string]int     `json:"ageDistribution"`
	GenderSales         map[string]float64 `json:"genderSales"`
	DiscountImpact      map[string]float64 `json:"discountImpact"`
	CustomerTypes       map[string]float64 `json:"customerTypes"`
	AdvertisementImpact map[string]float64 `json:"advertisementImpact"`
	AgeSales            map[string]float64 `json:"ageSales"`
}

type SalesAnalysis struct {
	MonthlySales  map[string]float64 `json:"monthlySales"` // keyed "1".."12"
	TopCategories map[string]float64 `json:"topCategories"`
	ReturnRates   map[string]float64 `json:"returnRates"`
}

type Demographics struct {
	LocationSales map[string]float64 `json:"locationSales"`
}
