package dto

import "github.com/shopspring/decimal"

// SaleResponse is one row of the recent-sales listing. Total is null for
// cancelled/returned lines.
type SaleResponse struct {
	CustomerID  string           `json:"customer_id"`
	ProductName string           `json:"products"`
	Quantity    int              `json:"quantity"`
	Total       *decimal.Decimal `json:"total"`
	Date        string           `json:"date"`
	OrderType   string           `json:"order_type"`
	Location    string           `json:"location"`
}
