package dto

import "github.com/shopspring/decimal"

type StockItemResponse struct {
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity"`
	MRP         *decimal.Decimal `json:"mrp"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	SubCategory string           `json:"sub_category"`
}
