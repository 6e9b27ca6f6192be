package ingest

import (
	"github.com/shopspring/decimal"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// SalesSchema maps the sales CSV shape onto SaleRecord. Column names and
// sentinels match the files the dashboard frontend produces; the sentinels are
// load-bearing for aggregation grouping and must not be "tidied up".
var SalesSchema = NewSchema(
	Field[model.SaleRecord]{Column: "CustomerID", Set: func(r *model.SaleRecord, raw string) { r.CustomerID = text(raw, "N/A") }},
	Field[model.SaleRecord]{Column: "Customer Age", Set: func(r *model.SaleRecord, raw string) { r.CustomerAge = text(raw, "N/A") }},
	Field[model.SaleRecord]{Column: "Gender", Set: func(r *model.SaleRecord, raw string) { r.Gender = text(raw, "Unknown") }},
	Field[model.SaleRecord]{Column: "Products", Set: func(r *model.SaleRecord, raw string) { r.ProductName = text(raw, "N/A") }},
	Field[model.SaleRecord]{Column: "MRP", Set: func(r *model.SaleRecord, raw string) { r.MRP = money(raw, decimal.Zero) }},
	Field[model.SaleRecord]{Column: "Discount Percentage", Set: func(r *model.SaleRecord, raw string) { r.DiscountPercentage = money(raw, decimal.Zero) }},
	Field[model.SaleRecord]{Column: "Category", Set: func(r *model.SaleRecord, raw string) { r.Category = text(raw, "N/A") }},
	Field[model.SaleRecord]{Column: "Location", Set: func(r *model.SaleRecord, raw string) { r.Location = text(raw, "Unknown") }},
	Field[model.SaleRecord]{Column: "CustomerType", Set: func(r *model.SaleRecord, raw string) { r.CustomerType = text(raw, "N/A") }},
	Field[model.SaleRecord]{Column: "Advertisement", Set: func(r *model.SaleRecord, raw string) { r.Advertisement = text(raw, "None") }},
	Field[model.SaleRecord]{Column: "Returned", Set: func(r *model.SaleRecord, raw string) { r.Returned = integer(raw, 0) }},
	Field[model.SaleRecord]{Column: "Date", Set: func(r *model.SaleRecord, raw string) { r.Date = dateValue(raw) }},
	Field[model.SaleRecord]{Column: "Total", Set: func(r *model.SaleRecord, raw string) { r.Total = totalValue(raw) }},
	Field[model.SaleRecord]{Column: "Order Type", Set: func(r *model.SaleRecord, raw string) { r.OrderType = text(raw, "Standard") }},
	Field[model.SaleRecord]{Column: "Quantity", Set: func(r *model.SaleRecord, raw string) { r.Quantity = integer(raw, 0) }},
	Field[model.SaleRecord]{Column: "Discount Price", Set: func(r *model.SaleRecord, raw string) { r.DiscountPrice = money(raw, decimal.Zero) }},
	Field[model.SaleRecord]{Column: "Month", Set: func(r *model.SaleRecord, raw string) { r.Month = text(raw, "Unknown") }},
)

// StockSchema maps the stock CSV shape onto StockItem. The CSV "Price" column
// is the MRP and "Discounted Price" the selling price. Product names carry no
// sentinel: an empty name must surface as a row-level error in the stock
// upload transaction, not be masked by a default.
var StockSchema = NewSchema(
	Field[model.StockItem]{Column: "Product Name", Set: func(r *model.StockItem, raw string) { r.ProductName = raw }},
	Field[model.StockItem]{Column: "Quantity", Set: func(r *model.StockItem, raw string) { r.Quantity = integer(raw, 0) }},
	Field[model.StockItem]{Column: "Price", Set: func(r *model.StockItem, raw string) { r.MRP = nullableMoney(raw) }},
	Field[model.StockItem]{Column: "Discounted Price", Set: func(r *model.StockItem, raw string) { r.Price = nullableMoney(raw) }},
	Field[model.StockItem]{Column: "Category", Set: func(r *model.StockItem, raw string) { r.Category = text(raw, "Unknown") }},
	Field[model.StockItem]{Column: "SubCategory", Set: func(r *model.StockItem, raw string) { r.SubCategory = text(raw, "Unknown") }},
)
