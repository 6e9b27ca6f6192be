package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one normalized row from an uploaded sales CSV. Rows are only
// ever written by the sales import transaction, tagged with the uploading
// user, in input order.
//
// Total is nil when the source marked the line "cancelled"/"returned" or the
// value did not parse; nil totals are excluded from revenue aggregations.
// CustomerAge stays a string on purpose — the source data mixes numbers with
// the "N/A" sentinel and the analytics layer bins whatever parses.
type SaleRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"not null;index"`
	CustomerID         string `gorm:"not null;default:'N/A'"`
	CustomerAge        string `gorm:"not null;default:'N/A'"`
	Gender             string `gorm:"not null;default:'Unknown'"`
	ProductName        string `gorm:"column:products;not null"`
	MRP                decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Category           string `gorm:"not null;default:'N/A'"`
	Location           string `gorm:"not null;default:'Unknown'"`
	CustomerType       string `gorm:"not null;default:'N/A'"`
	Advertisement      string `gorm:"not null;default:'None'"`
	Returned           int    `gorm:"not null;default:0"`
	Date               time.Time        `gorm:"type:date;not null"`
	Total              *decimal.Decimal `gorm:"type:decimal(10,2)"`
	OrderType          string `gorm:"not null;default:'Standard'"`
	Quantity           int    `gorm:"not null;default:0"`
	DiscountPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Month              string `gorm:"not null;default:'Unknown'"`
	CreatedAt          time.Time
}

func (SaleRecord) TableName() string { return "sales" }
