package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one product in a user's inventory. Product names are unique per
// user; quantity never goes below zero — the sales import rolls back rather
// than committing a negative quantity.
//
// Column mapping from the stock CSV: "Price" lands in MRP and "Discounted
// Price" in Price. Both are nullable because an unknown price is not a zero
// price.
type StockItem struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_product"`
	ProductName string `gorm:"not null;uniqueIndex:idx_user_product"`
	Quantity    int    `gorm:"not null;default:0"`
	MRP         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Price       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Category    string `gorm:"not null;default:'Unknown'"`
	SubCategory string `gorm:"not null;default:'Unknown'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StockItem) TableName() string { return "stocks" }
