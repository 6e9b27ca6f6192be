package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// Tx is the store capability handed to an upload transaction. Every mutation
// of a user's stock goes through this interface inside one UnitOfWork.Do call,
// which makes the transaction boundary explicit and the services testable
// without a real database.
type Tx interface {
	CountStock(userID uint) (int64, error)
	// StockForUpdate locks the row for the remainder of the transaction
	// (SELECT ... FOR UPDATE). Returns gorm.ErrRecordNotFound when the user
	// owns no such product.
	StockForUpdate(userID uint, productName string) (*model.StockItem, error)
	UpdateStockQuantity(itemID uint, quantity int) error
	CreateStockItem(item *model.StockItem) error
	CreateSaleRecords(recs []model.SaleRecord) error
}

// UnitOfWork runs a function inside one atomic transaction: fn either commits
// as a whole or every write it performed is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(Tx) error) error
}

type gormUnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) UnitOfWork { return &gormUnitOfWork{db: db} }

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(Tx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{tx: tx})
	})
}

type gormTx struct{ tx *gorm.DB }

func (t *gormTx) CountStock(userID uint) (int64, error) {
	var n int64
	err := t.tx.Model(&model.StockItem{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (t *gormTx) StockForUpdate(userID uint, productName string) (*model.StockItem, error) {
	var item model.StockItem
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND product_name = ?", userID, productName).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (t *gormTx) UpdateStockQuantity(itemID uint, quantity int) error {
	return t.tx.Model(&model.StockItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (t *gormTx) CreateStockItem(item *model.StockItem) error {
	return t.tx.Create(item).Error
}

func (t *gormTx) CreateSaleRecords(recs []model.SaleRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return t.tx.Create(&recs).Error
}
