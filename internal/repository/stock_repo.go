package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// StockRepository defines the non-transactional read access to inventory.
// Writes happen exclusively through the UnitOfWork Tx capability.
type StockRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.StockItem, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) ListByUser(ctx context.Context, userID uint) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("product_name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StockItem{}).
		Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
