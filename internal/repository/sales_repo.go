package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// SalesRepository reads persisted sales rows. Inserts happen only inside the
// reconciliation transaction via the UnitOfWork Tx capability.
type SalesRepository interface {
	ListRecent(ctx context.Context, userID uint, limit int) ([]model.SaleRecord, error)
	FindAllByUser(ctx context.Context, userID uint) ([]model.SaleRecord, error)
}

type salesRepo struct{ db *gorm.DB }

func NewSalesRepository(db *gorm.DB) SalesRepository { return &salesRepo{db: db} }

func (r *salesRepo) ListRecent(ctx context.Context, userID uint, limit int) ([]model.SaleRecord, error) {
	var recs []model.SaleRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *salesRepo) FindAllByUser(ctx context.Context, userID uint) ([]model.SaleRecord, error) {
	var recs []model.SaleRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recs).Error
	return recs, err
}
