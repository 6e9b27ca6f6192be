package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// StoreRepository persists the one store profile a user can have.
type StoreRepository interface {
	FindByUser(ctx context.Context, userID uint) (*model.Store, error)
	Upsert(ctx context.Context, s *model.Store) error
}

type storeRepo struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) StoreRepository { return &storeRepo{db: db} }

func (r *storeRepo) FindByUser(ctx context.Context, userID uint) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) Upsert(ctx context.Context, s *model.Store) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"store_name", "address_line1", "country", "postal_code", "updated_at",
		}),
	}).Create(s).Error
}
