package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

// UserRepository is the data access contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	MarkVerified(ctx context.Context, id uint) error
	// DeleteUnverified removes a pending registration whose OTP check failed.
	DeleteUnverified(ctx context.Context, email string) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR phone = ?", email, phone).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) MarkVerified(ctx context.Context, id uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":    true,
			"otp":         nil,
			"verified_at": now,
		}).Error
}

func (r *userRepo) DeleteUnverified(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND verified = false", email).
		Delete(&model.User{}).Error
}
