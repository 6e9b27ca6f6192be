package model

import "time"

// User is an account owner. Every stock item and sales row belongs to exactly
// one user. Accounts start unverified and hold the pending OTP until the owner
// confirms it.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Verified     bool   `gorm:"not null;default:false"`
	OTP          *string
	CreatedAt    time.Time
	VerifiedAt   *time.Time
}
