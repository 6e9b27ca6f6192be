package model

import "time"

// Store holds the single store profile a user can attach to their account.
type Store struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	StoreName    string `gorm:"not null"`
	AddressLine1 string
	Country      string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
