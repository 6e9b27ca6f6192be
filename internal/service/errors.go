package service

import (
	"errors"
	"fmt"
)

// Upload error taxonomy. The HTTP layer maps these to status codes; the
// services only produce the discriminated value with its context.

// ErrNoInventory is returned when a sales upload arrives before the user has
// configured any stock. User-correctable, no partial work is attempted.
var ErrNoInventory = errors.New("no inventory configured: upload stock before sales")

// ErrEmptyUpload is returned when a CSV parses but contains zero data rows.
var ErrEmptyUpload = errors.New("no valid data found in the uploaded file")

// ErrEmptyProductName fails a stock upload whose row has no product name.
var ErrEmptyProductName = errors.New("product name cannot be empty")

// ErrUploadInProgress is returned when another upload already holds the
// per-user lock.
var ErrUploadInProgress = errors.New("another upload is already in progress for this account")

// Auth errors.

// ErrAccountExists is returned when a registration reuses an email or phone.
var ErrAccountExists = errors.New("an account with this email or phone already exists")

// ErrInvalidCredentials covers both unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotVerified blocks login until the OTP check has passed.
var ErrNotVerified = errors.New("account not verified: complete OTP verification first")

// ErrInvalidOTP is returned on a code mismatch. The pending registration is
// deleted and the user must register again.
var ErrInvalidOTP = errors.New("invalid OTP: registration cancelled, please register again")

// ProductNotFoundError aborts a sales batch referencing a product absent from
// the user's stock.
type ProductNotFoundError struct {
	Product string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found in stock", e.Product)
}

// InsufficientStockError aborts a sales batch whose decrement would drive a
// quantity negative.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available, %d requested",
		e.Product, e.Available, e.Requested)
}
