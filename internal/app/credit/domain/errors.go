package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrInsufficientCredit is returned when a consumption would
	// overdraw the available hour balance. The ledger is left
	// untouched.
	ErrInsufficientCredit = errors.New("insufficient hour credit")

	// ErrInvalidHours is returned for zero or negative hour amounts.
	ErrInvalidHours = errors.New("hours must be positive")

	// ErrAccountNotFound is returned when a customer has no credit
	// account.
	ErrAccountNotFound = errors.New("hour credit account not found")

	// ErrInvalidExpiry is returned for non-positive expiry windows.
	ErrInvalidExpiry = errors.New("expiry days must be positive")
)
