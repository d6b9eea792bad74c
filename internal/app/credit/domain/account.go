package domain

import "time"

// HourCreditAccount is a customer's prepaid hour balance. One account
// per customer, created lazily on the first package purchase and never
// deleted; the balance only moves through AddHours and Consume.
//
// Invariant: AvailableHours() never goes negative. Consumption beyond
// the balance is rejected before any mutation, not clamped.
type HourCreditAccount struct {
	CustomerID string
	TotalHours int64
	UsedHours  int64
	ExpiryDate time.Time
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAccount creates an account for a first-time purchaser.
func NewAccount(customerID string, hours int64, expiry time.Time, now time.Time) (*HourCreditAccount, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}
	return &HourCreditAccount{
		CustomerID: customerID,
		TotalHours: hours,
		UsedHours:  0,
		ExpiryDate: expiry,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AvailableHours returns the redeemable balance.
func (a *HourCreditAccount) AvailableHours() int64 {
	return a.TotalHours - a.UsedHours
}

// IsExpired reports whether the credit has lapsed at the given time.
func (a *HourCreditAccount) IsExpired(now time.Time) bool {
	return !a.ExpiryDate.IsZero() && now.After(a.ExpiryDate)
}

// RedeemableHours returns the balance usable at the given time: zero
// once the credit has expired.
func (a *HourCreditAccount) RedeemableHours(now time.Time) int64 {
	if a.IsExpired(now) {
		return 0
	}
	return a.AvailableHours()
}

// AddHours credits purchased hours and pushes the expiry forward.
func (a *HourCreditAccount) AddHours(hours int64, expiry time.Time) error {
	if hours <= 0 {
		return ErrInvalidHours
	}
	a.TotalHours += hours
	if expiry.After(a.ExpiryDate) {
		a.ExpiryDate = expiry
	}
	return nil
}

// Consume debits used hours. The balance check happens before any
// mutation so a failed consume leaves the account unchanged.
func (a *HourCreditAccount) Consume(hours int64) error {
	if hours <= 0 {
		return ErrInvalidHours
	}
	if hours > a.AvailableHours() {
		return ErrInsufficientCredit
	}
	a.UsedHours += hours
	return nil
}
