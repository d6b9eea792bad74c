package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
)

// CreditStore persists hour-credit accounts.
//
// AddCredit and ConsumeCredit must be atomic: the balance check of a
// consume happens inside the same transaction as the write, so two
// concurrent redemptions can never overdraw the account. ConsumeCredit
// returns domain.ErrInsufficientCredit with the ledger untouched when
// the balance does not cover the request.
type CreditStore interface {
	// Get returns the customer's account, or
	// domain.ErrAccountNotFound.
	Get(ctx context.Context, customerID string) (*domain.HourCreditAccount, error)

	// AddCredit upserts the account: creates it on first purchase,
	// otherwise increments the balance and pushes the expiry forward.
	AddCredit(ctx context.Context, customerID string, hours int64, expiry time.Time) (*domain.HourCreditAccount, error)

	// ConsumeCredit atomically debits hours if and only if the
	// available balance covers them.
	ConsumeCredit(ctx context.Context, customerID string, hours int64) (*domain.HourCreditAccount, error)
}
