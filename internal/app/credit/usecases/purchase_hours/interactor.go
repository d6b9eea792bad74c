package purchase_hours

import (
	"context"
	"fmt"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/clock"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Request contains the data to purchase an hour package.
type Request struct {
	CustomerID string
	Hours      int64

	// ExpiryDays overrides the default credit lifetime when positive.
	ExpiryDays int
}

// Result is the outcome of a purchase: the credited account and the
// package price charged.
type Result struct {
	Account *domain.HourCreditAccount
	Price   *money.Money
}

// Interactor handles the purchase hours use case.
type Interactor struct {
	store             contracts.CreditStore
	pricer            *domain.HourPricer
	clock             clock.Clock
	defaultExpiryDays int
}

// NewInteractor creates a new purchase hours interactor.
func NewInteractor(
	store contracts.CreditStore,
	pricer *domain.HourPricer,
	clock clock.Clock,
	defaultExpiryDays int,
) *Interactor {
	return &Interactor{
		store:             store,
		pricer:            pricer,
		clock:             clock,
		defaultExpiryDays: defaultExpiryDays,
	}
}

// Execute prices the package at the tier rate and credits the hours.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	price, err := i.pricer.PriceForHours(req.Hours)
	if err != nil {
		return nil, err
	}

	expiryDays := req.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = i.defaultExpiryDays
	}
	expiry := i.clock.Now().AddDate(0, 0, expiryDays)

	account, err := i.store.AddCredit(ctx, req.CustomerID, req.Hours, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to credit hours: %w", err)
	}

	return &Result{Account: account, Price: price}, nil
}
