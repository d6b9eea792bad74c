package quote_hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/clock"
)

// Request contains the data to quote an hour-based booking.
type Request struct {
	CustomerID string
	Hours      int64

	// ApplyCredit asks for the customer's credited hours to be
	// redeemed against the booking.
	ApplyCredit bool
}

// Result is the quoted breakdown plus the package the customer should
// buy to cover the requested hours.
type Result struct {
	Breakdown        *domain.HourPricingBreakdown
	SuggestedPackage int64
}

// Interactor handles the quote hours use case.
type Interactor struct {
	store  contracts.CreditStore
	pricer *domain.HourPricer
	clock  clock.Clock
}

// NewInteractor creates a new quote hours interactor. The store may be
// nil, in which case quotes never apply credit.
func NewInteractor(store contracts.CreditStore, pricer *domain.HourPricer, clk clock.Clock) *Interactor {
	return &Interactor{store: store, pricer: pricer, clock: clk}
}

// Execute prices the booking. Customers without an account quote as
// having zero redeemable hours rather than failing.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	var redeemable int64
	if req.ApplyCredit && req.CustomerID != "" && i.store != nil {
		account, err := i.store.Get(ctx, req.CustomerID)
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			redeemable = 0
		case err != nil:
			return nil, fmt.Errorf("failed to load credit account: %w", err)
		default:
			redeemable = account.RedeemableHours(i.clock.Now())
		}
	}

	breakdown, err := i.pricer.Quote(req.Hours, redeemable)
	if err != nil {
		return nil, err
	}

	return &Result{
		Breakdown:        breakdown,
		SuggestedPackage: i.pricer.SuggestPackage(req.Hours),
	}, nil
}
