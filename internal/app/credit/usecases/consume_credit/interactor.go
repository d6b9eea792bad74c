package consume_credit

import (
	"context"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
)

// Request contains the data to redeem credited hours.
type Request struct {
	CustomerID string
	Hours      int64
}

// Interactor handles the consume credit use case.
type Interactor struct {
	store contracts.CreditStore
}

// NewInteractor creates a new consume credit interactor.
func NewInteractor(store contracts.CreditStore) *Interactor {
	return &Interactor{store: store}
}

// Execute debits the hours from the customer's account. The store
// rejects the debit with domain.ErrInsufficientCredit before any write
// when the balance does not cover it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.HourCreditAccount, error) {
	return i.store.ConsumeCredit(ctx, req.CustomerID, req.Hours)
}
