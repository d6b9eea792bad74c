package contracts

import (
	"context"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
)

// LoyaltyLookup reads a customer's completed-booking aggregate.
// A customer with no history yields (nil, nil), which the engine
// treats as zero discount.
type LoyaltyLookup interface {
	Aggregate(ctx context.Context, customerID string) (*domain.LoyaltyAggregate, error)
}
