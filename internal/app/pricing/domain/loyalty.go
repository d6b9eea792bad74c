package domain

import (
	"math/big"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// LoyaltyAggregate is a read-only projection of a customer's completed
// booking history, supplied by the persistence collaborator.
type LoyaltyAggregate struct {
	CompletedBookings int64
	LifetimeSpent     *money.Money
}

// Loyalty tier thresholds. A customer qualifies for a tier on the
// better of booking count or lifetime spend.
var (
	loyaltyGoldSpend   = money.FromCents(300000) // 3000.00
	loyaltySilverSpend = money.FromCents(150000) // 1500.00
	loyaltyBronzeSpend = money.FromCents(75000)  // 750.00
)

// TierDiscount returns the loyalty discount fraction (0 to 0.15) for
// the aggregate. A nil aggregate (unknown or anonymous customer) earns
// no discount.
func (a *LoyaltyAggregate) TierDiscount() *big.Rat {
	if a == nil {
		return big.NewRat(0, 1)
	}
	spent := a.LifetimeSpent
	if spent == nil {
		spent = money.Zero()
	}
	switch {
	case a.CompletedBookings >= 20 || !spent.LessThan(loyaltyGoldSpend):
		return big.NewRat(15, 100)
	case a.CompletedBookings >= 10 || !spent.LessThan(loyaltySilverSpend):
		return big.NewRat(10, 100)
	case a.CompletedBookings >= 5 || !spent.LessThan(loyaltyBronzeSpend):
		return big.NewRat(5, 100)
	default:
		return big.NewRat(0, 1)
	}
}
