package domain

import (
	"math/big"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Additive discount fractions, each taken against the pre-multiplier
// subtotal.
var (
	newCustomerDiscount  = big.NewRat(10, 100)
	earlyBookingDiscount = big.NewRat(5, 100)
	bundleDiscount       = big.NewRat(10, 100)
	comboDiscount        = big.NewRat(10, 100)
)

// Days of lead time required for the early-booking discount.
const earlyBookingLeadDays = 7

// Bundle size above which the bundle discount applies.
const bundleThreshold = 3

// DiscountPolicy computes loyalty and itemized discounts and enforces
// the combined discount ceiling. Stateless and safe for concurrent use.
type DiscountPolicy struct {
	// maxDiscount is the ceiling on loyalty + additive discounts as a
	// fraction of the pre-multiplier subtotal.
	maxDiscount *big.Rat
}

// NewDiscountPolicy creates a policy with the given combined-discount
// ceiling in percent.
func NewDiscountPolicy(maxDiscountPercent int64) *DiscountPolicy {
	if maxDiscountPercent < 0 {
		maxDiscountPercent = 0
	}
	return &DiscountPolicy{maxDiscount: big.NewRat(maxDiscountPercent, 100)}
}

// LoyaltyDiscount returns the multiplicative loyalty fraction for the
// customer's history. No identifier or no history means no discount.
func (p *DiscountPolicy) LoyaltyDiscount(agg *LoyaltyAggregate) *big.Rat {
	return agg.TierDiscount()
}

// AdditiveDiscount sums the independent absolute discounts against the
// pre-multiplier subtotal: new customer, early booking, bundle size,
// and combo purchase each contribute their own slice.
func (p *DiscountPolicy) AdditiveDiscount(req *PricingRequest, subtotal *money.Money) *money.Money {
	total := money.Zero()
	if req.IsNewCustomer {
		total = total.Add(subtotal.MulRat(newCustomerDiscount))
	}
	if req.DaysUntilService > earlyBookingLeadDays {
		total = total.Add(subtotal.MulRat(earlyBookingDiscount))
	}
	if len(req.Services) > bundleThreshold {
		total = total.Add(subtotal.MulRat(bundleDiscount))
	}
	if req.IsComboPurchase {
		total = total.Add(subtotal.MulRat(comboDiscount))
	}
	return total
}

// CapAdditive limits the additive discount so that loyalty plus
// additive never exceeds the configured ceiling relative to the
// pre-multiplier subtotal. When the loyalty fraction alone consumes
// the ceiling the additive discount collapses to zero.
func (p *DiscountPolicy) CapAdditive(loyaltyFraction *big.Rat, additive, subtotal *money.Money) *money.Money {
	headroom := new(big.Rat).Sub(p.maxDiscount, loyaltyFraction)
	if headroom.Sign() <= 0 {
		return money.Zero()
	}
	allowed := subtotal.MulRat(headroom)
	if additive.GreaterThan(allowed) {
		return allowed
	}
	return additive.Copy()
}

// MaxDiscount returns the configured ceiling fraction.
func (p *DiscountPolicy) MaxDiscount() *big.Rat {
	return new(big.Rat).Set(p.maxDiscount)
}
