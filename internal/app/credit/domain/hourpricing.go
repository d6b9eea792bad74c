package domain

import (
	"math/big"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Fee fractions of the hour-billing fee stack. Each fee compounds on
// the running subtotal before it.
var (
	serviceFeeFraction      = big.NewRat(40, 100)
	postWorkFeeFraction     = big.NewRat(20, 100)
	organizationFeeFraction = big.NewRat(10, 100)
)

// HourPricingBreakdown itemizes one hours-based booking price. Derived
// on demand, never persisted.
type HourPricingBreakdown struct {
	Hours           int64
	RatePerHour     *money.Money
	Base            *money.Money
	ServiceFee      *money.Money
	PostWorkFee     *money.Money
	OrganizationFee *money.Money
	ProductFee      *money.Money
	FinalPrice      *money.Money

	// DiscountedPrice is set when the customer's credit balance covers
	// the booking: the service fee is waived on redemption.
	DiscountedPrice *money.Money
	CreditApplied   bool
}

// HourPricerParams are the operator-tunable knobs of hour billing.
type HourPricerParams struct {
	// BaseRate is the per-hour rate for totals up to TierThreshold.
	BaseRate *money.Money
	// BulkRate is the per-hour rate applied to every hour once the
	// total exceeds TierThreshold.
	BulkRate *money.Money
	// TierThreshold is the cliff between the two rates, in hours.
	TierThreshold int64
	// ProductFee is the flat per-booking product fee.
	ProductFee *money.Money
	// PackageSizes are the purchasable hour packages, ascending.
	PackageSizes []int64
}

// DefaultHourPricerParams returns the documented defaults: 50.00/h up
// to 40 hours, 45.00/h beyond, 30.00 product fee, packages of 40
// through 120 in 20-hour steps.
func DefaultHourPricerParams() HourPricerParams {
	return HourPricerParams{
		BaseRate:      money.FromCents(5000),
		BulkRate:      money.FromCents(4500),
		TierThreshold: 40,
		ProductFee:    money.FromCents(3000),
		PackageSizes:  []int64{40, 60, 80, 100, 120},
	}
}

// HourPricer computes hours-based booking prices and package
// suggestions. Stateless and safe for concurrent use.
type HourPricer struct {
	params HourPricerParams
}

// NewHourPricer creates a pricer with the given parameters.
func NewHourPricer(params HourPricerParams) *HourPricer {
	return &HourPricer{params: params}
}

// RatePerHour returns the applicable per-hour rate for a total hour
// count. This is a cliff-edge policy, not marginal tiering: once the
// total crosses the threshold the lower rate applies to ALL hours, so
// a 41-hour booking is cheaper per hour than a 40-hour one.
func (p *HourPricer) RatePerHour(hours int64) *money.Money {
	if hours > p.params.TierThreshold {
		return p.params.BulkRate.Copy()
	}
	return p.params.BaseRate.Copy()
}

// PriceForHours returns the raw hour cost (hours times the tier rate)
// with no booking fees. This is also the purchase price of an hour
// package.
func (p *HourPricer) PriceForHours(hours int64) (*money.Money, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}
	return p.RatePerHour(hours).MulInt(hours), nil
}

// Quote prices an hours-based booking: base plus the compounding fee
// stack plus the flat product fee. When redeemableHours covers the
// booking, a discounted price with the service fee waived is included.
func (p *HourPricer) Quote(hours int64, redeemableHours int64) (*HourPricingBreakdown, error) {
	base, err := p.PriceForHours(hours)
	if err != nil {
		return nil, err
	}

	serviceFee := base.MulRat(serviceFeeFraction)
	postWorkFee := base.Add(serviceFee).MulRat(postWorkFeeFraction)
	organizationFee := base.Add(serviceFee).Add(postWorkFee).MulRat(organizationFeeFraction)
	productFee := p.params.ProductFee.Copy()

	final := base.Add(serviceFee).Add(postWorkFee).Add(organizationFee).Add(productFee).RoundCents()

	breakdown := &HourPricingBreakdown{
		Hours:           hours,
		RatePerHour:     p.RatePerHour(hours),
		Base:            base,
		ServiceFee:      serviceFee,
		PostWorkFee:     postWorkFee,
		OrganizationFee: organizationFee,
		ProductFee:      productFee,
		FinalPrice:      final,
	}

	if redeemableHours >= hours {
		breakdown.DiscountedPrice = final.Sub(serviceFee).RoundCents()
		breakdown.CreditApplied = true
	}
	return breakdown, nil
}

// SuggestPackage returns the smallest purchasable package covering the
// requested hours, falling back to the largest when none suffices.
func (p *HourPricer) SuggestPackage(requestedHours int64) int64 {
	if len(p.params.PackageSizes) == 0 {
		return 0
	}
	for _, size := range p.params.PackageSizes {
		if size >= requestedHours {
			return size
		}
	}
	return p.params.PackageSizes[len(p.params.PackageSizes)-1]
}
