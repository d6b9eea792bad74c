package domain

import (
	"math/big"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Component is one itemized line of a price calculation. Amounts are
// signed deltas; summing every component of a result reproduces its
// final price exactly.
type Component struct {
	Label  string
	Amount *money.Money
}

// PricingResult is the outcome of one quote calculation.
type PricingResult struct {
	// QuoteID identifies this quote so the booking workflow can persist
	// a price snapshot. Empty for engine-internal simulations.
	QuoteID string

	// FinalPrice is the chargeable amount, rounded to cents and never
	// below the configured floor.
	FinalPrice *money.Money

	// BasePrice is the pre-multiplier subtotal (services plus area
	// surcharge) the discounts are measured against.
	BasePrice *money.Money

	// SurgeMultiplier is the applied time-of-day/day-of-week factor.
	SurgeMultiplier *big.Rat

	// LoyaltyDiscount is the applied loyalty fraction (0 to 0.15).
	LoyaltyDiscount *big.Rat

	// TotalDiscount is the absolute amount removed from the price by
	// loyalty and capped additive discounts together.
	TotalDiscount *money.Money

	// ServiceFee is the fee added after discounts.
	ServiceFee *money.Money

	// Components itemizes the calculation for display.
	Components []Component
}

// Scenario is one alternative quote produced by a simulation run.
type Scenario struct {
	Name     string
	Result   *PricingResult
	Cheapest bool
}
