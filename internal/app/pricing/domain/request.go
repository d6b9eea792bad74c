package domain

import (
	"time"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// ServiceLine is one requested service with its catalog base price.
// Lines without a resolved price (missing catalog entry) carry a nil
// BasePrice and are excluded from the subtotal.
type ServiceLine struct {
	ServiceID string
	BasePrice *money.Money
}

// PricingRequest is the immutable input for one quote.
type PricingRequest struct {
	Services []ServiceLine

	// BasePriceOverride, when positive, replaces the summed service
	// prices as the pipeline seed and as the discount-cap base.
	BasePriceOverride *money.Money

	// AreaSqM is the property area in square meters. Negative values
	// are treated as zero.
	AreaSqM int64

	CleaningType CleaningType
	Frequency    Frequency
	Urgency      Urgency

	// ServiceDate is the target date; the zero value means unknown.
	ServiceDate time.Time
	// ServiceTime is the target "HH:MM" time of day; empty means
	// unknown.
	ServiceTime string

	CustomerID       string
	IsNewCustomer    bool
	IsComboPurchase  bool
	DaysUntilService int
}

// Subtotal returns the pre-multiplier service subtotal: the explicit
// base-price override when one is supplied, otherwise the sum of the
// resolved service line prices. An empty request yields zero.
func (r *PricingRequest) Subtotal() *money.Money {
	if r.BasePriceOverride != nil && !r.BasePriceOverride.IsZero() && !r.BasePriceOverride.IsNegative() {
		return r.BasePriceOverride.Copy()
	}
	sum := money.Zero()
	for _, line := range r.Services {
		if line.BasePrice == nil {
			continue
		}
		sum = sum.Add(line.BasePrice)
	}
	return sum
}
