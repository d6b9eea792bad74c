package domain

import (
	"math/big"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// EngineParams are the operator-tunable knobs of the pricing engine,
// read once at startup.
type EngineParams struct {
	// MinimumPrice is the floor no quote goes below.
	MinimumPrice *money.Money
	// ServiceFeePercent is the fee added after discounts.
	ServiceFeePercent int64
	// MaximumDiscountPercent caps combined discounts against the
	// pre-multiplier subtotal.
	MaximumDiscountPercent int64
	// PricePerSquareMeter is the flat area surcharge rate.
	PricePerSquareMeter *money.Money
}

// DefaultEngineParams returns the documented defaults: 80.00 floor,
// 5% service fee, 30% discount cap, 0.50 per square meter.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		MinimumPrice:           money.FromCents(8000),
		ServiceFeePercent:      5,
		MaximumDiscountPercent: 30,
		PricePerSquareMeter:    money.FromCents(50),
	}
}

// PricingEngine composes the multiplier tables, surge calculator, and
// discount policy into a final quote. It holds no mutable state and is
// safe for concurrent use.
type PricingEngine struct {
	params EngineParams
	surge  *SurgeCalculator
	policy *DiscountPolicy
}

// NewPricingEngine creates an engine with the given parameters.
func NewPricingEngine(params EngineParams) *PricingEngine {
	if params.MinimumPrice == nil {
		params.MinimumPrice = money.Zero()
	}
	if params.PricePerSquareMeter == nil {
		params.PricePerSquareMeter = money.Zero()
	}
	return &PricingEngine{
		params: params,
		surge:  NewSurgeCalculator(),
		policy: NewDiscountPolicy(params.MaximumDiscountPercent),
	}
}

// Calculate runs the full pricing pipeline for one request. It always
// produces a valid, floor-clamped result: degenerate inputs (empty
// service list, unknown enum values, missing schedule or customer)
// resolve to neutral defaults rather than errors.
//
// Pipeline order is fixed: area surcharge, cleaning-type multiplier,
// surge, frequency, urgency, loyalty fraction, capped additive
// discounts, service fee, floor clamp, and a single rounding step at
// the end. Intermediate steps keep full precision.
func (e *PricingEngine) Calculate(req *PricingRequest, loyalty *LoyaltyAggregate) *PricingResult {
	components := make([]Component, 0, 11)

	subtotal := req.Subtotal()
	components = append(components, Component{Label: "services", Amount: subtotal})

	area := int64(0)
	if req.AreaSqM > 0 {
		area = req.AreaSqM
	}
	areaSurcharge := e.params.PricePerSquareMeter.MulInt(area)
	if !areaSurcharge.IsZero() {
		components = append(components, Component{Label: "area surcharge", Amount: areaSurcharge})
	}

	// Pre-multiplier subtotal: the base both additive discounts and the
	// discount cap are measured against.
	base := subtotal.Add(areaSurcharge)
	price := base

	price = e.applyFactor(price, req.CleaningType.Multiplier(), "cleaning type", &components)

	surgeMult := e.surge.Multiplier(req.ServiceDate, req.ServiceTime)
	price = e.applyFactor(price, surgeMult, "surge", &components)

	price = e.applyFactor(price, req.Frequency.Multiplier(), "frequency", &components)
	price = e.applyFactor(price, req.Urgency.Multiplier(), "urgency", &components)

	loyaltyFraction := e.policy.LoyaltyDiscount(loyalty)
	loyaltyAmount := price.MulRat(loyaltyFraction)
	if !loyaltyAmount.IsZero() {
		price = price.Sub(loyaltyAmount)
		components = append(components, Component{Label: "loyalty discount", Amount: money.Zero().Sub(loyaltyAmount)})
	}

	additive := e.policy.AdditiveDiscount(req, base)
	additive = e.policy.CapAdditive(loyaltyFraction, additive, base)
	if !additive.IsZero() {
		price = price.Sub(additive)
		components = append(components, Component{Label: "itemized discounts", Amount: money.Zero().Sub(additive)})
	}

	serviceFee := price.MulRat(big.NewRat(e.params.ServiceFeePercent, 100))
	if !serviceFee.IsZero() {
		price = price.Add(serviceFee)
		components = append(components, Component{Label: "service fee", Amount: serviceFee})
	}

	if price.LessThan(e.params.MinimumPrice) {
		floorAdjustment := e.params.MinimumPrice.Sub(price)
		price = e.params.MinimumPrice.Copy()
		components = append(components, Component{Label: "minimum price adjustment", Amount: floorAdjustment})
	}

	final := price.RoundCents()
	if !final.Equal(price) {
		components = append(components, Component{Label: "rounding", Amount: final.Sub(price)})
	}

	return &PricingResult{
		FinalPrice:      final,
		BasePrice:       base,
		SurgeMultiplier: surgeMult,
		LoyaltyDiscount: loyaltyFraction,
		TotalDiscount:   loyaltyAmount.Add(additive),
		ServiceFee:      serviceFee,
		Components:      components,
	}
}

// applyFactor multiplies the running price by a factor and records the
// delta as a component when it changes the price.
func (e *PricingEngine) applyFactor(price *money.Money, factor *big.Rat, label string, components *[]Component) *money.Money {
	next := price.MulRat(factor)
	delta := next.Sub(price)
	if !delta.IsZero() {
		*components = append(*components, Component{Label: label, Amount: delta})
	}
	return next
}

// Simulate re-runs the pipeline under three named scenarios so callers
// can present alternatives: "normal" (standard urgency), "express"
// (express urgency), and "weekly" (weekly recurrence at standard
// urgency). The cheapest scenario is flagged.
func (e *PricingEngine) Simulate(req *PricingRequest, loyalty *LoyaltyAggregate) []Scenario {
	normal := *req
	normal.Urgency = UrgencyStandard

	express := *req
	express.Urgency = UrgencyExpress

	weekly := *req
	weekly.Urgency = UrgencyStandard
	weekly.Frequency = FrequencyWeekly

	scenarios := []Scenario{
		{Name: "normal", Result: e.Calculate(&normal, loyalty)},
		{Name: "express", Result: e.Calculate(&express, loyalty)},
		{Name: "weekly", Result: e.Calculate(&weekly, loyalty)},
	}

	cheapest := 0
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].Result.FinalPrice.LessThan(scenarios[cheapest].Result.FinalPrice) {
			cheapest = i
		}
	}
	scenarios[cheapest].Cheapest = true
	return scenarios
}

// EstimateBasic is the simplified legacy entry point: base price, area,
// and cleaning type in, floor-clamped rounded total out. No surge,
// discounts, or fees.
func (e *PricingEngine) EstimateBasic(basePrice float64, areaSqM int64, cleaningType string) float64 {
	price := money.Zero()
	if r := new(big.Rat).SetFloat64(basePrice); r != nil && r.Sign() > 0 {
		price = money.FromRat(r)
	}
	if areaSqM > 0 {
		price = price.Add(e.params.PricePerSquareMeter.MulInt(areaSqM))
	}
	price = price.MulRat(CleaningType(cleaningType).Multiplier())
	price = price.Max(e.params.MinimumPrice).RoundCents()
	return price.Float64()
}
