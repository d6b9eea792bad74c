package simulate_quote

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Request contains the data to simulate booking scenarios.
type Request struct {
	ServiceIDs        []string
	BasePriceOverride *money.Money

	AreaSqM      int64
	CleaningType string
	Frequency    string
	Urgency      string

	ServiceDate time.Time
	ServiceTime string

	CustomerID       string
	IsNewCustomer    bool
	IsComboPurchase  bool
	DaysUntilService int
}

// Interactor handles the simulate quote use case: the same booking
// priced under alternative urgency and frequency choices, with the
// cheapest flagged.
type Interactor struct {
	catalog contracts.CatalogLookup
	loyalty contracts.LoyaltyLookup
	engine  *domain.PricingEngine
}

// NewInteractor creates a new simulate quote interactor.
func NewInteractor(
	catalog contracts.CatalogLookup,
	loyalty contracts.LoyaltyLookup,
	engine *domain.PricingEngine,
) *Interactor {
	return &Interactor{
		catalog: catalog,
		loyalty: loyalty,
		engine:  engine,
	}
}

// Execute prices the booking under each scenario.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]domain.Scenario, error) {
	var lines []domain.ServiceLine
	if len(req.ServiceIDs) > 0 && i.catalog != nil {
		prices, err := i.catalog.BasePrices(ctx, req.ServiceIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve service prices: %w", err)
		}
		lines = make([]domain.ServiceLine, 0, len(req.ServiceIDs))
		for _, id := range req.ServiceIDs {
			lines = append(lines, domain.ServiceLine{ServiceID: id, BasePrice: prices[id]})
		}
	}

	var loyalty *domain.LoyaltyAggregate
	if req.CustomerID != "" && i.loyalty != nil {
		agg, err := i.loyalty.Aggregate(ctx, req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load loyalty history: %w", err)
		}
		loyalty = agg
	}

	return i.engine.Simulate(&domain.PricingRequest{
		Services:          lines,
		BasePriceOverride: req.BasePriceOverride,
		AreaSqM:           req.AreaSqM,
		CleaningType:      domain.CleaningType(req.CleaningType),
		Frequency:         domain.Frequency(req.Frequency),
		Urgency:           domain.Urgency(req.Urgency),
		ServiceDate:       req.ServiceDate,
		ServiceTime:       req.ServiceTime,
		CustomerID:        req.CustomerID,
		IsNewCustomer:     req.IsNewCustomer,
		IsComboPurchase:   req.IsComboPurchase,
		DaysUntilService:  req.DaysUntilService,
	}, loyalty), nil
}
