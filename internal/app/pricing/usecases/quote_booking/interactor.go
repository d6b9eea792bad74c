package quote_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// Request contains the data to quote one booking.
type Request struct {
	ServiceIDs []string

	// BasePriceOverride, when positive, replaces the catalog subtotal.
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

// Interactor handles the quote booking use case.
type Interactor struct {
	catalog contracts.CatalogLookup
	loyalty contracts.LoyaltyLookup
	engine  *domain.PricingEngine
}

// NewInteractor creates a new quote booking interactor. The catalog
// and loyalty lookups may be nil, in which case quotes run purely from
// the request (override price, no loyalty history).
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

// Execute prices one booking.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.PricingResult, error) {
	// 1. Resolve catalog prices
	lines, err := i.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 2. Load loyalty aggregate
	loyalty, err := i.loadLoyalty(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	// 3. Run the pricing pipeline
	result := i.engine.Calculate(&domain.PricingRequest{
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
	}, loyalty)

	result.QuoteID = uuid.NewString()
	return result, nil
}

func (i *Interactor) resolveServices(ctx context.Context, serviceIDs []string) ([]domain.ServiceLine, error) {
	if len(serviceIDs) == 0 || i.catalog == nil {
		return nil, nil
	}

	prices, err := i.catalog.BasePrices(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service prices: %w", err)
	}

	lines := make([]domain.ServiceLine, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		lines = append(lines, domain.ServiceLine{
			ServiceID: id,
			BasePrice: prices[id],
		})
	}
	return lines, nil
}

func (i *Interactor) loadLoyalty(ctx context.Context, customerID string) (*domain.LoyaltyAggregate, error) {
	if customerID == "" || i.loyalty == nil {
		return nil, nil
	}
	loyalty, err := i.loyalty.Aggregate(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loyalty history: %w", err)
	}
	return loyalty, nil
}
