package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	creditdomain "github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	creditrepo "github.com/light-bringer/cleanprice-service/internal/app/credit/repo"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/consume_credit"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/purchase_hours"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/quote_hours"
	pricingdomain "github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/queries/list_services"
	pricingrepo "github.com/light-bringer/cleanprice-service/internal/app/pricing/repo"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/quote_booking"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/simulate_quote"
	"github.com/light-bringer/cleanprice-service/internal/config"
	"github.com/light-bringer/cleanprice-service/internal/pkg/clock"
	"github.com/light-bringer/cleanprice-service/internal/pkg/committer"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client

	QuoteBooking  *quote_booking.Interactor
	SimulateQuote *simulate_quote.Interactor
	QuoteHours    *quote_hours.Interactor
	PurchaseHours *purchase_hours.Interactor
	ConsumeCredit *consume_credit.Interactor
	ListServices  *list_services.Query
}

// NewServiceOptions creates and wires up all application dependencies
// against Spanner.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	catalogRepo := pricingrepo.NewCatalogRepo(spannerClient)
	loyaltyRepo := pricingrepo.NewLoyaltyRepo(spannerClient)
	catalogReadModel := pricingrepo.NewCatalogReadModel(spannerClient)
	creditStore := creditrepo.NewCreditRepo(spannerClient, comm)

	// 4. Create calculators from configuration
	engine := pricingdomain.NewPricingEngine(EngineParams(&cfg.Pricing))
	pricer := creditdomain.NewHourPricer(HourPricerParams(&cfg.HourCredit))

	// 5. Create use cases
	return &ServiceOptions{
		SpannerClient: spannerClient,

		QuoteBooking:  quote_booking.NewInteractor(catalogRepo, loyaltyRepo, engine),
		SimulateQuote: simulate_quote.NewInteractor(catalogRepo, loyaltyRepo, engine),
		QuoteHours:    quote_hours.NewInteractor(creditStore, pricer, clk),
		PurchaseHours: purchase_hours.NewInteractor(creditStore, pricer, clk, cfg.HourCredit.DefaultExpiryDays),
		ConsumeCredit: consume_credit.NewInteractor(creditStore),
		ListServices:  list_services.NewQuery(catalogReadModel),
	}, nil
}

// NewLocalOptions wires the calculators without Spanner. Quotes run
// purely from request data: override prices, no loyalty history, no
// credit redemption.
func NewLocalOptions(cfg *config.Config) *ServiceOptions {
	engine := pricingdomain.NewPricingEngine(EngineParams(&cfg.Pricing))
	pricer := creditdomain.NewHourPricer(HourPricerParams(&cfg.HourCredit))
	clk := clock.NewRealClock()

	return &ServiceOptions{
		QuoteBooking:  quote_booking.NewInteractor(nil, nil, engine),
		SimulateQuote: simulate_quote.NewInteractor(nil, nil, engine),
		QuoteHours:    quote_hours.NewInteractor(nil, pricer, clk),
	}
}

// EngineParams maps pricing configuration onto engine parameters.
func EngineParams(cfg *config.PricingConfig) pricingdomain.EngineParams {
	return pricingdomain.EngineParams{
		MinimumPrice:           money.FromCents(cfg.MinimumPriceCents),
		ServiceFeePercent:      cfg.ServiceFeePercent,
		MaximumDiscountPercent: cfg.MaximumDiscountPercent,
		PricePerSquareMeter:    money.FromCents(cfg.PricePerSquareMeterCents),
	}
}

// HourPricerParams maps hour-credit configuration onto pricer
// parameters.
func HourPricerParams(cfg *config.HourCreditConfig) creditdomain.HourPricerParams {
	return creditdomain.HourPricerParams{
		BaseRate:      money.FromCents(cfg.BaseRateCents),
		BulkRate:      money.FromCents(cfg.BulkRateCents),
		TierThreshold: cfg.TierThresholdHours,
		ProductFee:    money.FromCents(cfg.ProductFeeCents),
		PackageSizes:  cfg.PackageSizes,
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
