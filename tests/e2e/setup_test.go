package e2e

import (
	"testing"

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
	"github.com/light-bringer/cleanprice-service/internal/services"
	"github.com/light-bringer/cleanprice-service/tests/testutil"
)

// Services holds all use cases and queries for the end-to-end tests.
type Services struct {
	QuoteBooking  *quote_booking.Interactor
	SimulateQuote *simulate_quote.Interactor
	QuoteHours    *quote_hours.Interactor
	PurchaseHours *purchase_hours.Interactor
	ConsumeCredit *consume_credit.Interactor
	ListServices  *list_services.Query

	Clock *clock.MockClock
}

// setupTest wires the full stack against the test database with a
// controllable clock.
func setupTest(t *testing.T) (*Services, *spanner.Client, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	cfg := config.Default()
	clk := clock.NewMockClock(clock.NewRealClock().Now())
	comm := committer.NewCommitter(client)

	catalogRepo := pricingrepo.NewCatalogRepo(client)
	loyaltyRepo := pricingrepo.NewLoyaltyRepo(client)
	catalogReadModel := pricingrepo.NewCatalogReadModel(client)
	creditStore := creditrepo.NewCreditRepo(client, comm)

	engine := pricingdomain.NewPricingEngine(services.EngineParams(&cfg.Pricing))
	pricer := creditdomain.NewHourPricer(services.HourPricerParams(&cfg.HourCredit))

	suite := &Services{
		QuoteBooking:  quote_booking.NewInteractor(catalogRepo, loyaltyRepo, engine),
		SimulateQuote: simulate_quote.NewInteractor(catalogRepo, loyaltyRepo, engine),
		QuoteHours:    quote_hours.NewInteractor(creditStore, pricer, clk),
		PurchaseHours: purchase_hours.NewInteractor(creditStore, pricer, clk, cfg.HourCredit.DefaultExpiryDays),
		ConsumeCredit: consume_credit.NewInteractor(creditStore),
		ListServices:  list_services.NewQuery(catalogReadModel),
		Clock:         clk,
	}

	return suite, client, cleanup
}
