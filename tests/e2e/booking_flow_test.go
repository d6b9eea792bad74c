package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/queries/list_services"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/quote_booking"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/simulate_quote"
	"github.com/light-bringer/cleanprice-service/tests/testutil"
)

// TestBookingQuoteFlow prices a booking from seeded catalog and
// loyalty data.
func TestBookingQuoteFlow(t *testing.T) {
	ctx := context.Background()
	suite, client, cleanup := setupTest(t)
	defer cleanup()

	testutil.SeedService(t, client, "svc-basic", "Basic cleaning", 10000)
	testutil.SeedService(t, client, "svc-windows", "Window cleaning", 6500)
	testutil.SeedBookingStats(t, client, "cust-gold", 25, 320000)

	t.Run("catalog quote", func(t *testing.T) {
		result, err := suite.QuoteBooking.Execute(ctx, &quote_booking.Request{
			ServiceIDs:   []string{"svc-basic"},
			AreaSqM:      80,
			CleaningType: "standard",
		})
		require.NoError(t, err)
		assert.Equal(t, "147.00", result.FinalPrice.String())
		assert.NotEmpty(t, result.QuoteID)
	})

	t.Run("loyalty discount from stored history", func(t *testing.T) {
		result, err := suite.QuoteBooking.Execute(ctx, &quote_booking.Request{
			ServiceIDs:   []string{"svc-basic"},
			AreaSqM:      80,
			CleaningType: "standard",
			CustomerID:   "cust-gold",
		})
		require.NoError(t, err)
		assert.Equal(t, "124.95", result.FinalPrice.String())
	})

	t.Run("multi-service subtotal", func(t *testing.T) {
		result, err := suite.QuoteBooking.Execute(ctx, &quote_booking.Request{
			ServiceIDs:   []string{"svc-basic", "svc-windows"},
			CleaningType: "standard",
		})
		require.NoError(t, err)
		// 100.00 + 65.00, +5% service fee.
		assert.Equal(t, "173.25", result.FinalPrice.String())
	})

	t.Run("scenario comparison", func(t *testing.T) {
		scenarios, err := suite.SimulateQuote.Execute(ctx, &simulate_quote.Request{
			ServiceIDs:   []string{"svc-basic"},
			AreaSqM:      80,
			CleaningType: "standard",
		})
		require.NoError(t, err)
		require.Len(t, scenarios, 3)

		cheapestSeen := false
		for _, s := range scenarios {
			if s.Cheapest {
				cheapestSeen = true
				assert.Equal(t, "weekly", s.Name)
			}
		}
		assert.True(t, cheapestSeen)
	})

	t.Run("catalog listing", func(t *testing.T) {
		services, err := suite.ListServices.Execute(ctx, &list_services.Request{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, services, 2)
		// Ordered by name.
		assert.Equal(t, "svc-basic", services[0].ServiceID)
		assert.Equal(t, "svc-windows", services[1].ServiceID)
	})
}
