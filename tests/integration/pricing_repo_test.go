package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/repo"
	"github.com/light-bringer/cleanprice-service/tests/testutil"
)

func TestCatalogRepo_BasePrices(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	catalog := repo.NewCatalogRepo(client)

	testutil.SeedService(t, client, "svc-kitchen", "Kitchen deep clean", 12000)
	testutil.SeedService(t, client, "svc-windows", "Window cleaning", 6500)

	t.Run("resolves known services", func(t *testing.T) {
		prices, err := catalog.BasePrices(ctx, []string{"svc-kitchen", "svc-windows"})
		require.NoError(t, err)
		require.Len(t, prices, 2)
		assert.Equal(t, "120.00", prices["svc-kitchen"].String())
		assert.Equal(t, "65.00", prices["svc-windows"].String())
	})

	t.Run("unknown services are omitted", func(t *testing.T) {
		prices, err := catalog.BasePrices(ctx, []string{"svc-kitchen", "svc-ghost"})
		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.Nil(t, prices["svc-ghost"])
	})

	t.Run("empty request", func(t *testing.T) {
		prices, err := catalog.BasePrices(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, prices)
	})
}

func TestLoyaltyRepo_Aggregate(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	loyalty := repo.NewLoyaltyRepo(client)

	testutil.SeedBookingStats(t, client, "cust-gold", 25, 320000)

	t.Run("known customer", func(t *testing.T) {
		agg, err := loyalty.Aggregate(ctx, "cust-gold")
		require.NoError(t, err)
		require.NotNil(t, agg)
		assert.Equal(t, int64(25), agg.CompletedBookings)
		assert.Equal(t, "3200.00", agg.LifetimeSpent.String())
	})

	t.Run("unknown customer yields no history", func(t *testing.T) {
		agg, err := loyalty.Aggregate(ctx, "cust-ghost")
		require.NoError(t, err)
		assert.Nil(t, agg)
	})
}
