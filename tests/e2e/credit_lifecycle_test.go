package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/consume_credit"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/purchase_hours"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/quote_hours"
)

// TestCreditLifecycle walks the full hour-credit flow: buy a package,
// quote against the balance, redeem, and hit the overdraw guard.
func TestCreditLifecycle(t *testing.T) {
	ctx := context.Background()
	suite, _, cleanup := setupTest(t)
	defer cleanup()

	// Buy a 40-hour package at the base rate.
	purchase, err := suite.PurchaseHours.Execute(ctx, &purchase_hours.Request{
		CustomerID: "cust-1",
		Hours:      40,
	})
	require.NoError(t, err)
	assert.Equal(t, "2000.00", purchase.Price.String())
	assert.Equal(t, int64(40), purchase.Account.AvailableHours())

	// A 30-hour booking is fully covered: the service fee is waived.
	quote, err := suite.QuoteHours.Execute(ctx, &quote_hours.Request{
		CustomerID:  "cust-1",
		Hours:       30,
		ApplyCredit: true,
	})
	require.NoError(t, err)
	assert.True(t, quote.Breakdown.CreditApplied)
	require.NotNil(t, quote.Breakdown.DiscountedPrice)
	assert.True(t, quote.Breakdown.DiscountedPrice.LessThan(quote.Breakdown.FinalPrice))

	// Redeem the 30 hours.
	account, err := suite.ConsumeCredit.Execute(ctx, &consume_credit.Request{
		CustomerID: "cust-1",
		Hours:      30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), account.AvailableHours())

	// The remaining 10 hours no longer cover a 30-hour booking.
	quote, err = suite.QuoteHours.Execute(ctx, &quote_hours.Request{
		CustomerID:  "cust-1",
		Hours:       30,
		ApplyCredit: true,
	})
	require.NoError(t, err)
	assert.False(t, quote.Breakdown.CreditApplied)

	// Overdraw is rejected and the balance stays put.
	_, err = suite.ConsumeCredit.Execute(ctx, &consume_credit.Request{
		CustomerID: "cust-1",
		Hours:      11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)

	quote, err = suite.QuoteHours.Execute(ctx, &quote_hours.Request{
		CustomerID:  "cust-1",
		Hours:       10,
		ApplyCredit: true,
	})
	require.NoError(t, err)
	assert.True(t, quote.Breakdown.CreditApplied)
}

// TestCreditExpiry checks that credit stops being redeemable once the
// expiry passes, while the ledger itself is unchanged.
func TestCreditExpiry(t *testing.T) {
	ctx := context.Background()
	suite, _, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.PurchaseHours.Execute(ctx, &purchase_hours.Request{
		CustomerID: "cust-1",
		Hours:      40,
		ExpiryDays: 30,
	})
	require.NoError(t, err)

	suite.Clock.Advance(31 * 24 * time.Hour)

	quote, err := suite.QuoteHours.Execute(ctx, &quote_hours.Request{
		CustomerID:  "cust-1",
		Hours:       10,
		ApplyCredit: true,
	})
	require.NoError(t, err)
	assert.False(t, quote.Breakdown.CreditApplied, "expired credit must not be redeemable")

	// A fresh purchase pushes the expiry forward and reactivates the
	// whole balance.
	topped, err := suite.PurchaseHours.Execute(ctx, &purchase_hours.Request{
		CustomerID: "cust-1",
		Hours:      20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60), topped.Account.AvailableHours())

	quote, err = suite.QuoteHours.Execute(ctx, &quote_hours.Request{
		CustomerID:  "cust-1",
		Hours:       50,
		ApplyCredit: true,
	})
	require.NoError(t, err)
	assert.True(t, quote.Breakdown.CreditApplied)
}
