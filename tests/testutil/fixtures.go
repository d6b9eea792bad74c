package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/models/m_booking_stats"
	"github.com/light-bringer/cleanprice-service/internal/models/m_credit_account"
	"github.com/light-bringer/cleanprice-service/internal/models/m_service"
	"github.com/light-bringer/cleanprice-service/internal/pkg/committer"
)

// SeedService inserts a catalog service directly in the database.
func SeedService(t *testing.T, client *spanner.Client, serviceID, name string, priceCents int64) {
	t.Helper()

	model := m_service.NewModel()
	plan := committer.NewPlan()
	plan.Add(model.InsertMut(&m_service.Data{
		ServiceID:            serviceID,
		Name:                 name,
		BasePriceNumerator:   priceCents,
		BasePriceDenominator: 100,
		Active:               true,
	}))

	err := committer.NewCommitter(client).Apply(context.Background(), plan)
	require.NoError(t, err, "failed to seed service")
}

// SeedBookingStats inserts a loyalty aggregate row.
func SeedBookingStats(t *testing.T, client *spanner.Client, customerID string, bookings, spentCents int64) {
	t.Helper()

	model := m_booking_stats.NewModel()
	plan := committer.NewPlan()
	plan.Add(model.UpsertMut(&m_booking_stats.Data{
		CustomerID:               customerID,
		CompletedBookings:        bookings,
		LifetimeSpentNumerator:   spentCents,
		LifetimeSpentDenominator: 100,
	}))

	err := committer.NewCommitter(client).Apply(context.Background(), plan)
	require.NoError(t, err, "failed to seed booking stats")
}

// SeedCreditAccount inserts an hour-credit account with the given
// balance.
func SeedCreditAccount(t *testing.T, client *spanner.Client, customerID string, totalHours, usedHours int64, expiry time.Time) {
	t.Helper()

	model := m_credit_account.NewModel()
	plan := committer.NewPlan()
	plan.Add(model.InsertMut(&m_credit_account.Data{
		CustomerID: customerID,
		TotalHours: totalHours,
		UsedHours:  usedHours,
		ExpiryDate: expiry,
		Version:    1,
	}))

	err := committer.NewCommitter(client).Apply(context.Background(), plan)
	require.NoError(t, err, "failed to seed credit account")
}
