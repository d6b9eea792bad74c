package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/models/m_booking_stats"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// LoyaltyRepo implements LoyaltyLookup against the booking_stats
// projection.
type LoyaltyRepo struct {
	client *spanner.Client
}

// NewLoyaltyRepo creates a new LoyaltyRepo.
func NewLoyaltyRepo(client *spanner.Client) contracts.LoyaltyLookup {
	return &LoyaltyRepo{client: client}
}

// Aggregate reads the customer's completed-booking aggregate. Unknown
// customers yield (nil, nil): no history, no discount.
func (r *LoyaltyRepo) Aggregate(ctx context.Context, customerID string) (*domain.LoyaltyAggregate, error) {
	if customerID == "" {
		return nil, nil
	}

	row, err := r.client.Single().ReadRow(ctx, m_booking_stats.TableName, spanner.Key{customerID}, []string{
		m_booking_stats.CompletedBookings,
		m_booking_stats.LifetimeSpentNumerator,
		m_booking_stats.LifetimeSpentDenominator,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read booking stats: %w", err)
	}

	var bookings, num, denom int64
	if err := row.Columns(&bookings, &num, &denom); err != nil {
		return nil, fmt.Errorf("failed to parse booking stats: %w", err)
	}

	spent, err := money.New(num, denom)
	if err != nil {
		return nil, fmt.Errorf("invalid lifetime spend for %s: %w", customerID, err)
	}

	return &domain.LoyaltyAggregate{
		CompletedBookings: bookings,
		LifetimeSpent:     spent,
	}, nil
}
