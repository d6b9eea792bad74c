package quote_hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/clock"
)

type fakeStore struct {
	accounts map[string]*domain.HourCreditAccount
}

func (s *fakeStore) Get(_ context.Context, customerID string) (*domain.HourCreditAccount, error) {
	account, ok := s.accounts[customerID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *fakeStore) AddCredit(_ context.Context, customerID string, hours int64, expiry time.Time) (*domain.HourCreditAccount, error) {
	account, ok := s.accounts[customerID]
	if !ok {
		account = &domain.HourCreditAccount{CustomerID: customerID, Version: 1, ExpiryDate: expiry}
		s.accounts[customerID] = account
	}
	if err := account.AddHours(hours, expiry); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *fakeStore) ConsumeCredit(_ context.Context, customerID string, hours int64) (*domain.HourCreditAccount, error) {
	account, ok := s.accounts[customerID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if err := account.Consume(hours); err != nil {
		return nil, err
	}
	account.Version++
	return account, nil
}

func TestQuoteHours(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	pricer := domain.NewHourPricer(domain.DefaultHourPricerParams())

	store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{
		"cust-1": {
			CustomerID: "cust-1",
			TotalHours: 50,
			UsedHours:  0,
			ExpiryDate: now.AddDate(1, 0, 0),
			Version:    1,
		},
		"cust-expired": {
			CustomerID: "cust-expired",
			TotalHours: 50,
			ExpiryDate: now.AddDate(0, 0, -1),
			Version:    1,
		},
	}}

	interactor := NewInteractor(store, pricer, clk)

	t.Run("covered by credit waives fees", func(t *testing.T) {
		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID:  "cust-1",
			Hours:       10,
			ApplyCredit: true,
		})
		require.NoError(t, err)
		assert.True(t, result.Breakdown.CreditApplied)
		// 10h at 50.00 = 500.00; +40% +20% +10% +30.00 = 954.00;
		// waiving the 200.00 service fee leaves 754.00.
		assert.Equal(t, "954.00", result.Breakdown.FinalPrice.String())
		assert.Equal(t, "754.00", result.Breakdown.DiscountedPrice.String())
	})

	t.Run("expired credit quotes without redemption", func(t *testing.T) {
		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID:  "cust-expired",
			Hours:       10,
			ApplyCredit: true,
		})
		require.NoError(t, err)
		assert.False(t, result.Breakdown.CreditApplied)
		assert.Nil(t, result.Breakdown.DiscountedPrice)
	})

	t.Run("unknown customer quotes at full price", func(t *testing.T) {
		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID:  "cust-missing",
			Hours:       10,
			ApplyCredit: true,
		})
		require.NoError(t, err)
		assert.False(t, result.Breakdown.CreditApplied)
	})

	t.Run("suggests next package size up", func(t *testing.T) {
		result, err := interactor.Execute(context.Background(), &Request{Hours: 45})
		require.NoError(t, err)
		assert.Equal(t, int64(60), result.SuggestedPackage)
	})

	t.Run("invalid hours rejected", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{Hours: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidHours)
	})
}
