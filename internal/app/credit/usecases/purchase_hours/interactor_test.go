package purchase_hours

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
		created, err := domain.NewAccount(customerID, hours, expiry, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		s.accounts[customerID] = created
		return created, nil
	}
	if err := account.AddHours(hours, expiry); err != nil {
		return nil, err
	}
	account.Version++
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

func TestPurchaseHours(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	pricer := domain.NewHourPricer(domain.DefaultHourPricerParams())

	t.Run("first purchase creates the account", func(t *testing.T) {
		store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{}}
		interactor := NewInteractor(store, pricer, clk, 365)

		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID: "cust-1",
			Hours:      40,
		})
		require.NoError(t, err)

		assert.Equal(t, "2000.00", result.Price.String())
		assert.Equal(t, int64(40), result.Account.AvailableHours())
		assert.Equal(t, now.AddDate(0, 0, 365), result.Account.ExpiryDate)
	})

	t.Run("bulk package priced at the lower rate", func(t *testing.T) {
		store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{}}
		interactor := NewInteractor(store, pricer, clk, 365)

		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID: "cust-1",
			Hours:      60,
		})
		require.NoError(t, err)
		assert.Equal(t, "2700.00", result.Price.String())
	})

	t.Run("repeat purchase tops up and extends expiry", func(t *testing.T) {
		store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{}}
		interactor := NewInteractor(store, pricer, clk, 365)

		_, err := interactor.Execute(context.Background(), &Request{CustomerID: "cust-1", Hours: 40})
		require.NoError(t, err)

		clk.Advance(30 * 24 * time.Hour)
		result, err := interactor.Execute(context.Background(), &Request{CustomerID: "cust-1", Hours: 40})
		require.NoError(t, err)

		assert.Equal(t, int64(80), result.Account.AvailableHours())
		assert.Equal(t, clk.Now().AddDate(0, 0, 365), result.Account.ExpiryDate)
	})

	t.Run("explicit expiry override", func(t *testing.T) {
		store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{}}
		interactor := NewInteractor(store, pricer, clk, 365)

		result, err := interactor.Execute(context.Background(), &Request{
			CustomerID: "cust-1",
			Hours:      40,
			ExpiryDays: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, clk.Now().AddDate(0, 0, 30), result.Account.ExpiryDate)
	})

	t.Run("invalid hours rejected before any write", func(t *testing.T) {
		store := &fakeStore{accounts: map[string]*domain.HourCreditAccount{}}
		interactor := NewInteractor(store, pricer, clk, 365)

		_, err := interactor.Execute(context.Background(), &Request{CustomerID: "cust-1", Hours: -5})
		assert.ErrorIs(t, err, domain.ErrInvalidHours)
		assert.Empty(t, store.accounts)
	})
}
