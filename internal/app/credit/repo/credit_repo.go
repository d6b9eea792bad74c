package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/contracts"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/models/m_credit_account"
	"github.com/light-bringer/cleanprice-service/internal/pkg/committer"
)

// CreditRepo implements CreditStore on Spanner. Every balance change
// runs as a read-modify-write inside one transaction; the domain guard
// runs on the row as read, so concurrent consumes serialize and the
// loser sees the already-debited balance.
type CreditRepo struct {
	client *spanner.Client
	comm   *committer.Committer
	model  *m_credit_account.Model
}

// NewCreditRepo creates a new CreditRepo.
func NewCreditRepo(client *spanner.Client, comm *committer.Committer) contracts.CreditStore {
	return &CreditRepo{
		client: client,
		comm:   comm,
		model:  m_credit_account.NewModel(),
	}
}

// Get returns the customer's account.
func (r *CreditRepo) Get(ctx context.Context, customerID string) (*domain.HourCreditAccount, error) {
	row, err := r.client.Single().ReadRow(ctx, m_credit_account.TableName, spanner.Key{customerID}, m_credit_account.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to read credit account: %w", err)
	}
	return rowToAccount(row)
}

// AddCredit upserts the account inside one transaction: insert on
// first purchase, otherwise credit the balance and push the expiry
// forward.
func (r *CreditRepo) AddCredit(ctx context.Context, customerID string, hours int64, expiry time.Time) (*domain.HourCreditAccount, error) {
	var result *domain.HourCreditAccount

	err := r.comm.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, m_credit_account.TableName, spanner.Key{customerID}, m_credit_account.Columns)
		if err != nil {
			if spanner.ErrCode(err) != codes.NotFound {
				return fmt.Errorf("failed to read credit account: %w", err)
			}
			account, err := domain.NewAccount(customerID, hours, expiry, time.Now().UTC())
			if err != nil {
				return err
			}
			result = account
			return txn.BufferWrite([]*spanner.Mutation{r.model.InsertMut(&m_credit_account.Data{
				CustomerID: account.CustomerID,
				TotalHours: account.TotalHours,
				UsedHours:  account.UsedHours,
				ExpiryDate: account.ExpiryDate,
				Version:    account.Version,
			})})
		}

		account, err := rowToAccount(row)
		if err != nil {
			return err
		}
		if err := account.AddHours(hours, expiry); err != nil {
			return err
		}
		account.Version++
		result = account
		return txn.BufferWrite([]*spanner.Mutation{r.model.UpdateMut(customerID, map[string]interface{}{
			m_credit_account.TotalHours: account.TotalHours,
			m_credit_account.ExpiryDate: account.ExpiryDate,
			m_credit_account.Version:    account.Version,
		})})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ConsumeCredit debits hours if and only if the available balance
// covers them. The check and the write share one transaction, so an
// insufficient balance aborts with the ledger untouched.
func (r *CreditRepo) ConsumeCredit(ctx context.Context, customerID string, hours int64) (*domain.HourCreditAccount, error) {
	var result *domain.HourCreditAccount

	err := r.comm.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, m_credit_account.TableName, spanner.Key{customerID}, m_credit_account.Columns)
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrAccountNotFound
			}
			return fmt.Errorf("failed to read credit account: %w", err)
		}

		account, err := rowToAccount(row)
		if err != nil {
			return err
		}
		if err := account.Consume(hours); err != nil {
			return err
		}
		account.Version++
		result = account
		return txn.BufferWrite([]*spanner.Mutation{r.model.UpdateMut(customerID, map[string]interface{}{
			m_credit_account.UsedHours: account.UsedHours,
			m_credit_account.Version:   account.Version,
		})})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func rowToAccount(row *spanner.Row) (*domain.HourCreditAccount, error) {
	var data m_credit_account.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse credit account row: %w", err)
	}
	return &domain.HourCreditAccount{
		CustomerID: data.CustomerID,
		TotalHours: data.TotalHours,
		UsedHours:  data.UsedHours,
		ExpiryDate: data.ExpiryDate,
		Version:    data.Version,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
