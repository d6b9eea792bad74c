package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
	"github.com/light-bringer/cleanprice-service/internal/models/m_service"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// CatalogRepo implements CatalogLookup for Spanner.
type CatalogRepo struct {
	client *spanner.Client
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(client *spanner.Client) contracts.CatalogLookup {
	return &CatalogRepo{client: client}
}

// BasePrices resolves the given service identifiers against the
// catalog. Unknown or inactive services are left out of the result;
// callers decide how to price around the gap.
func (r *CatalogRepo) BasePrices(ctx context.Context, serviceIDs []string) (map[string]*money.Money, error) {
	prices := make(map[string]*money.Money, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return prices, nil
	}

	keys := make([]spanner.KeySet, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		keys = append(keys, spanner.Key{id})
	}

	iter := r.client.Single().Read(ctx, m_service.TableName, spanner.KeySets(keys...), []string{
		m_service.ServiceID,
		m_service.BasePriceNumerator,
		m_service.BasePriceDenominator,
		m_service.Active,
	})
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog prices: %w", err)
		}

		var serviceID string
		var num, denom int64
		var active bool
		if err := row.Columns(&serviceID, &num, &denom, &active); err != nil {
			return nil, fmt.Errorf("failed to parse catalog row: %w", err)
		}
		if !active {
			continue
		}

		price, err := money.New(num, denom)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog price for %s: %w", serviceID, err)
		}
		prices[serviceID] = price
	}

	return prices, nil
}
