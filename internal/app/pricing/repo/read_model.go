package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
	"github.com/light-bringer/cleanprice-service/internal/models/m_service"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
	"github.com/light-bringer/cleanprice-service/internal/pkg/query"
)

// CatalogReadModelImpl implements CatalogReadModel for Spanner.
type CatalogReadModelImpl struct {
	client *spanner.Client
}

// NewCatalogReadModel creates a new CatalogReadModel implementation.
func NewCatalogReadModel(client *spanner.Client) contracts.CatalogReadModel {
	return &CatalogReadModelImpl{client: client}
}

// ListServices retrieves catalog services with filtering.
func (rm *CatalogReadModelImpl) ListServices(ctx context.Context, filter *contracts.ListFilter) ([]*contracts.ServiceDTO, error) {
	builder := query.From(m_service.TableName).
		Select(
			m_service.ServiceID,
			m_service.Name,
			m_service.BasePriceNumerator,
			m_service.BasePriceDenominator,
			m_service.Active,
			m_service.CreatedAt,
			m_service.UpdatedAt,
		).
		OrderBy(m_service.Name, query.Asc)

	if filter.ActiveOnly {
		builder = builder.Where(query.Eq(m_service.Active, true))
	}
	if filter.PageSize > 0 {
		builder = builder.Limit(filter.PageSize)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	iter := rm.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	var services []*contracts.ServiceDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}

		var data m_service.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse service row: %w", err)
		}

		price, err := money.New(data.BasePriceNumerator, data.BasePriceDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %s: %w", data.ServiceID, err)
		}

		services = append(services, &contracts.ServiceDTO{
			ServiceID: data.ServiceID,
			Name:      data.Name,
			BasePrice: price.Float64(),
			Active:    data.Active,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		})
	}

	return services, nil
}
