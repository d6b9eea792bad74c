package list_services

import (
	"context"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	ActiveOnly bool
	PageSize   int64
	Offset     int64
}

// Query handles the list services query use case.
type Query struct {
	readModel contracts.CatalogReadModel
}

// NewQuery creates a new list services query.
func NewQuery(readModel contracts.CatalogReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves catalog services for display.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ServiceDTO, error) {
	return q.readModel.ListServices(ctx, &contracts.ListFilter{
		ActiveOnly: req.ActiveOnly,
		PageSize:   req.PageSize,
		Offset:     req.Offset,
	})
}
