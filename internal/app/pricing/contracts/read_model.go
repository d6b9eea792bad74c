package contracts

import (
	"context"
	"time"
)

// ServiceDTO is a data transfer object for catalog queries.
type ServiceDTO struct {
	ServiceID string
	Name      string
	BasePrice float64 // Approximate representation for display
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter defines filtering options for listing catalog services.
type ListFilter struct {
	ActiveOnly bool
	PageSize   int64
	Offset     int64
}

// CatalogReadModel defines the interface for catalog queries. Read
// models bypass the domain layer; they serve display, not pricing.
type CatalogReadModel interface {
	// ListServices retrieves catalog services with filtering.
	ListServices(ctx context.Context, filter *ListFilter) ([]*ServiceDTO, error)
}
