package m_service

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the services table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a catalog service.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ServiceID,
			Name,
			BasePriceNumerator,
			BasePriceDenominator,
			Active,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ServiceID,
			data.Name,
			data.BasePriceNumerator,
			data.BasePriceDenominator,
			data.Active,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a mutation for removing a catalog service.
func (m *Model) DeleteMut(serviceID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{serviceID})
}
