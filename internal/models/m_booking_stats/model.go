package m_booking_stats

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the booking_stats projection.
// Used by the booking workflow and by test fixtures; the pricing core
// itself never writes here.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a mutation for writing a customer's aggregate.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			CustomerID,
			CompletedBookings,
			LifetimeSpentNumerator,
			LifetimeSpentDenominator,
			UpdatedAt,
		},
		[]interface{}{
			data.CustomerID,
			data.CompletedBookings,
			data.LifetimeSpentNumerator,
			data.LifetimeSpentDenominator,
			spanner.CommitTimestamp,
		},
	)
}
