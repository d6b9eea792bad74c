package m_booking_stats

// Field name constants for the booking_stats projection table. The
// projection is maintained by the booking workflow; the pricing core
// only reads it.
const (
	TableName = "booking_stats"

	CustomerID               = "customer_id"
	CompletedBookings        = "completed_bookings"
	LifetimeSpentNumerator   = "lifetime_spent_numerator"
	LifetimeSpentDenominator = "lifetime_spent_denominator"
	UpdatedAt                = "updated_at"
)
