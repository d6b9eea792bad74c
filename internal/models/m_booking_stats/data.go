package m_booking_stats

import "time"

// Data maps one row of the booking_stats projection.
type Data struct {
	CustomerID               string    `spanner:"customer_id"`
	CompletedBookings        int64     `spanner:"completed_bookings"`
	LifetimeSpentNumerator   int64     `spanner:"lifetime_spent_numerator"`
	LifetimeSpentDenominator int64     `spanner:"lifetime_spent_denominator"`
	UpdatedAt                time.Time `spanner:"updated_at"`
}
