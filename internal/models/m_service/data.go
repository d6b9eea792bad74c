package m_service

import "time"

// Data maps one row of the services table.
type Data struct {
	ServiceID            string    `spanner:"service_id"`
	Name                 string    `spanner:"name"`
	BasePriceNumerator   int64     `spanner:"base_price_numerator"`
	BasePriceDenominator int64     `spanner:"base_price_denominator"`
	Active               bool      `spanner:"active"`
	CreatedAt            time.Time `spanner:"created_at"`
	UpdatedAt            time.Time `spanner:"updated_at"`
}
