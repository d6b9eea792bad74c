package m_credit_account

import "time"

// Data maps one row of the hour_credit_accounts table.
type Data struct {
	CustomerID string    `spanner:"customer_id"`
	TotalHours int64     `spanner:"total_hours"`
	UsedHours  int64     `spanner:"used_hours"`
	ExpiryDate time.Time `spanner:"expiry_date"`
	Version    int64     `spanner:"version"`
	CreatedAt  time.Time `spanner:"created_at"`
	UpdatedAt  time.Time `spanner:"updated_at"`
}
