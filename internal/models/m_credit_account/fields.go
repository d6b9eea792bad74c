package m_credit_account

// Field name constants for the hour_credit_accounts table.
const (
	TableName = "hour_credit_accounts"

	CustomerID = "customer_id"
	TotalHours = "total_hours"
	UsedHours  = "used_hours"
	ExpiryDate = "expiry_date"
	Version    = "version"
	CreatedAt  = "created_at"
	UpdatedAt  = "updated_at"
)

// Columns lists every column, in read order.
var Columns = []string{
	CustomerID,
	TotalHours,
	UsedHours,
	ExpiryDate,
	Version,
	CreatedAt,
	UpdatedAt,
}
