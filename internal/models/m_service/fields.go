package m_service

// Field name constants for the services catalog table.
const (
	TableName = "services"

	ServiceID            = "service_id"
	Name                 = "name"
	BasePriceNumerator   = "base_price_numerator"
	BasePriceDenominator = "base_price_denominator"
	Active               = "active"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)
