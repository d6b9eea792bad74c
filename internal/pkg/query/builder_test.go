package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("services").
		Select("service_id", "name", "active").
		Build()

	assert.Equal(t, "SELECT service_id, name, active FROM services", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("services").Build()

	assert.Equal(t, "SELECT * FROM services", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("services").
		Select("service_id", "name").
		Where(Eq("active", true)).
		Build()

	assert.Equal(t, "SELECT service_id, name FROM services WHERE active = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("hour_credit_accounts").
		Select("customer_id", "total_hours").
		Where(Eq("version", int64(1))).
		Where(Eq("used_hours", int64(0))).
		Build()

	assert.Equal(t,
		"SELECT customer_id, total_hours FROM hour_credit_accounts WHERE version = @p0 AND used_hours = @p1",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(1),
		"p1": int64(0),
	}, stmt.Params)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("services").
		Select("service_id").
		Where(IsNotNull("updated_at")).
		Build()

	assert.Equal(t, "SELECT service_id FROM services WHERE updated_at IS NOT NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByAndPagination(t *testing.T) {
	stmt := From("services").
		Select("service_id", "name").
		Where(Eq("active", true)).
		OrderBy("name", Asc).
		Limit(50).
		Offset(100).
		Build()

	assert.Equal(t,
		"SELECT service_id, name FROM services WHERE active = @p0 ORDER BY name ASC LIMIT @limit OFFSET @offset",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     true,
		"limit":  int64(50),
		"offset": int64(100),
	}, stmt.Params)
}

func TestBuilder_OrderByDescending(t *testing.T) {
	stmt := From("booking_stats").
		Select("customer_id").
		OrderBy("completed_bookings", Desc).
		Build()

	assert.Equal(t, "SELECT customer_id FROM booking_stats ORDER BY completed_bookings DESC", stmt.SQL)
}

func TestBuilder_CountDropsPagination(t *testing.T) {
	base := From("services").
		Select("service_id", "name").
		Where(Eq("active", true)).
		OrderBy("name", Asc).
		Limit(10).
		Offset(20)

	stmt := base.Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM services WHERE active = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": true}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("services").Select("service_id")

	withFilter := base.Where(Eq("active", true))
	require.NotSame(t, base, withFilter)

	// The base builder must be unaffected by the derived one.
	assert.Equal(t, "SELECT service_id FROM services", base.Build().SQL)
	assert.Equal(t, "SELECT service_id FROM services WHERE active = @p0", withFilter.Build().SQL)
}
