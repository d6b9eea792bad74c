package domain

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

func TestBreakdownRoundTrip(t *testing.T) {
	engine := newTestEngine()
	formatter := NewBreakdownFormatter()

	req := lineReq(18550)
	req.AreaSqM = 73
	req.CleaningType = CleaningDeep
	req.Urgency = UrgencyExpress
	req.ServiceDate = saturday
	req.ServiceTime = "11:30"
	req.IsNewCustomer = true
	agg := &LoyaltyAggregate{CompletedBookings: 12}

	result := engine.Calculate(req, agg)
	breakdown := formatter.Format(result)
	require.NotEmpty(t, breakdown.Lines)

	t.Run("raw components reproduce the final price exactly", func(t *testing.T) {
		assert.True(t, SumComponents(result).Equal(result.FinalPrice))
	})

	t.Run("displayed lines sum within a cent", func(t *testing.T) {
		var sum float64
		for _, line := range breakdown.Lines {
			v, err := strconv.ParseFloat(line.Amount, 64)
			require.NoError(t, err)
			sum += v
		}
		total, err := strconv.ParseFloat(breakdown.Total, 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(sum-total), 0.01)
	})
}

func TestFormatScenarios(t *testing.T) {
	engine := newTestEngine()
	formatter := NewBreakdownFormatter()

	scenarios := engine.Simulate(lineReq(20000), nil)
	lines := formatter.FormatScenarios(scenarios)
	require.Len(t, lines, 3)

	cheapestSeen := 0
	for _, line := range lines {
		if line.Label == "weekly (cheapest)" {
			cheapestSeen++
		}
	}
	assert.Equal(t, 1, cheapestSeen)
}

func TestFormatZeroQuote(t *testing.T) {
	engine := newTestEngine()
	formatter := NewBreakdownFormatter()

	result := engine.Calculate(&PricingRequest{}, nil)
	breakdown := formatter.Format(result)
	assert.Equal(t, "80.00", breakdown.Total)
	assert.True(t, SumComponents(result).Equal(money.FromCents(8000)))
}
