package simulate_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

func TestSimulateQuote(t *testing.T) {
	engine := domain.NewPricingEngine(domain.DefaultEngineParams())
	interactor := NewInteractor(nil, nil, engine)

	results, err := interactor.Execute(context.Background(), &Request{
		BasePriceOverride: money.FromCents(20000),
		CleaningType:      "standard",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	byName := make(map[string]domain.Scenario, len(results))
	for _, s := range results {
		byName[s.Name] = s
	}

	assert.Equal(t, "210.00", byName["normal"].Result.FinalPrice.String())
	assert.Equal(t, "273.00", byName["express"].Result.FinalPrice.String())
	assert.Equal(t, "168.00", byName["weekly"].Result.FinalPrice.String())

	assert.True(t, byName["weekly"].Cheapest)
	assert.False(t, byName["normal"].Cheapest)
	assert.False(t, byName["express"].Cheapest)
}
