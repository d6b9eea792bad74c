package money

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := New(24990, 100)
		require.NoError(t, err)
		assert.Equal(t, "249.90", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := New(100, 0)
		assert.Error(t, err)
	})
}

func TestArithmetic(t *testing.T) {
	a := FromCents(10050) // 100.50
	b := FromCents(4950)  // 49.50

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "150.00", a.Add(b).String())
	})

	t.Run("sub", func(t *testing.T) {
		assert.Equal(t, "51.00", a.Sub(b).String())
	})

	t.Run("mul by rat keeps exact value", func(t *testing.T) {
		// 100.50 * 1.5 = 150.75
		got := a.MulRat(big.NewRat(3, 2))
		assert.Equal(t, "150.75", got.String())
	})

	t.Run("operands are not mutated", func(t *testing.T) {
		_ = a.Add(b)
		assert.Equal(t, "100.50", a.String())
	})
}

func TestComparisons(t *testing.T) {
	low := FromCents(8000)
	high := FromCents(9000)

	assert.True(t, low.LessThan(high))
	assert.True(t, high.GreaterThan(low))
	assert.True(t, low.Equal(FromCents(8000)))
	assert.True(t, high.Equal(low.Max(high)))
	assert.True(t, Zero().IsZero())
	assert.True(t, Zero().Sub(low).IsNegative())
}

func TestRoundCents(t *testing.T) {
	t.Run("rounds half up", func(t *testing.T) {
		// 1/3 of a cent rounds down, 2/3 rounds up
		third, _ := New(1, 300)
		assert.Equal(t, int64(0), third.Cents())

		twoThirds, _ := New(2, 300)
		assert.Equal(t, int64(1), twoThirds.Cents())
	})

	t.Run("exact half rounds away from zero", func(t *testing.T) {
		half, _ := New(1, 200) // 0.005
		assert.Equal(t, int64(1), half.Cents())
	})

	t.Run("round trip through cents", func(t *testing.T) {
		m := FromCents(12345)
		assert.True(t, m.Equal(m.RoundCents()))
	})
}
