// Package money provides exact decimal arithmetic for prices.
//
// Amounts are stored as rational numbers (big.Rat) so the pricing
// pipeline keeps full precision across every multiplier step; rounding
// to cents happens once, at the very end of a calculation.
package money

import (
	"fmt"
	"math/big"
)

// Money is an immutable monetary amount backed by a big.Rat.
type Money struct {
	rat *big.Rat
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// New creates a Money from numerator and denominator.
// Example: New(24990, 100) represents 249.90.
func New(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromCents creates a Money from an integer number of cents.
func FromCents(cents int64) *Money {
	return &Money{rat: big.NewRat(cents, 100)}
}

// FromRat creates a Money from a big.Rat. A nil rat yields zero.
func FromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Sub returns m - other.
func (m *Money) Sub(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MulRat returns m scaled by the given rational factor.
func (m *Money) MulRat(factor *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, factor)}
}

// MulInt returns m scaled by an integer factor.
func (m *Money) MulInt(factor int64) *Money {
	return m.MulRat(big.NewRat(factor, 1))
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan reports whether m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan reports whether m > other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equal reports whether the two amounts are numerically equal.
func (m *Money) Equal(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Max returns the larger of m and other.
func (m *Money) Max(other *Money) *Money {
	if m.rat.Cmp(other.rat) >= 0 {
		return m.Copy()
	}
	return other.Copy()
}

// RoundCents rounds the amount to two decimal places, half away from
// zero, and returns the result as a new Money.
func (m *Money) RoundCents() *Money {
	return FromCents(m.Cents())
}

// Cents returns the amount rounded to the nearest cent, half away from
// zero.
func (m *Money) Cents() int64 {
	scaled := new(big.Rat).Mul(m.rat, big.NewRat(100, 1))
	num := scaled.Num()
	denom := scaled.Denom()

	quo, rem := new(big.Int).QuoRem(num, denom, new(big.Int))
	if rem.Sign() != 0 {
		doubled := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
		if doubled.Cmp(denom) >= 0 {
			if num.Sign() < 0 {
				quo.Sub(quo, big.NewInt(1))
			} else {
				quo.Add(quo, big.NewInt(1))
			}
		}
	}
	return quo.Int64()
}

// Float64 returns an approximate float64 value (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the amount with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy of the amount.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// Numerator returns the numerator of the normalized amount.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the normalized amount.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}
