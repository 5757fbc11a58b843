package domain

import (
	"math"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// Prices arrive as floats from the store; every derived price goes through Money
// so that percent math never accumulates float error.
type Money struct {
	rat *big.Rat
}

// NewMoneyFromFloat creates Money from a float price.
// NaN, infinities and negative values become zero.
func NewMoneyFromFloat(amount float64) *Money {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return &Money{rat: new(big.Rat)}
	}
	rat := new(big.Rat)
	rat.SetFloat64(amount)
	return &Money{rat: rat}
}

// NewMoneyFromCents creates Money from an integer amount of cents.
func NewMoneyFromCents(cents int64) *Money {
	return &Money{rat: big.NewRat(cents, 100)}
}

// PercentOff returns a new Money reduced by percent (0 to 100).
// Percent values outside the range are clamped.
func (m *Money) PercentOff(percent int64) *Money {
	percent = clampInt(percent, 0, 100)
	factor := big.NewRat(100-percent, 100)
	return &Money{rat: new(big.Rat).Mul(m.rat, factor)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// RoundToCents rounds half away from zero to two decimals.
func (m *Money) RoundToCents() *Money {
	scaled := new(big.Rat).Mul(m.rat, big.NewRat(100, 1))
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	// |rem|*2 >= den rounds away from zero
	if new(big.Int).Mul(new(big.Int).Abs(rem), big.NewInt(2)).Cmp(den) >= 0 {
		if num.Sign() < 0 {
			quo.Sub(quo, big.NewInt(1))
		} else {
			quo.Add(quo, big.NewInt(1))
		}
	}
	return &Money{rat: new(big.Rat).SetFrac(quo, big.NewInt(100))}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

func clampInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
