package utils

import "github.com/shopspring/decimal"

// InternalScale is the fixed decimal scale at which monetary values are
// stored, regardless of a currency's display scale. Keeping headroom above
// the largest display scale (4 vs 3) avoids double rounding between fee
// calculation and persistence.
const InternalScale = 4

// RoundToInternalScale rounds a monetary value half-up to the internal scale.
// shopspring's Round is round-half-away-from-zero, which equals half-up for
// the non-negative values money fields hold.
func RoundToInternalScale(value decimal.Decimal) decimal.Decimal {
	return value.Round(InternalScale)
}

// RoundToScale rounds a monetary value half-up to the given scale. Used at
// the response boundary to express an internally-scaled value at a
// currency's display scale.
func RoundToScale(value decimal.Decimal, scale int) decimal.Decimal {
	return value.Round(int32(scale))
}

// ZeroInternal returns zero at the internal scale.
func ZeroInternal() decimal.Decimal {
	return decimal.Zero.Round(InternalScale)
}

// Scale reports the number of fractional digits of a decimal as it was
// written, trailing zeros included: 100.500 has scale 3 even though its
// value fits in scale 1.
func Scale(value decimal.Decimal) int {
	if value.Exponent() >= 0 {
		return 0
	}
	return int(-value.Exponent())
}
