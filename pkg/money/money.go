// Package money centralizes conversion between kobo (minor units, the
// only representation stored in the ledger) and Naira (major units,
// used on the gateway wire and for display). No other package does raw
// *100 arithmetic.
package money

import "github.com/shopspring/decimal"

var minorPerMajor = decimal.NewFromInt(100)

// ToMinorUnits converts a Naira amount to kobo, rounding to the nearest
// whole kobo.
func ToMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(minorPerMajor).Round(0).IntPart()
}

// ToMajorUnits converts kobo to Naira.
func ToMajorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorPerMajor)
}

// DecimalToMajorUnits converts a fractional kobo amount, such as a
// weighted-average price, to Naira.
func DecimalToMajorUnits(minor decimal.Decimal) decimal.Decimal {
	return minor.Div(minorPerMajor)
}
