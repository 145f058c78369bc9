// Package money provides the fixed-scale rounding used for every balance and
// outstanding-principal computation. Keeping all arithmetic at two decimal
// places avoids drift across long sequences of credits and debits.
package money

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept for all monetary values.
const Scale = 2

// Round returns d rounded to two decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// FromFloat converts a float into a rounded monetary decimal.
// Only used at ingestion boundaries; internal math stays on decimals.
func FromFloat(f float64) decimal.Decimal {
	return Round(decimal.NewFromFloat(f))
}
