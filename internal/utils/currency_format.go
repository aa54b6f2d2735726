package utils

import (
	"github.com/shopspring/decimal"
)

// RupeePrecision is the number of fractional digits tax amounts are kept at (paise).
const RupeePrecision = 2

// FormatAmount renders an amount with exactly two fractional digits.
// Example: 120.5 returns "120.50", 370 returns "370.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(RupeePrecision)
}
