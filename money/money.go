/*
Package money holds the currency rules shared by the wage and leave engines.

The jurisdiction truncates payouts at a 10-won granularity: 11,111 pays as
11,110. Truncation applies independently to each payout figure, never to a
sum of already-truncated figures.
*/
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// TruncateToTen floors an amount to the nearest lower multiple of 10.
// Idempotent: truncating a truncated amount changes nothing.
func TruncateToTen(d decimal.Decimal) decimal.Decimal {
	return d.Div(ten).Floor().Mul(ten)
}

// ParseAmount reads a user-typed decimal. The second return is false for
// empty or malformed input; callers decide whether that means "zero" or a
// validation failure.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
