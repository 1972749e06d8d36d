package wage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/money"
)

// =============================================================================
// TOTALIZER - Rounded money totals and budget remainders
// =============================================================================

// Totals carries the rounded money figures of one run.
type Totals struct {
	BasePay      decimal.Decimal
	AllowancePay decimal.Decimal
	Total        decimal.Decimal

	RemainingBudgetBase      decimal.Decimal
	RemainingBudgetAllowance decimal.Decimal
}

// ComputeTotals rounds base and allowance pay independently down to the
// 10-unit currency granularity, sums them, and computes the remainder
// against each supplied budget ceiling. Remainders go negative on overrun;
// that signals the overrun, it is not an error.
func ComputeTotals(paidHours, hourlyRate, allowanceTotal, budgetBase, budgetAllowance decimal.Decimal) Totals {
	basePay := money.TruncateToTen(paidHours.Mul(hourlyRate))
	allowancePay := money.TruncateToTen(allowanceTotal)

	return Totals{
		BasePay:                  basePay,
		AllowancePay:             allowancePay,
		Total:                    basePay.Add(allowancePay),
		RemainingBudgetBase:      budgetBase.Sub(basePay),
		RemainingBudgetAllowance: budgetAllowance.Sub(allowancePay),
	}
}
