/*
engine.go - The Calculate entry point and validation taxonomy

PURPOSE:
  Wires the pipeline: validate -> resolve pattern -> build ledger -> group
  weeks -> evaluate allowance -> totalize. One call, one Result, no state.

VALIDATION TAXONOMY:
  Three conditions abort a run, each with its own user-facing message in
  Result.Message (never a Go error - the consumer is a form, and a partial
  result must not masquerade as a real one):
    - Range:   missing/unparseable start or end, or start after end
    - Rate:    hourly rate missing or not positive
    - Pattern: no weekday both enabled and carrying nonzero scheduled time

  Everything below that level degrades silently to a neutral value: a bad
  clock string or hour field reads as "not scheduled", a malformed excluded
  date token matches nothing. Best-effort beats hard failure for partially
  filled rows.

CONCURRENCY:
  Calculate is re-entrant. Every intermediate structure is freshly allocated
  per call, so concurrent recalculations need no coordination.
*/
package wage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/calendar"
	"github.com/warp/wage-engine/money"
)

// Validation messages, one per taxonomy entry.
const (
	MsgBadRange   = "Enter a valid start and end date; the start date must not be after the end date."
	MsgBadRate    = "Enter an hourly rate greater than zero."
	MsgNoSchedule = "Enable at least one weekday with scheduled working time."
)

// Calculate runs one complete wage calculation. On validation failure the
// Result carries only Message; every numeric field stays zero.
func Calculate(in Input) Result {
	start, okStart := calendar.Parse(in.StartDate)
	end, okEnd := calendar.Parse(in.EndDate)
	if !okStart || !okEnd || start.After(end) {
		return Result{Message: MsgBadRange}
	}

	rate, okRate := parseRate(in.HourlyRate)
	if !okRate {
		return Result{Message: MsgBadRate}
	}

	pattern := ResolvePattern(in)
	if !pattern.HasScheduledWork() {
		return Result{Message: MsgNoSchedule}
	}

	ledger := BuildLedger(start, end, pattern, splitExcludedDates(in.ExcludedDates))
	groups := GroupByWeek(ledger.Records)
	allowance := EvaluateAllowance(groups, rate)

	totals := ComputeTotals(
		ledger.TotalPaidHours(),
		rate,
		allowance.Total,
		parseBudget(in.BudgetBase),
		parseBudget(in.BudgetAllowance),
	)

	return Result{
		BasePay:      totals.BasePay,
		AllowancePay: totals.AllowancePay,
		Total:        totals.Total,

		WorkDayCount:      ledger.WorkDayCount(),
		AllowanceDayCount: allowance.Days,
		ExcludedDayCount:  ledger.ExcludedDays,

		WeeklyRawHours:  pattern.WeeklyRawHours(),
		WeeklyPaidHours: pattern.WeeklyPaidHours(),

		RemainingBudgetBase:      totals.RemainingBudgetBase,
		RemainingBudgetAllowance: totals.RemainingBudgetAllowance,

		Weeks: allowance.Decisions,
	}
}

func parseRate(s string) (decimal.Decimal, bool) {
	d, ok := money.ParseAmount(s)
	if !ok || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
