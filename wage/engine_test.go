package wage_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// SCENARIO HELPERS
// =============================================================================

// fiveDayWeekInput: Mon-Fri 8h/day, no break, rate 10,000, five full weeks
// (Mon 2024-01-01 .. Sun 2024-02-04).
func fiveDayWeekInput() wage.Input {
	in := hoursInput(map[wage.Weekday]string{
		wage.Monday: "8", wage.Tuesday: "8", wage.Wednesday: "8", wage.Thursday: "8", wage.Friday: "8",
	})
	in.StartDate = "2024-01-01"
	in.EndDate = "2024-02-04"
	in.HourlyRate = "10000"
	return in
}

func mustBeMultipleOfTen(t *testing.T, name string, d decimal.Decimal) {
	t.Helper()
	if d.IsNegative() {
		t.Errorf("%s must be non-negative, got %s", name, d)
	}
	if !d.Mod(decimal.NewFromInt(10)).IsZero() {
		t.Errorf("%s must be a multiple of 10, got %s", name, d)
	}
}

// =============================================================================
// FULL-PIPELINE SCENARIOS
// =============================================================================

func TestCalculate_FiveFullWeeks(t *testing.T) {
	// GIVEN: Mon-Fri 8h, rate 10,000, five full weeks, no exclusions
	// THEN: weeks 1-4 earn the allowance (week 5 has no following week),
	//       one allowance day each at 40/5*10000 = 80,000
	res := wage.Calculate(fiveDayWeekInput())

	if res.Message != "" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if !res.BasePay.Equal(dec("2000000")) {
		t.Errorf("base pay: expected 2000000, got %s", res.BasePay)
	}
	if !res.AllowancePay.Equal(dec("320000")) {
		t.Errorf("allowance pay: expected 320000, got %s", res.AllowancePay)
	}
	if !res.Total.Equal(dec("2320000")) {
		t.Errorf("total: expected 2320000, got %s", res.Total)
	}
	if res.WorkDayCount != 25 {
		t.Errorf("work days: expected 25, got %d", res.WorkDayCount)
	}
	if res.AllowanceDayCount != 4 {
		t.Errorf("allowance days: expected 4, got %d", res.AllowanceDayCount)
	}
	if res.ExcludedDayCount != 0 {
		t.Errorf("excluded days: expected 0, got %d", res.ExcludedDayCount)
	}
	if !res.WeeklyRawHours.Equal(dec("40")) || !res.WeeklyPaidHours.Equal(dec("40")) {
		t.Errorf("weekly pattern sums: expected 40/40, got %s/%s", res.WeeklyRawHours, res.WeeklyPaidHours)
	}
	if len(res.Weeks) != 5 {
		t.Fatalf("expected 5 week decisions, got %d", len(res.Weeks))
	}
	last := res.Weeks[len(res.Weeks)-1]
	if last.Eligible {
		t.Error("trailing week must never be eligible")
	}
}

func TestCalculate_TrailingWeekNeverEligible(t *testing.T) {
	// A single full week with nothing after it fails the lookahead even at
	// 40 paid hours.
	in := fiveDayWeekInput()
	in.EndDate = "2024-01-07"

	res := wage.Calculate(in)

	if res.AllowanceDayCount != 0 {
		t.Errorf("expected 0 allowance days, got %d", res.AllowanceDayCount)
	}
	if !res.AllowancePay.IsZero() {
		t.Errorf("expected zero allowance pay, got %s", res.AllowancePay)
	}
	if !res.BasePay.Equal(dec("400000")) {
		t.Errorf("base pay: expected 400000, got %s", res.BasePay)
	}
}

func TestCalculate_ExcludedSundayDisqualifiesItsWeek(t *testing.T) {
	// GIVEN: week 2's Sunday (2024-01-14) is excluded
	// THEN: week 2 loses its allowance even though its 40 hours stand;
	//       the other qualifying weeks are untouched
	in := fiveDayWeekInput()
	in.ExcludedDates = "2024-01-14"

	res := wage.Calculate(in)

	if res.ExcludedDayCount != 1 {
		t.Errorf("expected 1 excluded day, got %d", res.ExcludedDayCount)
	}
	if res.AllowanceDayCount != 3 {
		t.Errorf("expected 3 allowance days, got %d", res.AllowanceDayCount)
	}
	for _, w := range res.Weeks {
		if w.WeekKey == "2024-W0108" && w.Eligible {
			t.Error("the week with the excluded Sunday must not be eligible")
		}
	}
}

func TestCalculate_LookaheadReadsNextWeeksPlannedWork(t *testing.T) {
	// Week 1's eligibility depends on week 2 showing planned paid work, not
	// on week 2 itself qualifying: with week 2's Sunday excluded, week 2 is
	// disqualified but week 1 still passes the lookahead.
	in := fiveDayWeekInput()
	in.ExcludedDates = "2024-01-14"

	res := wage.Calculate(in)

	var week1 *wage.AllowanceDecision
	for i := range res.Weeks {
		if res.Weeks[i].WeekKey == "2024-W0101" {
			week1 = &res.Weeks[i]
		}
	}
	if week1 == nil {
		t.Fatal("week 1 decision missing")
	}
	if !week1.Eligible {
		t.Error("week 1 must stay eligible: its lookahead sees week 2's planned hours")
	}
	if !week1.Amount.Equal(dec("80000")) {
		t.Errorf("week 1 allowance: expected 80000, got %s", week1.Amount)
	}
}

func TestCalculate_FullWeekExclusionRemovesWeekAndBreaksLookahead(t *testing.T) {
	// GIVEN: every day of week 2 (2024-01-08 .. 2024-01-14) excluded
	// THEN: week 2 produces no group at all, and week 1's lookahead finds
	//       nothing, so BOTH weeks lose the allowance
	in := fiveDayWeekInput()
	in.ExcludedDates = "2024-01-08 2024-01-09 2024-01-10 2024-01-11 2024-01-12 2024-01-13 2024-01-14"

	res := wage.Calculate(in)

	if res.ExcludedDayCount != 7 {
		t.Errorf("expected 7 excluded days, got %d", res.ExcludedDayCount)
	}
	if res.AllowanceDayCount != 2 {
		t.Errorf("expected 2 allowance days (weeks 3 and 4), got %d", res.AllowanceDayCount)
	}
	for _, w := range res.Weeks {
		if w.WeekKey == "2024-W0108" {
			t.Error("a fully excluded week must not appear in the decisions")
		}
		if w.WeekKey == "2024-W0101" && w.Eligible {
			t.Error("week 1 must fail the lookahead when week 2 is fully excluded")
		}
	}
}

func TestCalculate_FourteenHourWeekNeverEligible(t *testing.T) {
	// GIVEN: the weekly schedule totals 14 hours, one under the floor
	in := hoursInput(map[wage.Weekday]string{wage.Monday: "7", wage.Tuesday: "7"})
	in.StartDate = "2024-01-01"
	in.EndDate = "2024-01-14"
	in.HourlyRate = "10000"

	res := wage.Calculate(in)

	if res.AllowanceDayCount != 0 || !res.AllowancePay.IsZero() {
		t.Errorf("14h week must never qualify: days=%d pay=%s", res.AllowanceDayCount, res.AllowancePay)
	}
	if !res.BasePay.Equal(dec("280000")) {
		t.Errorf("base pay: expected 280000, got %s", res.BasePay)
	}
}

// =============================================================================
// ROUNDING AND BUDGETS
// =============================================================================

func TestCalculate_PayoutsTruncateToTenIndependently(t *testing.T) {
	// GIVEN: 8.5h Mon-Fri at 9,999 over two full weeks
	// base raw  = 85 x 9999   = 849,915   -> 849,910
	// week 1 allowance raw = 8.5 x 9999 = 84,991.5 -> 84,990
	in := hoursInput(map[wage.Weekday]string{
		wage.Monday: "8.5", wage.Tuesday: "8.5", wage.Wednesday: "8.5", wage.Thursday: "8.5", wage.Friday: "8.5",
	})
	in.StartDate = "2024-01-01"
	in.EndDate = "2024-01-14"
	in.HourlyRate = "9999"

	res := wage.Calculate(in)

	if !res.BasePay.Equal(dec("849910")) {
		t.Errorf("base pay: expected 849910, got %s", res.BasePay)
	}
	if !res.AllowancePay.Equal(dec("84990")) {
		t.Errorf("allowance pay: expected 84990, got %s", res.AllowancePay)
	}
	mustBeMultipleOfTen(t, "base pay", res.BasePay)
	mustBeMultipleOfTen(t, "allowance pay", res.AllowancePay)
}

func TestCalculate_BudgetRemainders(t *testing.T) {
	in := fiveDayWeekInput()
	in.BudgetBase = "2000000"
	in.BudgetAllowance = "300000"

	res := wage.Calculate(in)

	if !res.RemainingBudgetBase.IsZero() {
		t.Errorf("base remainder: expected 0, got %s", res.RemainingBudgetBase)
	}
	// Overrun goes negative; that's a signal, not a failure.
	if !res.RemainingBudgetAllowance.Equal(dec("-20000")) {
		t.Errorf("allowance remainder: expected -20000, got %s", res.RemainingBudgetAllowance)
	}
	if res.Message != "" {
		t.Errorf("budget overrun must not produce a message, got %q", res.Message)
	}
}

func TestCalculate_MalformedBudgetsDefaultToZero(t *testing.T) {
	in := fiveDayWeekInput()
	in.BudgetBase = "lots"

	res := wage.Calculate(in)

	if !res.RemainingBudgetBase.Equal(res.BasePay.Neg()) {
		t.Errorf("absent budget reads as zero; expected %s, got %s", res.BasePay.Neg(), res.RemainingBudgetBase)
	}
}

// =============================================================================
// VALIDATION TAXONOMY
// =============================================================================

func TestCalculate_RangeErrors(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"missing start", "", "2024-01-07"},
		{"missing end", "2024-01-01", ""},
		{"malformed start", "01/01/2024", "2024-01-07"},
		{"start after end", "2024-01-08", "2024-01-07"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := fiveDayWeekInput()
			in.StartDate, in.EndDate = c.start, c.end

			res := wage.Calculate(in)

			if res.Message != wage.MsgBadRange {
				t.Errorf("expected range message, got %q", res.Message)
			}
			if !res.BasePay.IsZero() || !res.Total.IsZero() || res.WorkDayCount != 0 || len(res.Weeks) != 0 {
				t.Error("failed run must leave all numeric fields zero")
			}
		})
	}
}

func TestCalculate_RateErrors(t *testing.T) {
	for _, rate := range []string{"", "0", "-500", "free"} {
		in := fiveDayWeekInput()
		in.HourlyRate = rate

		res := wage.Calculate(in)

		if res.Message != wage.MsgBadRate {
			t.Errorf("rate %q: expected rate message, got %q", rate, res.Message)
		}
	}
}

func TestCalculate_PatternError(t *testing.T) {
	in := hoursInput(map[wage.Weekday]string{wage.Monday: "0"})
	in.StartDate = "2024-01-01"
	in.EndDate = "2024-01-07"
	in.HourlyRate = "10000"

	res := wage.Calculate(in)

	if res.Message != wage.MsgNoSchedule {
		t.Errorf("expected schedule message, got %q", res.Message)
	}
}

// =============================================================================
// EXCLUDED-DATE TOKENIZING
// =============================================================================

func TestCalculate_ExcludedDatesTokenizing(t *testing.T) {
	// Mixed separators, duplicate and junk tokens: three distinct real
	// dates end up excluded.
	in := fiveDayWeekInput()
	in.ExcludedDates = "2024-01-02, 2024-01-03\n2024-01-02\t2024-01-04 not-a-date"

	res := wage.Calculate(in)

	if res.ExcludedDayCount != 3 {
		t.Errorf("expected 3 excluded days, got %d", res.ExcludedDayCount)
	}
}
