/*
Package wage computes statutory pay for an hourly worker over a date range.

PURPOSE:
  This package is the calculation engine: a weekly work-time pattern plus a
  concrete date range goes in, a day-by-day attendance ledger, week-grouped
  aggregates, a weekly-allowance decision per week, and rounded money totals
  come out. Everything is a pure function over in-memory values; there is no
  I/O, no clock access, and no state shared between invocations.

KEY CONCEPTS IN THIS FILE (types.go):
  - Weekday/WeekdaySlot: The 7 fixed schedule slots of the weekly pattern
  - Pattern: weekday -> slot mapping resolved from user input
  - AttendanceRecord: One non-excluded calendar day inside the range
  - WeekGroup: Records sharing a Monday-anchored week bucket
  - AllowanceDecision: Per-week weekly-allowance outcome
  - Result: The full calculation output, or a validation message

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal for hours and money, never float64
  2. Immutability: records and slots are built once per run, then only read
  3. Soft degradation: malformed per-field input becomes a neutral value;
     only range/rate/pattern problems abort a run, and then via Result.Message
     rather than a Go error (the caller is a form, not a program)

SEE ALSO:
  - pattern.go: Resolves user input into a Pattern
  - ledger.go:  Walks the date range into AttendanceRecords
  - weekly.go:  Groups by week and applies the allowance rule
  - totals.go:  Money rounding and budget remainders
  - engine.go:  The Calculate entry point and validation taxonomy
*/
package wage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/calendar"
)

// =============================================================================
// WEEKDAYS - Fixed identifiers, Monday first
// =============================================================================

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// Weekdays lists the identifiers in pattern order, Monday first. Iteration
// over the pattern always uses this slice so output ordering is stable.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayFromNumber maps the calendar numbering (Monday=1 .. Sunday=7) to an
// identifier.
func WeekdayFromNumber(n int) Weekday {
	return Weekdays[n-1]
}

// =============================================================================
// WEEKDAY SLOT - One day of the weekly pattern
// =============================================================================

// WeekdaySlot is the resolved schedule for one weekday: the scheduled
// duration before break deduction and the paid duration after it.
// PaidHours never exceeds RawHours and never goes below zero.
type WeekdaySlot struct {
	Enabled   bool
	RawHours  decimal.Decimal
	PaidHours decimal.Decimal
}

// Scheduled reports whether this slot contributes planned work: it must be
// enabled and carry a nonzero raw duration.
func (s WeekdaySlot) Scheduled() bool {
	return s.Enabled && s.RawHours.IsPositive()
}

// Pattern maps every weekday to its resolved slot. A Pattern always holds
// all 7 keys.
type Pattern map[Weekday]WeekdaySlot

// WeeklyRawHours sums scheduled hours before break deduction across the 7
// slots. This is a pattern-level figure, independent of any date range.
func (p Pattern) WeeklyRawHours() decimal.Decimal {
	total := decimal.Zero
	for _, wd := range Weekdays {
		total = total.Add(p[wd].RawHours)
	}
	return total
}

// WeeklyPaidHours sums paid hours across the 7 slots.
func (p Pattern) WeeklyPaidHours() decimal.Decimal {
	total := decimal.Zero
	for _, wd := range Weekdays {
		total = total.Add(p[wd].PaidHours)
	}
	return total
}

// HasScheduledWork reports whether any weekday is enabled with nonzero
// scheduled time. A pattern without scheduled work fails validation.
func (p Pattern) HasScheduledWork() bool {
	for _, wd := range Weekdays {
		if p[wd].Scheduled() {
			return true
		}
	}
	return false
}

// =============================================================================
// ATTENDANCE RECORD - One non-excluded day inside the range
// =============================================================================

// AttendanceRecord is one concrete calendar day of the requested range that
// was not excluded. Excluded days never produce a record; they only bump the
// ledger's excluded counter.
type AttendanceRecord struct {
	Date          calendar.Date
	WeekBucketKey string
	IsSunday      bool
	Planned       bool
	PaidHours     decimal.Decimal
}

// =============================================================================
// WEEK GROUP - Records sharing a week bucket
// =============================================================================

// WeekGroup collects the AttendanceRecords of one Monday-anchored week. A
// group may hold fewer than 7 records when days were excluded or the range
// starts or ends mid-week.
type WeekGroup struct {
	Key     string
	Records []AttendanceRecord
}

// WeeklyHours is the sum of paid hours over the group's records.
func (g *WeekGroup) WeeklyHours() decimal.Decimal {
	total := decimal.Zero
	for _, r := range g.Records {
		total = total.Add(r.PaidHours)
	}
	return total
}

// WorkDayCount counts records with positive paid hours.
func (g *WeekGroup) WorkDayCount() int {
	n := 0
	for _, r := range g.Records {
		if r.PaidHours.IsPositive() {
			n++
		}
	}
	return n
}

// HasPaidWork reports whether any record carries positive paid hours. The
// allowance lookahead asks this of the FOLLOWING week's group.
func (g *WeekGroup) HasPaidWork() bool {
	for _, r := range g.Records {
		if r.PaidHours.IsPositive() {
			return true
		}
	}
	return false
}

// ContainsSunday reports whether the group holds a Sunday record. A week
// whose Sunday was excluded (or fell outside the range) has none.
func (g *WeekGroup) ContainsSunday() bool {
	for _, r := range g.Records {
		if r.IsSunday {
			return true
		}
	}
	return false
}

// =============================================================================
// ALLOWANCE DECISION
// =============================================================================

// AllowanceDecision is the weekly-allowance outcome for one week group.
// Amount is positive only when Eligible is true.
type AllowanceDecision struct {
	WeekKey  string
	Eligible bool
	Amount   decimal.Decimal
}

// =============================================================================
// RESULT - The calculation output
// =============================================================================

// Result is the complete output of one calculation. When Message is
// non-empty the run failed validation and every numeric field is zero and
// must not be shown as a real figure.
type Result struct {
	BasePay      decimal.Decimal
	AllowancePay decimal.Decimal
	Total        decimal.Decimal

	WorkDayCount      int
	AllowanceDayCount int
	ExcludedDayCount  int

	// Pattern-level weekly sums over the 7 configured slots, independent of
	// the requested date range.
	WeeklyRawHours  decimal.Decimal
	WeeklyPaidHours decimal.Decimal

	RemainingBudgetBase      decimal.Decimal
	RemainingBudgetAllowance decimal.Decimal

	// Per-week decisions in week-key order, for display. Empty on failure.
	Weeks []AllowanceDecision

	Message string
}
