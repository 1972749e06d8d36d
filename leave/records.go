/*
Package leave computes annual-leave entitlements and unused-leave payouts.

PURPOSE:
  Companion domain to the wage engine. Three concerns:
    - Duration records: free-form attendance-register durations ("1일 5시간",
      "2.5", "30분") parsed and aggregated per leave type
    - Rule profiles: statutory and collective-agreement rule sets that
      suggest an annual-leave day count from service history
    - Payout: unused days x daily ordinary wage, truncated to the shared
      10-won granularity

DURATION TEXT FORMAT:
  Register exports mix three unit markers: 일 (days), 시간 (hours), 분
  (minutes), in that order, any subset present. A bare number reads as days.
  One "day" converts to the worker's contracted hours-per-day, so "1일 5시간"
  at 8 hours/day totals 13 hours. Malformed fragments degrade to zero, never
  to an error; register rows are frequently messy.

SEE ALSO:
  - profiles.go: Rule profiles and day-count suggestion
  - payout.go:   Daily wage and the payout pipeline
*/
package leave

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Duration unit markers as they appear in register exports.
const (
	markerDay    = "일"
	markerHour   = "시간"
	markerMinute = "분"
)

var sixty = decimal.NewFromInt(60)

// =============================================================================
// DURATION RECORD - One register row
// =============================================================================

// DurationRecord is one attendance-register row: a leave type, the raw
// duration text, and the contracted hours that make up one day for this
// worker.
type DurationRecord struct {
	LeaveType   string
	DurationRaw string
	HoursPerDay decimal.Decimal
}

// duration is the parsed day/hour/minute breakdown of one raw value.
type duration struct {
	Days    decimal.Decimal
	Hours   decimal.Decimal
	Minutes decimal.Decimal
}

// parseDuration splits the raw text on the unit markers. A bare numeric
// value reads as days; any fragment that fails to parse contributes zero.
func (r DurationRecord) parseDuration() duration {
	d := duration{Days: decimal.Zero, Hours: decimal.Zero, Minutes: decimal.Zero}

	txt := strings.TrimSpace(r.DurationRaw)
	if txt == "" {
		return d
	}

	rest := txt
	if before, after, found := strings.Cut(rest, markerDay); found {
		d.Days = softDecimal(before)
		rest = after
	}
	if before, after, found := strings.Cut(rest, markerHour); found {
		d.Hours = softDecimal(before)
		rest = after
	}
	if before, _, found := strings.Cut(rest, markerMinute); found {
		d.Minutes = softDecimal(before)
	}

	// No marker matched anything: treat the whole value as a day count
	// ("2.5" -> 2.5 days).
	if d.Days.IsZero() && d.Hours.IsZero() && d.Minutes.IsZero() {
		d.Days = softDecimal(txt)
	}

	return d
}

// TotalHours converts the record to decimal hours, with one day equal to
// the record's contracted hours-per-day.
func (r DurationRecord) TotalHours() decimal.Decimal {
	d := r.parseDuration()
	total := d.Days.Mul(r.HoursPerDay)
	total = total.Add(d.Hours)
	total = total.Add(d.Minutes.Div(sixty))
	return total
}

func softDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// SUMMARY - Per-leave-type aggregation
// =============================================================================

// TypeSummary aggregates all records of one leave type.
type TypeSummary struct {
	LeaveType string
	Count     int

	// TotalHours is the decimal-hour sum, rounded to one decimal place for
	// display parity with the register.
	TotalHours decimal.Decimal

	// Day/hour/minute breakdown of the total, using the hours-per-day of
	// the type's first record as the day divisor.
	Days    int
	Hours   int
	Minutes int
}

// Breakdown renders the day/hour/minute form, e.g. "2일 3시간 30분".
func (s TypeSummary) Breakdown() string {
	return fmt.Sprintf("%d%s %d%s %d%s", s.Days, markerDay, s.Hours, markerHour, s.Minutes, markerMinute)
}

// DecimalDays renders the day-plus-decimal-hours form, e.g. "2일 3.5시간".
func (s TypeSummary) DecimalDays() string {
	remain := decimal.NewFromInt(int64(s.Hours)).
		Add(decimal.NewFromInt(int64(s.Minutes)).Div(sixty)).
		Round(1)
	return fmt.Sprintf("%d%s %s%s", s.Days, markerDay, remain.String(), markerHour)
}

// Summarize groups records by leave type, in first-appearance order, and
// totals each group's hours. An empty input yields an empty slice.
func Summarize(records []DurationRecord) []TypeSummary {
	if len(records) == 0 {
		return nil
	}

	order := make([]string, 0)
	grouped := make(map[string][]DurationRecord)
	for _, r := range records {
		if _, seen := grouped[r.LeaveType]; !seen {
			order = append(order, r.LeaveType)
		}
		grouped[r.LeaveType] = append(grouped[r.LeaveType], r)
	}

	summaries := make([]TypeSummary, 0, len(order))
	for _, lt := range order {
		recs := grouped[lt]

		total := decimal.Zero
		for _, r := range recs {
			total = total.Add(r.TotalHours())
		}

		// Break the total back into days/hours/minutes against the first
		// record's contracted day length.
		hpd := recs[0].HoursPerDay
		days := decimal.Zero
		remain := total
		if hpd.IsPositive() {
			days = total.Div(hpd).Floor()
			remain = total.Sub(days.Mul(hpd))
		}
		hours := remain.Floor()
		minutes := remain.Sub(hours).Mul(sixty).Round(0)

		summaries = append(summaries, TypeSummary{
			LeaveType:  lt,
			Count:      len(recs),
			TotalHours: total.Round(1),
			Days:       int(days.IntPart()),
			Hours:      int(hours.IntPart()),
			Minutes:    int(minutes.IntPart()),
		})
	}

	return summaries
}
