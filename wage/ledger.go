package wage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/calendar"
)

// =============================================================================
// LEDGER - Day-by-day attendance over the requested range
// =============================================================================

// Ledger is the ordered attendance sequence for one calculation: exactly one
// record per non-excluded day of the range, plus the count of days the
// exclusion set removed. It is the single source of truth for the weekly
// aggregation; excluded days appear nowhere downstream.
type Ledger struct {
	Records      []AttendanceRecord
	ExcludedDays int
}

// BuildLedger walks every calendar day from start to end inclusive, in date
// order. A day whose "YYYY-MM-DD" form is in the excluded set is skipped
// entirely and only counted; every other day becomes one AttendanceRecord
// carrying its weekday slot's paid hours.
//
// The caller guarantees start <= end (engine.go validates the range first).
func BuildLedger(start, end calendar.Date, pattern Pattern, excluded map[string]struct{}) Ledger {
	var ledger Ledger

	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if _, skip := excluded[d.String()]; skip {
			ledger.ExcludedDays++
			continue
		}

		slot := pattern[WeekdayFromNumber(d.WeekdayNumber())]
		planned := slot.Scheduled()

		paid := decimal.Zero
		if planned {
			paid = slot.PaidHours
		}

		ledger.Records = append(ledger.Records, AttendanceRecord{
			Date:          d,
			WeekBucketKey: d.WeekBucketKey(),
			IsSunday:      d.IsSunday(),
			Planned:       planned,
			PaidHours:     paid,
		})
	}

	return ledger
}

// TotalPaidHours sums paid hours over the whole ledger. Base pay is this
// figure times the hourly rate.
func (l Ledger) TotalPaidHours() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.Records {
		total = total.Add(r.PaidHours)
	}
	return total
}

// WorkDayCount counts ledger days with positive paid hours.
func (l Ledger) WorkDayCount() int {
	n := 0
	for _, r := range l.Records {
		if r.PaidHours.IsPositive() {
			n++
		}
	}
	return n
}
