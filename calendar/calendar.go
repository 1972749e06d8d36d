/*
Package calendar provides day-granularity date values and the week-bucket
convention used by the wage engine.

PURPOSE:
  All engine math runs on whole calendar days. This package owns parsing,
  day arithmetic, weekday numbering, and the Monday-anchored week key that
  groups attendance records into weeks.

KEY CONCEPTS:
  - Date: A single calendar day (UTC midnight internally, never exposed)
  - Weekday numbering: Monday=1 .. Sunday=7, NOT Go's Sunday=0 convention
  - Week bucket key: "YYYY-Wmmdd" built from the week's own Monday date

WHY NOT ISO WEEK NUMBERS:
  time.Time.ISOWeek() assigns late-December days to week 1 of the next year
  (and vice versa). The wage rules group strictly Monday-to-Sunday and key
  the group by the Monday's actual calendar date, so a week starting
  2025-12-29 keys as "2025-W1229" even though its Sunday is in 2026.

PARSING CONTRACT:
  Parse and ParseClockToMinutes report failure with a false second return
  instead of an error. Callers treat malformed input as "absent" and degrade
  to a neutral value; nothing in this package panics or allocates errors.

SEE ALSO:
  - wage/ledger.go: Iterates Dates and buckets them by week key
  - wage/weekly.go: Walks buckets forward via NextWeekBucketKey
*/
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - A single calendar day
// =============================================================================

// Date is a day-granularity calendar date. The zero value is not a valid
// date; construct via New or Parse.
type Date struct {
	t time.Time
}

// New builds a Date from year, month, day. Out-of-range components are
// normalized the way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads an ISO "YYYY-MM-DD" string. The second return is false for
// empty or malformed input.
func Parse(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return Date{t: t}, true
}

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// Comparison
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) BeforeOrEqual(o Date) bool { return !d.After(o) }
func (d Date) AfterOrEqual(o Date) bool  { return !d.Before(o) }

// AddDays returns the date n calendar days later (earlier for negative n),
// rolling over months and years.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysBetween returns the whole-day span from a to b (negative if b is
// earlier).
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}

// String formats as ISO "2006-01-02". This is also the exclusion-set
// membership key.
func (d Date) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// WEEKDAY NUMBERING - Monday=1 .. Sunday=7
// =============================================================================

// WeekdayNumber returns the ISO-style weekday index: Monday=1 through
// Sunday=7.
func (d Date) WeekdayNumber() int {
	wd := int(d.t.Weekday()) // Sunday=0 .. Saturday=6
	if wd == 0 {
		return 7
	}
	return wd
}

// IsSunday reports whether the date falls on a Sunday.
func (d Date) IsSunday() bool { return d.WeekdayNumber() == 7 }

// =============================================================================
// WEEK BUCKETS - Monday-anchored grouping keys
// =============================================================================

// WeekMonday returns the Monday of the Monday-to-Sunday week containing d.
func (d Date) WeekMonday() Date {
	return d.AddDays(1 - d.WeekdayNumber())
}

// WeekBucketKey identifies the Monday-to-Sunday week containing d, keyed by
// that week's Monday in the form "YYYY-Wmmdd". Two dates share a key iff
// they share a Monday.
func (d Date) WeekBucketKey() string {
	m := d.WeekMonday()
	return fmt.Sprintf("%04d-W%02d%02d", m.Year(), int(m.Month()), m.Day())
}

// NextWeekBucketKey returns the bucket key for the week 7 days after the
// week identified by key. The Monday is re-derived from the key and shifted,
// so month and year rollovers come out of real calendar arithmetic rather
// than string math. Returns false for a malformed key.
func NextWeekBucketKey(key string) (string, bool) {
	var year, month, day int
	if _, err := fmt.Sscanf(key, "%4d-W%2d%2d", &year, &month, &day); err != nil {
		return "", false
	}
	monday := New(year, time.Month(month), day)
	return monday.AddDays(7).WeekBucketKey(), true
}

// =============================================================================
// CLOCK PARSING
// =============================================================================

// ParseClockToMinutes reads "HH:MM" into minutes since midnight. The second
// return is false for anything malformed or out of range.
func ParseClockToMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}
