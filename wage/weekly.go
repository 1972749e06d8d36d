/*
weekly.go - Week grouping and the weekly-allowance rule

PURPOSE:
  Buckets the attendance ledger into Monday-anchored weeks and decides, per
  week, whether the statutory weekly attendance allowance is owed.

THE RULE:
  A week earns the allowance only when ALL of these hold:
    1. Paid hours in the week total at least 15
    2. The FOLLOWING week's ledger shows planned paid work (the worker stays
       on into the next week)
    3. The week's own Sunday sits inside the requested range and was not
       excluded (an excluded Sunday leaves no record, silently disqualifying
       the week - a multi-day holiday block is meant to do exactly that)
    4. The week has at least one day with positive paid hours

  An eligible week pays one day at the week's average daily rate:
  (weekly hours / work-day count) x hourly rate, credited as ONE allowance
  day regardless of the week's length.

LOOKAHEAD CAVEAT:
  Condition 2 inspects the next week's PLANNED paid hours as they appear in
  the ledger. It does not ask whether those days ultimately survive later
  edits to the exclusion set; that forward-looking reading is the contracted
  behavior and is pinned by a named test.
*/
package wage

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/calendar"
)

// minAllowanceWeeklyHours is the statutory floor: below 15 paid hours a week
// never qualifies.
var minAllowanceWeeklyHours = decimal.NewFromInt(15)

// =============================================================================
// WEEK GROUPING
// =============================================================================

// GroupByWeek buckets ledger records by their Monday-anchored week key.
// Grouping is exact string match on the key; record order within a group
// follows ledger (date) order.
func GroupByWeek(records []AttendanceRecord) map[string]*WeekGroup {
	groups := make(map[string]*WeekGroup)
	for _, r := range records {
		g, ok := groups[r.WeekBucketKey]
		if !ok {
			g = &WeekGroup{Key: r.WeekBucketKey}
			groups[r.WeekBucketKey] = g
		}
		g.Records = append(g.Records, r)
	}
	return groups
}

// sortedWeekKeys returns the group keys in ascending order. The "YYYY-Wmmdd"
// form sorts chronologically as a plain string.
func sortedWeekKeys(groups map[string]*WeekGroup) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// =============================================================================
// ALLOWANCE EVALUATION
// =============================================================================

// AllowanceOutcome aggregates the per-week decisions of one run.
type AllowanceOutcome struct {
	Decisions []AllowanceDecision

	// Total is the un-rounded sum of all eligible weeks' amounts. Rounding
	// to the 10-unit granularity happens once, in the totalizer.
	Total decimal.Decimal

	// Days counts eligible weeks: one allowance day per qualifying week.
	Days int
}

// EvaluateAllowance applies the weekly-allowance rule to every week group
// and returns the decisions in week order.
func EvaluateAllowance(groups map[string]*WeekGroup, hourlyRate decimal.Decimal) AllowanceOutcome {
	outcome := AllowanceOutcome{Total: decimal.Zero}

	for _, key := range sortedWeekKeys(groups) {
		g := groups[key]
		decision := AllowanceDecision{WeekKey: key, Amount: decimal.Zero}

		if eligible(g, groups) {
			workDays := g.WorkDayCount()
			avgDaily := g.WeeklyHours().Div(decimal.NewFromInt(int64(workDays)))
			decision.Eligible = true
			decision.Amount = avgDaily.Mul(hourlyRate)
			outcome.Total = outcome.Total.Add(decision.Amount)
			outcome.Days++
		}

		outcome.Decisions = append(outcome.Decisions, decision)
	}

	return outcome
}

func eligible(g *WeekGroup, groups map[string]*WeekGroup) bool {
	if g.WorkDayCount() == 0 {
		return false
	}
	if g.WeeklyHours().LessThan(minAllowanceWeeklyHours) {
		return false
	}
	if !g.ContainsSunday() {
		return false
	}
	return hasNextWeekPlannedWork(g.Key, groups)
}

// hasNextWeekPlannedWork looks up the group one week forward. A range that
// ends before that week has no group there, which reads as "no planned
// work": the trailing week of any range never qualifies.
func hasNextWeekPlannedWork(key string, groups map[string]*WeekGroup) bool {
	nextKey, ok := calendar.NextWeekBucketKey(key)
	if !ok {
		return false
	}
	next, ok := groups[nextKey]
	if !ok {
		return false
	}
	return next.HasPaidWork()
}
