package wage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/calendar"
)

var minutesPerHour = decimal.NewFromInt(60)

// =============================================================================
// PATTERN RESOLVER - User input -> 7 WeekdaySlots
// =============================================================================

// ResolvePattern converts the per-weekday configuration into the fixed
// 7-slot pattern. Pure function of its input: no field of Input is mutated
// and repeated calls yield identical patterns.
//
// Raw duration per weekday:
//   - ModeHours: the typed decimal hour count (malformed or negative -> 0)
//   - ModeRange: (end - start) / 60 when end is after start, else 0; there
//     is no overnight-shift support, so end <= start means an empty shift,
//     not an error
//
// The break deduction applies uniformly to every ENABLED weekday regardless
// of that day's raw duration, and paid hours floor at zero. A disabled
// weekday is all-zero no matter what its fields say.
func ResolvePattern(in Input) Pattern {
	breakHours := decimal.Zero
	if in.BreakEnabled && in.BreakMinutes > 0 {
		breakHours = decimal.NewFromInt(int64(in.BreakMinutes)).Div(minutesPerHour)
	}

	pattern := make(Pattern, len(Weekdays))
	for _, wd := range Weekdays {
		day := in.Days[wd]
		if !day.Enabled {
			pattern[wd] = WeekdaySlot{}
			continue
		}

		raw := resolveRawHours(in.TimeInputMode, day)
		paid := raw.Sub(breakHours)
		if paid.IsNegative() {
			paid = decimal.Zero
		}

		pattern[wd] = WeekdaySlot{Enabled: true, RawHours: raw, PaidHours: paid}
	}
	return pattern
}

func resolveRawHours(mode TimeInputMode, day DayInput) decimal.Decimal {
	if mode == ModeRange {
		start, okStart := calendar.ParseClockToMinutes(day.Start)
		end, okEnd := calendar.ParseClockToMinutes(day.End)
		if !okStart || !okEnd || end <= start {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(end - start)).Div(minutesPerHour)
	}
	return parseHours(day.Hours)
}
