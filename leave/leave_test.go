package leave_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/wage-engine/leave"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(leaveType, raw string) leave.DurationRecord {
	return leave.DurationRecord{LeaveType: leaveType, DurationRaw: raw, HoursPerDay: dec("8")}
}

// =============================================================================
// DURATION PARSING
// =============================================================================

func TestDurationRecord_TotalHours(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1일 5시간", "13"},    // 8 + 5
		{"1일5시간", "13"},     // no space
		{"2.5", "20"},        // bare number = days
		{"3시간 30분", "3.5"},   // hours + minutes
		{"1일", "8"},          // days only
		{"5시간", "5"},         // hours only
		{"30분", "0.5"},       // minutes only
		{"1일 2시간 30분", "10.5"},
		{"", "0"},
		{"garbage", "0"},
	}
	for _, c := range cases {
		got := record("병가", c.raw).TotalHours()
		assert.True(t, got.Equal(dec(c.want)), "TotalHours(%q) = %s, want %s", c.raw, got, c.want)
	}
}

// =============================================================================
// SUMMARIZATION
// =============================================================================

func TestSummarize_GroupsByLeaveType(t *testing.T) {
	records := []leave.DurationRecord{
		record("병가", "1일 5시간"),
		record("연가", "1일"),
		record("병가", "3시간 30분"),
	}

	summaries := leave.Summarize(records)

	require.Len(t, summaries, 2)

	sick := summaries[0]
	assert.Equal(t, "병가", sick.LeaveType, "first-appearance order")
	assert.Equal(t, 2, sick.Count)
	// 13 + 3.5 = 16.5h = 2 days (8h) + 0h + 30m
	assert.True(t, sick.TotalHours.Equal(dec("16.5")))
	assert.Equal(t, 2, sick.Days)
	assert.Equal(t, 0, sick.Hours)
	assert.Equal(t, 30, sick.Minutes)
	assert.Equal(t, "2일 0시간 30분", sick.Breakdown())
	assert.Equal(t, "2일 0.5시간", sick.DecimalDays())

	annual := summaries[1]
	assert.Equal(t, 1, annual.Count)
	assert.True(t, annual.TotalHours.Equal(dec("8")))
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, leave.Summarize(nil))
}

// =============================================================================
// RULE PROFILES
// =============================================================================

func TestProfiles_StableOrderWithCustomLast(t *testing.T) {
	profiles := leave.Profiles()
	require.Len(t, profiles, 5)
	assert.Equal(t, leave.ProfileLawBasic, profiles[0].ID)
	assert.Equal(t, leave.ProfileCustom, profiles[4].ID)
}

func TestProfileByID_UnknownFallsBackToCustom(t *testing.T) {
	assert.Equal(t, leave.ProfileCustom, leave.ProfileByID("does-not-exist").ID)
}

func TestSuggestAnnualDays_LawBasic(t *testing.T) {
	// Under one year: perfect months, capped at 11
	s := leave.SuggestAnnualDays(leave.ProfileLawBasic, leave.Service{FullYears: 0, FullMonths: 7})
	assert.True(t, s.Suggested)
	assert.Equal(t, 7, s.Days)

	s = leave.SuggestAnnualDays(leave.ProfileLawBasic, leave.Service{FullYears: 0, FullMonths: 13})
	assert.Equal(t, 11, s.Days, "sub-1-year accrual caps at 11")

	// Attendance below 80%: perfect months, uncapped
	s = leave.SuggestAnnualDays(leave.ProfileLawBasic, leave.Service{FullYears: 3, AttendanceRate: dec("75"), FullMonths: 9})
	assert.Equal(t, 9, s.Days)

	// Normal accrual: 15 + (years-1)/2, capped at +10
	cases := []struct{ years, want int }{
		{1, 15}, {2, 15}, {3, 16}, {5, 17}, {10, 19}, {21, 25}, {25, 25}, {40, 25},
	}
	for _, c := range cases {
		s = leave.SuggestAnnualDays(leave.ProfileLawBasic, leave.Service{FullYears: c.years, AttendanceRate: dec("95")})
		assert.Equal(t, c.want, s.Days, "years=%d", c.years)
	}
}

func TestSuggestAnnualDays_AgreementProfiles(t *testing.T) {
	svc := leave.Service{FullYears: 2, AttendanceRate: dec("90"), FullMonths: 12}

	assert.Equal(t, 26, leave.SuggestAnnualDays(leave.ProfileSchoolCBA, svc).Days)
	assert.Equal(t, 25, leave.SuggestAnnualDays(leave.ProfileInstituteCBA, svc).Days)
	assert.Equal(t, 26, leave.SuggestAnnualDays(leave.ProfileWageGuideline, svc).Days)

	// The guideline profile ignores attendance entirely
	low := leave.Service{FullYears: 2, AttendanceRate: dec("50")}
	assert.Equal(t, 26, leave.SuggestAnnualDays(leave.ProfileWageGuideline, low).Days)
}

func TestSuggestAnnualDays_CustomHasNoSuggestion(t *testing.T) {
	s := leave.SuggestAnnualDays(leave.ProfileCustom, leave.Service{FullYears: 5})
	assert.False(t, s.Suggested)
}

// =============================================================================
// DAILY WAGE AND PAYOUT
// =============================================================================

func TestDailyWage(t *testing.T) {
	hourly := leave.WageBasis{Type: leave.WageHourly, Amount: dec("10000"), HoursPerDay: dec("8")}
	assert.True(t, leave.DailyWage(hourly).Equal(dec("80000")))

	daily := leave.WageBasis{Type: leave.WageDaily, Amount: dec("90000")}
	assert.True(t, leave.DailyWage(daily).Equal(dec("90000")))

	monthly := leave.WageBasis{Type: leave.WageMonthly, Amount: dec("2000000"), MonthlyWorkDays: dec("20")}
	assert.True(t, leave.DailyWage(monthly).Equal(dec("100000")))

	noDivisor := leave.WageBasis{Type: leave.WageMonthly, Amount: dec("2000000")}
	assert.True(t, leave.DailyWage(noDivisor).IsZero())

	unknown := leave.WageBasis{Type: "weekly", Amount: dec("500000")}
	assert.True(t, leave.DailyWage(unknown).IsZero())
}

func TestComputePayout_Pipeline(t *testing.T) {
	// GIVEN: 15 granted, 4.5 used, monthly wage 2,222,222 over 20 work days
	// daily raw  = 111,111.1  -> 111,110
	// payout raw = 10.5 x 111,111.1 = 1,166,666.55 -> 1,166,660
	res := leave.ComputePayout(leave.PayoutInput{
		ProfileID: leave.ProfileLawBasic,
		Service:   leave.Service{FullYears: 1, AttendanceRate: dec("95")},
		Wage: leave.WageBasis{
			Type:            leave.WageMonthly,
			Amount:          dec("2222222"),
			MonthlyWorkDays: dec("20"),
		},
		GrantedDays: dec("15"),
		UsedDays:    dec("4.5"),
	})

	assert.Equal(t, leave.ProfileLawBasic, res.Profile.ID)
	assert.Equal(t, 15, res.Suggestion.Days)
	assert.True(t, res.UnusedDays.Equal(dec("10.5")))
	assert.True(t, res.DailyWageRaw.Equal(dec("111111.1")))
	assert.True(t, res.DailyWageRounded.Equal(dec("111110")))
	assert.True(t, res.PayoutRounded.Equal(dec("1166660")))
}

func TestComputePayout_UnusedFloorsAtZero(t *testing.T) {
	res := leave.ComputePayout(leave.PayoutInput{
		ProfileID:   leave.ProfileCustom,
		Wage:        leave.WageBasis{Type: leave.WageDaily, Amount: dec("80000")},
		GrantedDays: dec("5"),
		UsedDays:    dec("9"),
	})

	assert.True(t, res.UnusedDays.IsZero(), "overdrawn leave pays nothing, it is not negative pay")
	assert.True(t, res.PayoutRounded.IsZero())
}
