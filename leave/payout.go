package leave

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/money"
)

// =============================================================================
// DAILY ORDINARY WAGE
// =============================================================================

// WageType selects how the wage amount is quoted.
type WageType string

const (
	WageHourly  WageType = "hourly"
	WageDaily   WageType = "daily"
	WageMonthly WageType = "monthly"
)

// WageBasis is the worker's wage as quoted, plus the divisors needed to
// reduce it to one day.
type WageBasis struct {
	Type   WageType
	Amount decimal.Decimal

	// HoursPerDay converts an hourly wage to a daily one.
	HoursPerDay decimal.Decimal

	// MonthlyWorkDays converts a monthly wage to a daily one.
	MonthlyWorkDays decimal.Decimal
}

// DailyWage reduces the basis to one day's ordinary wage, un-rounded.
// An unknown wage type, or a monthly basis without work days, yields zero.
func DailyWage(b WageBasis) decimal.Decimal {
	switch b.Type {
	case WageHourly:
		return b.Amount.Mul(b.HoursPerDay)
	case WageDaily:
		return b.Amount
	case WageMonthly:
		if b.MonthlyWorkDays.IsPositive() {
			return b.Amount.Div(b.MonthlyWorkDays)
		}
	}
	return decimal.Zero
}

// =============================================================================
// PAYOUT PIPELINE
// =============================================================================

// PayoutInput is one unused-leave payout request.
type PayoutInput struct {
	ProfileID string
	Service   Service
	Wage      WageBasis

	GrantedDays decimal.Decimal
	UsedDays    decimal.Decimal
}

// PayoutResult is the full pipeline output: the resolved profile, the
// profile's day suggestion, and the payout figures before and after the
// 10-won truncation.
type PayoutResult struct {
	Profile    RuleProfile
	Suggestion Suggestion

	GrantedDays decimal.Decimal
	UsedDays    decimal.Decimal
	UnusedDays  decimal.Decimal

	DailyWageRaw     decimal.Decimal
	PayoutRaw        decimal.Decimal
	DailyWageRounded decimal.Decimal
	PayoutRounded    decimal.Decimal
}

// ComputePayout runs the payout pipeline: resolve the profile, suggest the
// annual day count, floor unused days at zero, price them at the daily
// ordinary wage, and truncate both daily wage and payout independently to
// the 10-won granularity.
func ComputePayout(in PayoutInput) PayoutResult {
	profile := ProfileByID(in.ProfileID)
	suggestion := SuggestAnnualDays(profile.ID, in.Service)

	unused := in.GrantedDays.Sub(in.UsedDays)
	if unused.IsNegative() {
		unused = decimal.Zero
	}

	dailyRaw := DailyWage(in.Wage)
	payoutRaw := unused.Mul(dailyRaw)

	return PayoutResult{
		Profile:    profile,
		Suggestion: suggestion,

		GrantedDays: in.GrantedDays,
		UsedDays:    in.UsedDays,
		UnusedDays:  unused,

		DailyWageRaw:     dailyRaw,
		PayoutRaw:        payoutRaw,
		DailyWageRounded: money.TruncateToTen(dailyRaw),
		PayoutRounded:    money.TruncateToTen(payoutRaw),
	}
}
