/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the HTTP boundary. These decouple the engine's domain
  types from the wire contract; money and hour figures travel as decimal
  strings to keep clients away from float rounding.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO:     Response types returned to clients

VALIDATION:
  None here. The wage engine owns all validation and tolerant parsing, so
  request DTOs pass user-typed strings through untouched.

SEE ALSO:
  - handlers.go: Converts between DTOs and domain types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/leave"
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// WAGE CALCULATION
// =============================================================================

// DayInputDTO mirrors one weekday's form row.
type DayInputDTO struct {
	Enabled bool   `json:"enabled"`
	Hours   string `json:"hours,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// WageCalculationRequest is one calculation request. Weekday keys are
// "mon".."sun"; missing days count as disabled.
type WageCalculationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	HourlyRate string `json:"hourly_rate"`

	BreakEnabled bool `json:"break_enabled"`
	BreakMinutes int  `json:"break_minutes"`

	ExcludedDates string `json:"excluded_dates"`

	TimeInputMode string                 `json:"time_input_mode"`
	Days          map[string]DayInputDTO `json:"days"`

	BudgetBase      string `json:"budget_base"`
	BudgetAllowance string `json:"budget_allowance"`
}

// ToInput converts the request to an engine input.
func (r WageCalculationRequest) ToInput() wage.Input {
	days := make(map[wage.Weekday]wage.DayInput, len(wage.Weekdays))
	for _, wd := range wage.Weekdays {
		d := r.Days[string(wd)]
		days[wd] = wage.DayInput{Enabled: d.Enabled, Hours: d.Hours, Start: d.Start, End: d.End}
	}

	return wage.Input{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		HourlyRate:      r.HourlyRate,
		BreakEnabled:    r.BreakEnabled,
		BreakMinutes:    r.BreakMinutes,
		ExcludedDates:   r.ExcludedDates,
		TimeInputMode:   wage.TimeInputMode(r.TimeInputMode),
		Days:            days,
		BudgetBase:      r.BudgetBase,
		BudgetAllowance: r.BudgetAllowance,
	}
}

// WeekDecisionDTO is one week's allowance outcome.
type WeekDecisionDTO struct {
	WeekKey  string `json:"week_key"`
	Eligible bool   `json:"eligible"`
	Amount   string `json:"amount"`
}

// WageResultDTO is the calculation result. When Message is non-empty the
// run failed validation and the numeric fields are zero placeholders.
type WageResultDTO struct {
	BasePay      string `json:"base_pay"`
	AllowancePay string `json:"allowance_pay"`
	Total        string `json:"total"`

	WorkDayCount      int `json:"work_day_count"`
	AllowanceDayCount int `json:"allowance_day_count"`
	ExcludedDayCount  int `json:"excluded_day_count"`

	WeeklyRawHours  string `json:"weekly_raw_hours"`
	WeeklyPaidHours string `json:"weekly_paid_hours"`

	RemainingBudgetBase      string `json:"remaining_budget_base"`
	RemainingBudgetAllowance string `json:"remaining_budget_allowance"`

	Weeks []WeekDecisionDTO `json:"weeks,omitempty"`

	Message string `json:"message"`
}

// FromResult converts an engine result to its wire form.
func FromResult(res wage.Result) WageResultDTO {
	dto := WageResultDTO{
		BasePay:                  res.BasePay.String(),
		AllowancePay:             res.AllowancePay.String(),
		Total:                    res.Total.String(),
		WorkDayCount:             res.WorkDayCount,
		AllowanceDayCount:        res.AllowanceDayCount,
		ExcludedDayCount:         res.ExcludedDayCount,
		WeeklyRawHours:           res.WeeklyRawHours.String(),
		WeeklyPaidHours:          res.WeeklyPaidHours.String(),
		RemainingBudgetBase:      res.RemainingBudgetBase.String(),
		RemainingBudgetAllowance: res.RemainingBudgetAllowance.String(),
		Message:                  res.Message,
	}
	for _, w := range res.Weeks {
		dto.Weeks = append(dto.Weeks, WeekDecisionDTO{
			WeekKey:  w.WeekKey,
			Eligible: w.Eligible,
			Amount:   w.Amount.String(),
		})
	}
	return dto
}

// RunDTO is one history entry.
type RunDTO struct {
	ID           int64  `json:"id"`
	CreatedAt    string `json:"created_at"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	BasePay      string `json:"base_pay"`
	AllowancePay string `json:"allowance_pay"`
	Total        string `json:"total"`
	Message      string `json:"message"`
}

// =============================================================================
// ANNUAL LEAVE
// =============================================================================

// ServiceDTO is the worker's service history.
type ServiceDTO struct {
	FullYears      int    `json:"full_years"`
	AttendanceRate string `json:"attendance_rate"`
	FullMonths     int    `json:"full_months"`
}

// WageBasisDTO is the quoted wage with its daily divisors.
type WageBasisDTO struct {
	Type            string `json:"type"`
	Amount          string `json:"amount"`
	HoursPerDay     string `json:"hours_per_day"`
	MonthlyWorkDays string `json:"monthly_work_days"`
}

// LeavePayoutRequest is one unused-leave payout request.
type LeavePayoutRequest struct {
	ProfileID   string       `json:"profile_id"`
	Service     ServiceDTO   `json:"service"`
	Wage        WageBasisDTO `json:"wage"`
	GrantedDays string       `json:"granted_days"`
	UsedDays    string       `json:"used_days"`
}

// ToInput converts the request to a payout input. Malformed numbers read as
// zero, matching the engine's tolerant posture.
func (r LeavePayoutRequest) ToInput() leave.PayoutInput {
	return leave.PayoutInput{
		ProfileID: r.ProfileID,
		Service: leave.Service{
			FullYears:      r.Service.FullYears,
			AttendanceRate: softDecimal(r.Service.AttendanceRate),
			FullMonths:     r.Service.FullMonths,
		},
		Wage: leave.WageBasis{
			Type:            leave.WageType(r.Wage.Type),
			Amount:          softDecimal(r.Wage.Amount),
			HoursPerDay:     softDecimal(r.Wage.HoursPerDay),
			MonthlyWorkDays: softDecimal(r.Wage.MonthlyWorkDays),
		},
		GrantedDays: softDecimal(r.GrantedDays),
		UsedDays:    softDecimal(r.UsedDays),
	}
}

// LeavePayoutDTO is the payout pipeline result.
type LeavePayoutDTO struct {
	ProfileID   string `json:"profile_id"`
	ProfileName string `json:"profile_name"`

	SuggestedDays  int    `json:"suggested_days"`
	Suggested      bool   `json:"suggested"`
	SuggestionNote string `json:"suggestion_note"`

	GrantedDays string `json:"granted_days"`
	UsedDays    string `json:"used_days"`
	UnusedDays  string `json:"unused_days"`

	DailyWageRaw     string `json:"daily_wage_raw"`
	PayoutRaw        string `json:"payout_raw"`
	DailyWageRounded string `json:"daily_wage_rounded"`
	PayoutRounded    string `json:"payout_rounded"`
}

// FromPayout converts a payout result to its wire form.
func FromPayout(res leave.PayoutResult) LeavePayoutDTO {
	return LeavePayoutDTO{
		ProfileID:        res.Profile.ID,
		ProfileName:      res.Profile.Name,
		SuggestedDays:    res.Suggestion.Days,
		Suggested:        res.Suggestion.Suggested,
		SuggestionNote:   res.Suggestion.Description,
		GrantedDays:      res.GrantedDays.String(),
		UsedDays:         res.UsedDays.String(),
		UnusedDays:       res.UnusedDays.String(),
		DailyWageRaw:     res.DailyWageRaw.String(),
		PayoutRaw:        res.PayoutRaw.String(),
		DailyWageRounded: res.DailyWageRounded.String(),
		PayoutRounded:    res.PayoutRounded.String(),
	}
}

// DurationRecordDTO is one register row.
type DurationRecordDTO struct {
	LeaveType   string `json:"leave_type"`
	DurationRaw string `json:"duration_raw"`
	HoursPerDay string `json:"hours_per_day"`
}

// LeaveSummaryRequest aggregates register rows per leave type.
type LeaveSummaryRequest struct {
	Records []DurationRecordDTO `json:"records"`
}

// TypeSummaryDTO is one leave type's aggregate.
type TypeSummaryDTO struct {
	LeaveType   string `json:"leave_type"`
	Count       int    `json:"count"`
	TotalHours  string `json:"total_hours"`
	Breakdown   string `json:"breakdown"`
	DecimalDays string `json:"decimal_days"`
}

// RuleProfileDTO is one selectable rule profile.
type RuleProfileDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func softDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
