package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RULE PROFILES - Statutory and collective-agreement rule sets
// =============================================================================

// RuleProfile identifies one annual-leave rule set. Profiles only differ in
// how SuggestAnnualDays reads the service history; rounding is the shared
// 10-won truncation for all of them.
type RuleProfile struct {
	ID   string
	Name string
}

// Known profile IDs. These are stable identifiers used by API clients.
const (
	ProfileLawBasic      = "law_basic"
	ProfileSchoolCBA     = "gw_school_cba"
	ProfileInstituteCBA  = "gw_institute_cba"
	ProfileWageGuideline = "gw_wage_guideline"
	ProfileCustom        = "custom"
)

var profiles = map[string]RuleProfile{
	ProfileLawBasic:      {ID: ProfileLawBasic, Name: "Statutory baseline"},
	ProfileSchoolCBA:     {ID: ProfileSchoolCBA, Name: "School-site collective agreement"},
	ProfileInstituteCBA:  {ID: ProfileInstituteCBA, Name: "Institute-site collective agreement"},
	ProfileWageGuideline: {ID: ProfileWageGuideline, Name: "Ordinary-wage guideline"},
	ProfileCustom:        {ID: ProfileCustom, Name: "Custom"},
}

// profileOrder fixes listing order for the API.
var profileOrder = []string{
	ProfileLawBasic, ProfileSchoolCBA, ProfileInstituteCBA, ProfileWageGuideline, ProfileCustom,
}

// ProfileByID resolves a profile, falling back to Custom for unknown IDs.
func ProfileByID(id string) RuleProfile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles[ProfileCustom]
}

// Profiles lists every known profile in stable order.
func Profiles() []RuleProfile {
	out := make([]RuleProfile, 0, len(profileOrder))
	for _, id := range profileOrder {
		out = append(out, profiles[id])
	}
	return out
}

// =============================================================================
// ANNUAL-DAY SUGGESTION
// =============================================================================

// Service is the worker's service history as the profiles read it.
type Service struct {
	// FullYears of completed service.
	FullYears int

	// AttendanceRate over the accrual year, in percent.
	AttendanceRate decimal.Decimal

	// FullMonths with perfect attendance (drives sub-1-year accrual).
	FullMonths int
}

// Suggestion is a profile's recommended annual-leave day count. Suggested
// is false for the custom profile, which leaves the count to the operator.
type Suggestion struct {
	Days        int
	Suggested   bool
	Description string
}

var eightyPercent = decimal.NewFromInt(80)

// SuggestAnnualDays computes the recommended day count under the given
// profile.
//
// Shared sub-1-year rule: one day per perfect-attendance month, capped at
// 11. Above one year the profiles diverge:
//   - law_basic: attendance < 80% falls back to perfect months; otherwise
//     15 days plus one per two further service years, capped at +10
//   - school CBA: 26 days at >= 80% attendance, else perfect months
//   - institute CBA: 25 days at >= 80% attendance, else perfect months
//   - wage guideline: flat 26 days
//   - custom: no suggestion
func SuggestAnnualDays(profileID string, svc Service) Suggestion {
	underOneYear := func() Suggestion {
		days := svc.FullMonths
		if days > 11 {
			days = 11
		}
		return Suggestion{
			Days:        days,
			Suggested:   true,
			Description: fmt.Sprintf("under one year of service: %d perfect month(s) -> %d day(s)", svc.FullMonths, days),
		}
	}
	perfectMonths := func() Suggestion {
		return Suggestion{
			Days:        svc.FullMonths,
			Suggested:   true,
			Description: fmt.Sprintf("attendance %s%% below 80: %d perfect month(s) -> %d day(s)", svc.AttendanceRate.String(), svc.FullMonths, svc.FullMonths),
		}
	}

	switch profileID {
	case ProfileLawBasic:
		if svc.FullYears < 1 {
			return underOneYear()
		}
		if svc.AttendanceRate.LessThan(eightyPercent) {
			return perfectMonths()
		}
		extra := (svc.FullYears - 1) / 2
		if extra > 10 {
			extra = 10
		}
		if extra < 0 {
			extra = 0
		}
		days := 15 + extra
		return Suggestion{
			Days:        days,
			Suggested:   true,
			Description: fmt.Sprintf("%d year(s) of service: base 15 + %d -> %d day(s)", svc.FullYears, extra, days),
		}

	case ProfileSchoolCBA:
		if svc.FullYears < 1 {
			return underOneYear()
		}
		if svc.AttendanceRate.LessThan(eightyPercent) {
			return perfectMonths()
		}
		return Suggestion{Days: 26, Suggested: true, Description: "school agreement: attendance >= 80% -> 26 day(s)"}

	case ProfileInstituteCBA:
		if svc.FullYears < 1 {
			return underOneYear()
		}
		if svc.AttendanceRate.LessThan(eightyPercent) {
			return perfectMonths()
		}
		return Suggestion{Days: 25, Suggested: true, Description: "institute agreement: attendance >= 80% -> 25 day(s)"}

	case ProfileWageGuideline:
		if svc.FullYears < 1 {
			return underOneYear()
		}
		return Suggestion{Days: 26, Suggested: true, Description: fmt.Sprintf("guideline: %d year(s) of service -> 26 day(s)", svc.FullYears)}
	}

	return Suggestion{Description: "custom profile: enter the day count directly"}
}
