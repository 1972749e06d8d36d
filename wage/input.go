package wage

import (
	"strings"

	"github.com/warp/wage-engine/money"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT - One calculation request
// =============================================================================

// TimeInputMode selects which per-weekday fields are authoritative.
type TimeInputMode string

const (
	// ModeHours: each weekday carries a direct decimal hour count.
	ModeHours TimeInputMode = "hours"

	// ModeRange: each weekday carries "HH:MM" start and end clock times.
	ModeRange TimeInputMode = "range"
)

// DayInput is the raw per-weekday configuration as typed into the form.
// Hours is read in ModeHours, Start/End in ModeRange; the other fields are
// ignored. Malformed values degrade to "not scheduled" rather than failing
// the run.
type DayInput struct {
	Enabled bool
	Hours   string
	Start   string
	End     string
}

// Input is one calculation request. All user-typed values arrive as strings
// so the engine owns the tolerant parsing; see the taxonomy in engine.go for
// which fields can fail a run and which degrade silently.
type Input struct {
	StartDate string
	EndDate   string

	HourlyRate string

	BreakEnabled bool
	BreakMinutes int

	// ExcludedDates is a raw whitespace- or comma-separated list of
	// "YYYY-MM-DD" tokens.
	ExcludedDates string

	TimeInputMode TimeInputMode
	Days          map[Weekday]DayInput

	BudgetBase      string
	BudgetAllowance string
}

// =============================================================================
// TOLERANT FIELD PARSING
// =============================================================================

// parseHours reads a user-typed hour count, degrading to zero on malformed
// or negative input.
func parseHours(s string) decimal.Decimal {
	d, ok := money.ParseAmount(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseBudget reads a budget ceiling, defaulting to zero when absent or
// malformed.
func parseBudget(s string) decimal.Decimal {
	d, ok := money.ParseAmount(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// splitExcludedDates tokenizes the raw excluded-dates field on whitespace
// and commas into a set of distinct, trimmed, non-empty tokens. Tokens are
// kept verbatim: a malformed token simply never matches a real date's
// "YYYY-MM-DD" form, so it degrades to a no-op.
func splitExcludedDates(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		set[f] = struct{}{}
	}
	return set
}
