/*
handlers.go - HTTP handlers for the wage and leave engines

PURPOSE:
  Thin JSON adapters around the pure engines. Each handler decodes a DTO,
  calls the engine, and writes the result; the wage handler additionally
  appends the run to the history store.

ENDPOINTS:
  Wage:
    POST /api/wage/calculations   Run a calculation and record it
    GET  /api/wage/calculations   List this session's runs

  Leave:
    POST /api/leave/payout        Unused-leave payout pipeline
    POST /api/leave/summaries     Aggregate register duration rows
    GET  /api/leave/profiles      List rule profiles

  Misc:
    GET  /api/healthz

ERROR HANDLING:
  Engine validation failures are NOT HTTP errors: a calculation with a bad
  range returns 200 with a populated "message" field, because the contract
  is a form round-trip, not an RPC. HTTP errors are reserved for transport
  problems (malformed JSON -> 400, store failure -> 500).

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/warp/wage-engine/leave"
	"github.com/warp/wage-engine/store/sqlite"
	"github.com/warp/wage-engine/wage"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	Store  *sqlite.Store
	Logger zerolog.Logger
}

// NewHandler creates a handler backed by the given run-history store.
func NewHandler(store *sqlite.Store, logger zerolog.Logger) *Handler {
	return &Handler{Store: store, Logger: logger}
}

// =============================================================================
// WAGE ENDPOINTS
// =============================================================================

// CalculateWage runs one wage calculation and records it in the history.
func (h *Handler) CalculateWage(w http.ResponseWriter, r *http.Request) {
	var req WageCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := wage.Calculate(req.ToInput())
	dto := FromResult(result)

	_, err := h.Store.AppendRun(r.Context(), sqlite.Run{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BasePay:      dto.BasePay,
		AllowancePay: dto.AllowancePay,
		Total:        dto.Total,
		Message:      dto.Message,
	}, req, dto)
	if err != nil {
		// History is best-effort; the calculation result still stands.
		h.Logger.Warn().Err(err).Msg("failed to record calculation run")
	}

	writeJSON(w, http.StatusOK, dto)
}

// ListWageRuns returns the most recent calculation runs, newest first.
func (h *Handler) ListWageRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context(), 50)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list calculation runs")
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	dtos := make([]RunDTO, 0, len(runs))
	for _, run := range runs {
		dtos = append(dtos, RunDTO{
			ID:           run.ID,
			CreatedAt:    run.CreatedAt.Format(time.RFC3339),
			StartDate:    run.StartDate,
			EndDate:      run.EndDate,
			BasePay:      run.BasePay,
			AllowancePay: run.AllowancePay,
			Total:        run.Total,
			Message:      run.Message,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"runs": dtos})
}

// =============================================================================
// LEAVE ENDPOINTS
// =============================================================================

// LeavePayout runs the unused-leave payout pipeline.
func (h *Handler) LeavePayout(w http.ResponseWriter, r *http.Request) {
	var req LeavePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	writeJSON(w, http.StatusOK, FromPayout(leave.ComputePayout(req.ToInput())))
}

// LeaveSummaries aggregates register duration rows per leave type.
func (h *Handler) LeaveSummaries(w http.ResponseWriter, r *http.Request) {
	var req LeaveSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	records := make([]leave.DurationRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		records = append(records, leave.DurationRecord{
			LeaveType:   rec.LeaveType,
			DurationRaw: rec.DurationRaw,
			HoursPerDay: softDecimal(rec.HoursPerDay),
		})
	}

	summaries := leave.Summarize(records)
	dtos := make([]TypeSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, TypeSummaryDTO{
			LeaveType:   s.LeaveType,
			Count:       s.Count,
			TotalHours:  s.TotalHours.String(),
			Breakdown:   s.Breakdown(),
			DecimalDays: s.DecimalDays(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"summaries": dtos})
}

// ListLeaveProfiles lists the selectable rule profiles.
func (h *Handler) ListLeaveProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := leave.Profiles()
	dtos := make([]RuleProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, RuleProfileDTO{ID: p.ID, Name: p.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": dtos})
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
