package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/dto"
	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
	"warlon-catering-service/internal/services"
)

// SessionKeyHeader carries the caller's session key, set by the session
// middleware before routing.
const SessionKeyHeader = "X-Warlon-Session"

func sessionKey(r *http.Request) string {
	return r.Header.Get(SessionKeyHeader)
}

func orderID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil && id > 0
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object into dst; anything else is a
// 400 written here so callers can just bail.
func decodeJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, dst any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, log, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, log, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps the engine's error taxonomy onto statuses.
// Anything outside the taxonomy is a collaborator failure: logged in
// full, reported as an upstream error.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, r, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrNotAuthenticated):
		writeError(w, r, log, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, r, log, http.StatusNotFound, err.Error())
	default:
		log.Error("operation failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, r, log, http.StatusBadGateway, "catering platform request failed")
	}
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func toEntryResponses(entries []services.ScheduleEntry) []dto.ScheduleEntryResponse {
	out := make([]dto.ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ScheduleEntryResponse{
			Date:     fmtDate(e.Date),
			Day:      e.Day,
			Type:     string(e.MealType),
			GroupID:  e.GroupID,
			Status:   e.Status,
			Editable: e.Editable,
		})
	}
	return out
}

func toBulkResponse(res services.BulkResult) dto.BulkResultResponse {
	out := dto.BulkResultResponse{
		SuccessCount: res.SuccessCount,
		FailedCount:  res.FailedCount,
		Rescheduled:  make([]dto.RescheduledResponse, 0, len(res.Rescheduled)),
		Failed:       make([]dto.FailedResponse, 0, len(res.Failed)),
	}
	for _, m := range res.Rescheduled {
		out.Rescheduled = append(out.Rescheduled, dto.RescheduledResponse{
			GroupID:  m.GroupID,
			Type:     string(m.MealType),
			FromDate: fmtDate(m.From),
			ToDate:   fmtDate(m.To),
		})
	}
	for _, f := range res.Failed {
		out.Failed = append(out.Failed, dto.FailedResponse{
			GroupID: f.GroupID,
			Date:    fmtDate(f.Date),
			Reason:  f.Reason,
		})
	}
	return out
}

func toRestrictionResponses(rs []domain.Restriction) []dto.RestrictionResponse {
	out := make([]dto.RestrictionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.RestrictionResponse{ID: r.ID, Name: r.Name, Group: r.Group})
	}
	return out
}
