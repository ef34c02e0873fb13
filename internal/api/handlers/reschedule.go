package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/dto"
	"warlon-catering-service/internal/services"
)

// RescheduleHandler exposes the four scheduling operations. Bulk
// operations always answer 200 with per-record outcomes in the body;
// only validation, authentication and read failures surface as non-200.
type RescheduleHandler struct {
	Svc *services.Service
	Log *zap.Logger
}

func (h *RescheduleHandler) Single(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.RescheduleRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	moved, err := h.Svc.RescheduleDelivery(r.Context(), sessionKey(r), id,
		req.GroupID, req.NewDate, req.AddressID, req.MealType)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.RescheduledResponse{
		GroupID:  moved.GroupID,
		Type:     string(moved.MealType),
		FromDate: fmtDate(moved.From),
		ToDate:   fmtDate(moved.To),
	})
}

func (h *RescheduleHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.BulkRescheduleRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	res, err := h.Svc.BulkReschedule(r.Context(), sessionKey(r), id,
		req.StartDate, req.EndDate, req.TargetStartDate, req.MealTypes)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, toBulkResponse(*res))
}

func (h *RescheduleHandler) Hold(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.HoldRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	res, err := h.Svc.HoldDeliveries(r.Context(), sessionKey(r), id,
		req.HoldStart, req.HoldEnd, req.MealTypes)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.HoldResponse{
		ResumeDate:         fmtDate(res.ResumeDate),
		BulkResultResponse: toBulkResponse(res.BulkResult),
	})
}

func (h *RescheduleHandler) SkipDay(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.SkipDayRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	res, err := h.Svc.SkipDay(r.Context(), sessionKey(r), id, req.SkipDate, req.MealTypes)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.SkipDayResponse{
		Success:            res.SuccessCount > 0,
		Message:            res.Message,
		BulkResultResponse: toBulkResponse(res.BulkResult),
	})
}

func (h *RescheduleHandler) ChangeAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.ChangeAddressRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	res, err := h.Svc.ChangeAddress(r.Context(), sessionKey(r), id,
		req.NewAddressID, req.Date, req.StartDate, req.EndDate, req.MealTypes)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	out := dto.ChangeAddressResponse{
		Success:      res.SuccessCount > 0,
		Message:      fmt.Sprintf("changed address for %d deliveries", res.SuccessCount),
		SuccessCount: res.SuccessCount,
		FailedCount:  res.FailedCount,
		Changed:      make([]dto.ChangedAddressResponse, 0, len(res.Changed)),
		Failed:       make([]dto.FailedResponse, 0, len(res.Failed)),
	}
	for _, c := range res.Changed {
		out.Changed = append(out.Changed, dto.ChangedAddressResponse{
			GroupID:      c.GroupID,
			Date:         fmtDate(c.Date),
			Type:         string(c.MealType),
			NewAddressID: c.AddressID,
		})
	}
	for _, f := range res.Failed {
		out.Failed = append(out.Failed, dto.FailedResponse{
			GroupID: f.GroupID,
			Date:    fmtDate(f.Date),
			Reason:  f.Reason,
		})
	}
	writeJSON(w, r, h.Log, http.StatusOK, out)
}
