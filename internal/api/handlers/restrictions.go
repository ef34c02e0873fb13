package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/dto"
	"warlon-catering-service/internal/services"
)

// RestrictionHandler passes dietary-restriction reads and updates
// through to the platform.
type RestrictionHandler struct {
	Svc *services.Service
	Log *zap.Logger
}

func (h *RestrictionHandler) Available(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Svc.AvailableRestrictions(r.Context(), sessionKey(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, r, h.Log, http.StatusOK, dto.ListRestrictionsResponse{
		Restrictions: toRestrictionResponses(rs),
	})
}

func (h *RestrictionHandler) Current(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Svc.UserRestrictions(r.Context(), sessionKey(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, r, h.Log, http.StatusOK, dto.ListRestrictionsResponse{
		Restrictions: toRestrictionResponses(rs),
	})
}

func (h *RestrictionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRestrictionsRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	res, err := h.Svc.UpdateRestrictions(r.Context(), sessionKey(r), req.RestrictionIDs)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.UpdateRestrictionsResponse{
		Success:      res.Success,
		Message:      res.Message,
		Restrictions: toRestrictionResponses(res.Restrictions),
	})
}
