package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/dto"
	"warlon-catering-service/internal/services"
)

// SessionHandler exposes explicit login for sessions without configured
// credentials (or after a failed auto-login).
type SessionHandler struct {
	Svc *services.Service
	Log *zap.Logger
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, h.Log, &req) {
		return
	}

	if err := h.Svc.Login(r.Context(), sessionKey(r), req.Username, req.Password); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.LoginResponse{
		Message: "successfully logged in as " + req.Username,
	})
}
