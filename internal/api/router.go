package api

import (
	"net/http"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/handlers"
	"warlon-catering-service/internal/services"
)

// NewRouter wires one route per engine operation and returns an
// http.Handler. This is the API composition root; handlers only see the
// service and their logger.
func NewRouter(svc *services.Service, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	sessionH := &handlers.SessionHandler{Svc: svc, Log: log}
	orderH := &handlers.OrderHandler{Svc: svc, Log: log}
	reschedH := &handlers.RescheduleHandler{Svc: svc, Log: log}
	restrictH := &handlers.RestrictionHandler{Svc: svc, Log: log}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /api/session/login", sessionH.Login)

	mux.HandleFunc("GET /api/orders", orderH.List)
	mux.HandleFunc("GET /api/orders/{id}", orderH.Detail)
	mux.HandleFunc("GET /api/orders/{id}/schedule", orderH.Schedule)
	mux.HandleFunc("GET /api/orders/{id}/deliveries", orderH.Deliveries)
	mux.HandleFunc("GET /api/orders/{id}/summary", orderH.Summary)
	mux.HandleFunc("GET /api/orders/{id}/addresses", orderH.Addresses)

	mux.HandleFunc("POST /api/orders/{id}/reschedule", reschedH.Single)
	mux.HandleFunc("POST /api/orders/{id}/bulk-reschedule", reschedH.Bulk)
	mux.HandleFunc("POST /api/orders/{id}/hold", reschedH.Hold)
	mux.HandleFunc("POST /api/orders/{id}/skip-day", reschedH.SkipDay)
	mux.HandleFunc("POST /api/orders/{id}/change-address", reschedH.ChangeAddress)

	mux.HandleFunc("GET /api/restrictions/available", restrictH.Available)
	mux.HandleFunc("GET /api/restrictions", restrictH.Current)
	mux.HandleFunc("PUT /api/restrictions", restrictH.Update)

	return loggingMiddleware(sessionMiddleware(mux), log)
}
