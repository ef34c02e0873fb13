package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"warlon-catering-service/internal/adapters/warlon"
	"warlon-catering-service/internal/api"
	"warlon-catering-service/internal/config"
	"warlon-catering-service/internal/logging"
	"warlon-catering-service/internal/ports"
	"warlon-catering-service/internal/services"
	"warlon-catering-service/internal/session"
)

// main is the application composition root.
// It wires the Warlon adapter behind the catering port, builds the
// session store and engine, and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zaplog, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	factory := session.Factory(func() ports.CateringClient {
		return warlon.NewClient(cfg.BaseURL, cfg.HTTPTimeout)
	})
	creds := session.Credentials{Username: cfg.Username, Password: cfg.Password}
	sessions := session.NewStore(factory, creds, zaplog)

	svc := services.New(sessions, zaplog)
	router := api.NewRouter(svc, zaplog)

	// Write timeout leaves room for a long bulk reschedule: every record
	// is one upstream call issued sequentially.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	zaplog.Info("server listening", zap.String("addr", srv.Addr))
	return srv.ListenAndServe()
}
