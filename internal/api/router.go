package api

import (
	"bookings-report-service/internal/api/handlers"
	"bookings-report-service/internal/ports"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.ServiceRepository,
	demand ports.DemandMatrixProvider,
	log logrus.FieldLogger,
	now func() time.Time,
) http.Handler {
	mux := http.NewServeMux()

	reportHandler := &handlers.ReportHandler{Repo: repo, Log: log, Now: now}
	pathHandler := &handlers.PathHandler{Provider: demand, Log: log}

	mux.HandleFunc("/health", handlers.Health(log))
	mux.HandleFunc("/services", reportHandler.ListServices)
	mux.HandleFunc("/reports", reportHandler.Report)
	mux.HandleFunc("/demand-paths", pathHandler.DemandPath)
	mux.HandleFunc("/max-path", pathHandler.MaxPath)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
