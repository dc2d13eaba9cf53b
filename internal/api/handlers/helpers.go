package handlers

import (
	"bookings-report-service/internal/domain"
	"bookings-report-service/internal/ports"
	"bookings-report-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}

// writeServiceError maps domain and port errors to an HTTP status.
// Unexpected errors are logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, op string, err error) {
	switch {
	case errors.Is(err, ports.ErrServiceNotFound), errors.Is(err, ports.ErrDemandMatrixNotFound):
		writeError(w, r, log, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidMatrix),
		errors.Is(err, domain.ErrNoMatchingOD),
		errors.Is(err, domain.ErrStationNotInItinerary),
		errors.Is(err, domain.ErrMalformedItinerary):
		writeError(w, r, log, http.StatusUnprocessableEntity, err.Error())
	default:
		log.WithError(err).Errorf("%s failed", op)
		writeError(w, r, log, http.StatusInternalServerError, "internal server error")
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, log, http.StatusMethodNotAllowed, "method not allowed")
	return false
}
