package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Health provides a minimal liveness check endpoint.
func Health(log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, log, http.MethodGet) {
			return
		}

		writeJSON(w, r, log, http.StatusOK, map[string]string{"status": "ok"})
	}
}
