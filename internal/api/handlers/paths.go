package handlers

import (
	"bookings-report-service/internal/api/dto"
	"bookings-report-service/internal/ports"
	"bookings-report-service/internal/services"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxMatrixBodyBytes = 1 << 20

type PathHandler struct {
	Provider ports.DemandMatrixProvider
	Log      logrus.FieldLogger
}

// DemandPath runs the max path search on the stored demand matrix of a service.
func (h *PathHandler) DemandPath(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.Log, http.MethodGet) {
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("service"))
	if name == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "service is required")
		return
	}

	path, err := services.PlanDemandPath(r.Context(), h.Log, h.Provider, name)
	if err != nil {
		writeServiceError(w, r, h.Log, "plan demand path", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.NewMaxPathResponse(path.ServiceName, path.TotalValue, path.Path))
}

// MaxPath runs the max path search on a matrix posted by the caller.
func (h *PathHandler) MaxPath(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.Log, http.MethodPost) {
		return
	}

	var req dto.MaxPathRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMatrixBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Log, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	value, path, err := services.MaxPath(req.Matrix)
	if err != nil {
		writeServiceError(w, r, h.Log, "max path", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.NewMaxPathResponse("", value, path))
}
