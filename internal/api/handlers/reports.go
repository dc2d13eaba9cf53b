package handlers

import (
	"bookings-report-service/internal/api/dto"
	"bookings-report-service/internal/ports"
	"bookings-report-service/internal/services"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ReportHandler exposes read-only service and sales report endpoints.
type ReportHandler struct {
	Repo ports.ServiceRepository
	Log  logrus.FieldLogger
	Now  func() time.Time
}

func (h *ReportHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.Log, http.MethodGet) {
		return
	}

	names, err := h.Repo.ListServiceNames(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, "list services", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.ListServicesResponse{Services: names})
}

// Report returns the sales report of the service named by the "service" query parameter.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.Log, http.MethodGet) {
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("service"))
	if name == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "service is required")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	report, err := services.GenerateSalesReport(r.Context(), h.Log, h.Repo, name, now())
	if err != nil {
		writeServiceError(w, r, h.Log, "generate sales report", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.NewSalesReportResponse(report))
}
