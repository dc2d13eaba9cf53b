package services

import (
	"bookings-report-service/internal/domain"
	"bookings-report-service/internal/platform/obs"
	"bookings-report-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// GenerateSalesReport loads a service from the repository and builds its report.
func GenerateSalesReport(
	ctx context.Context,
	log logrus.FieldLogger,
	repo ports.ServiceRepository,
	serviceName string,
	now time.Time,
) (_ *domain.SalesReport, err error) {
	defer obs.Time(ctx, log, "report.Generate")(&err)

	name := strings.TrimSpace(serviceName)
	if name == "" {
		return nil, errors.New("generate sales report: service name must be non-empty")
	}

	svc, err := repo.GetService(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("generate sales report: get service %q: %w", name, err)
	}

	report, err := BuildSalesReport(svc, now)
	if err != nil {
		return nil, fmt.Errorf("generate sales report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"service": name,
		"legs":    len(report.Legs),
		"ods":     len(report.ODs),
	}).Debug("sales report built")

	return report, nil
}

// PlanDemandPath finds the revenue-maximizing path through the demand matrix
// estimated for a service.
func PlanDemandPath(
	ctx context.Context,
	log logrus.FieldLogger,
	provider ports.DemandMatrixProvider,
	serviceName string,
) (_ *domain.DemandPath, err error) {
	defer obs.Time(ctx, log, "demand.PlanPath")(&err)

	name := strings.TrimSpace(serviceName)
	if name == "" {
		return nil, errors.New("plan demand path: service name must be non-empty")
	}

	matrix, err := provider.GetDemandMatrix(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("plan demand path: get matrix for %q: %w", name, err)
	}

	value, path, err := MaxPath(matrix)
	if err != nil {
		return nil, fmt.Errorf("plan demand path: service %q: %w", name, err)
	}

	return &domain.DemandPath{
		ServiceName: name,
		TotalValue:  value,
		Path:        path,
	}, nil
}
