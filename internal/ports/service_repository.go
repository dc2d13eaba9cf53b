package ports

import (
	"bookings-report-service/internal/domain"
	"context"
	"errors"
)

var ErrServiceNotFound = errors.New("service not found")

// Port: a boundary for retrieving services with their itinerary and manifest.
type ServiceRepository interface {
	// Return the names of all stored services.
	ListServiceNames(ctx context.Context) ([]string, error)
	// Return a fully loaded service (legs, ODs and passengers).
	GetService(ctx context.Context, name string) (*domain.Service, error)
}
