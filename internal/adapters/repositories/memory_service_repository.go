package repositories

import (
	"bookings-report-service/internal/domain"
	"bookings-report-service/internal/ports"
	"context"
	"fmt"
	"slices"
)

// In-memory implementation of the ServiceRepository and DemandMatrixProvider
// ports, backed by seeds. Every GetService call builds a fresh service so
// callers never share mutable state.
type MemoryServiceRepository struct {
	seeds map[string]ServiceSeed
}

func NewMemoryServiceRepository(seeds []ServiceSeed) *MemoryServiceRepository {
	m := make(map[string]ServiceSeed, len(seeds))
	for _, s := range seeds {
		m[s.Name] = s
	}
	return &MemoryServiceRepository{seeds: m}
}

func (r *MemoryServiceRepository) ListServiceNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(r.seeds))
	for n := range r.seeds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names, nil
}

func (r *MemoryServiceRepository) GetService(ctx context.Context, name string) (*domain.Service, error) {
	seed, ok := r.seeds[name]
	if !ok {
		return nil, fmt.Errorf("get service %q: %w", name, ports.ErrServiceNotFound)
	}
	return BuildService(seed)
}

func (r *MemoryServiceRepository) GetDemandMatrix(ctx context.Context, serviceName string) ([][]int, error) {
	seed, ok := r.seeds[serviceName]
	if !ok {
		return nil, fmt.Errorf("get demand matrix %q: %w", serviceName, ports.ErrServiceNotFound)
	}
	if seed.DemandMatrix == nil {
		return nil, fmt.Errorf("get demand matrix %q: %w", serviceName, ports.ErrDemandMatrixNotFound)
	}
	return seed.DemandMatrix, nil
}
