package repositories

import (
	"bookings-report-service/internal/ports"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryServiceRepository(t *testing.T) {
	ctx := context.Background()
	other := ServiceSeed{Name: "6100", DepartureDate: "2026-02-01", Stations: []string{"a", "b"}}
	repo := NewMemoryServiceRepository([]ServiceSeed{parisMarseilleSeed(), other})

	names, err := repo.ListServiceNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"6100", "7601"}, names)

	first, err := repo.GetService(ctx, "7601")
	require.NoError(t, err)
	second, err := repo.GetService(ctx, "7601")
	require.NoError(t, err)
	assert.NotSame(t, first, second, "each call builds a fresh service")

	_, err = repo.GetService(ctx, "9999")
	assert.ErrorIs(t, err, ports.ErrServiceNotFound)

	matrix, err := repo.GetDemandMatrix(ctx, "7601")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 8}, {3, 2, 1}}, matrix)

	_, err = repo.GetDemandMatrix(ctx, "6100")
	assert.ErrorIs(t, err, ports.ErrDemandMatrixNotFound)
	_, err = repo.GetDemandMatrix(ctx, "9999")
	assert.ErrorIs(t, err, ports.ErrServiceNotFound)
}
