package ports

import (
	"context"
	"errors"
)

var ErrDemandMatrixNotFound = errors.New("demand matrix not found")

// Contract for retrieving the estimated demand matrix of a service.
// Rows and columns are opaque to the caller (e.g. day_x by price level).
type DemandMatrixProvider interface {
	GetDemandMatrix(ctx context.Context, serviceName string) ([][]int, error)
}
