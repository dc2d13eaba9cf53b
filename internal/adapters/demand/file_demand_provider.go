package demand

import (
	"bookings-report-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Demand matrices exported by the forecasting job, one JSON file per service
// named <service>.json under Dir.
type FileDemandProvider struct {
	Dir string
}

func NewFileDemandProvider(dir string) *FileDemandProvider {
	return &FileDemandProvider{Dir: dir}
}

func (p *FileDemandProvider) GetDemandMatrix(ctx context.Context, serviceName string) ([][]int, error) {
	name := strings.TrimSpace(serviceName)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("file demand provider: invalid service name %q", serviceName)
	}

	f, err := os.Open(filepath.Join(p.Dir, name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file demand provider: %q: %w", name, ports.ErrDemandMatrixNotFound)
		}
		return nil, fmt.Errorf("file demand provider: open %q: %w", name, err)
	}
	defer f.Close()

	matrix, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("file demand provider: %q: %w", name, err)
	}
	return matrix, nil
}

// ReadMatrix decodes a JSON array of integer rows.
func ReadMatrix(r io.Reader) ([][]int, error) {
	var matrix [][]int
	if err := json.NewDecoder(r).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("decode demand matrix: %w", err)
	}
	return matrix, nil
}
