package demand

import (
	"bookings-report-service/internal/ports"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDemandProvider(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7601.json"), []byte("[[1, 2, 3], [3, 4, 5]]"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("[[1, 2"), 0o600))

	provider := NewFileDemandProvider(dir)
	ctx := context.Background()

	matrix, err := provider.GetDemandMatrix(ctx, "7601")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4, 5}}, matrix)

	_, err = provider.GetDemandMatrix(ctx, "6100")
	assert.ErrorIs(t, err, ports.ErrDemandMatrixNotFound)

	_, err = provider.GetDemandMatrix(ctx, "broken")
	assert.Error(t, err)

	_, err = provider.GetDemandMatrix(ctx, "../etc/passwd")
	assert.Error(t, err)
}

func TestReadMatrix(t *testing.T) {
	matrix, err := ReadMatrix(strings.NewReader(`[[7]]`))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7}}, matrix)

	_, err = ReadMatrix(strings.NewReader(`[["a"]]`))
	assert.Error(t, err)
}
