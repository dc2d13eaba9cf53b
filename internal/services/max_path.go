package services

import (
	"bookings-report-service/internal/domain"
	"errors"
	"fmt"
)

var ErrInvalidMatrix = errors.New("empty or non-rectangular matrix")

// MaxPath finds the path from the top-left to the bottom-right cell of matrix
// that maximizes the sum of the cells it visits, moving only right or down.
//
// It returns the best sum and the visited cells in order. When several paths
// reach the same sum, the one reconstructed by stepping up first from the
// bottom-right cell wins (ties favour "up"), which keeps the output
// deterministic.
func MaxPath(matrix [][]int) (int, []domain.GridCell, error) {
	if err := validateMatrix(matrix); err != nil {
		return 0, nil, fmt.Errorf("max path: %w", err)
	}

	dp := bestSums(matrix)
	rows, cols := len(dp), len(dp[0])

	return dp[rows-1][cols-1], tracePath(dp), nil
}

func validateMatrix(matrix [][]int) error {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return ErrInvalidMatrix
	}

	cols := len(matrix[0])
	for r, row := range matrix {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), cols, ErrInvalidMatrix)
		}
	}
	return nil
}

// bestSums builds the table of best path sums ending at every cell.
func bestSums(matrix [][]int) [][]int {
	rows, cols := len(matrix), len(matrix[0])

	dp := make([][]int, rows)
	for r := range dp {
		dp[r] = make([]int, cols)
	}
	dp[0][0] = matrix[0][0]

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r+c == 0 {
				continue
			}

			var best int
			switch {
			case r == 0:
				best = dp[r][c-1]
			case c == 0:
				best = dp[r-1][c]
			default:
				best = max(dp[r-1][c], dp[r][c-1])
			}
			dp[r][c] = matrix[r][c] + best
		}
	}

	return dp
}

// tracePath walks the dp table back from the bottom-right cell.
func tracePath(dp [][]int) []domain.GridCell {
	row, col := len(dp)-1, len(dp[0])-1
	path := make([]domain.GridCell, 0, row+col+1)

	for row >= 0 && col >= 0 {
		path = append(path, domain.GridCell{Row: row, Col: col})

		// Step up unless the left neighbour is strictly better; ties go up.
		if row > 0 && (col == 0 || dp[row-1][col] >= dp[row][col-1]) {
			row--
		} else {
			col--
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
