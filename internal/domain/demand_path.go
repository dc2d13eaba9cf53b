package domain

// A (row, col) position in a matrix.
type GridCell struct {
	Row int
	Col int
}

// Represents the revenue-maximizing path through a service demand matrix.
// The path starts at (0,0), ends at the bottom-right cell and only moves
// right or down.
type DemandPath struct {
	ServiceName string
	TotalValue  int
	Path        []GridCell
}
