package dto

type MaxPathRequest struct {
	Matrix [][]int `json:"matrix"`
}

// Cells are encoded as [row, col] pairs.
type MaxPathResponse struct {
	Service    string   `json:"service,omitempty"`
	TotalValue int      `json:"total_value"`
	Path       [][2]int `json:"path"`
}
