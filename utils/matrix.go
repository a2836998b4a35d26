package utils

// Transpose returns the transpose of an integer matrix stored as a slice of rows.
// All rows are assumed to have the same length.
func Transpose(m [][]int) [][]int {
	if len(m) == 0 {
		return [][]int{}
	}
	nRows, nCols := len(m), len(m[0])
	t := make([][]int, nCols)
	for j := range t {
		t[j] = make([]int, nRows)
	}
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}
