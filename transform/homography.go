// Package transform provides the point transforms and residuals of two-view geometry.
package transform

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NewHomography creates a 3x3 homography matrix from a slice of its 9 values in row-major order.
func NewHomography(vals []float64) (*mat.Dense, error) {
	if len(vals) != 9 {
		return nil, errors.Errorf("input to NewHomography must have length of 9. Has length of %d", len(vals))
	}
	return mat.NewDense(3, 3, vals), nil
}

// ApplyHomography maps a 2D point through homography h and dehomogenizes the result.
func ApplyHomography(h *mat.Dense, pt r2.Point) r2.Point {
	x := h.At(0, 0)*pt.X + h.At(0, 1)*pt.Y + h.At(0, 2)
	y := h.At(1, 0)*pt.X + h.At(1, 1)*pt.Y + h.At(1, 2)
	z := h.At(2, 0)*pt.X + h.At(2, 1)*pt.Y + h.At(2, 2)
	return r2.Point{X: x / z, Y: y / z}
}

// SquaredTransferError returns the squared distance between pt2 and pt1 mapped
// through homography h.
func SquaredTransferError(h *mat.Dense, pt1, pt2 r2.Point) float64 {
	diff := ApplyHomography(h, pt1).Sub(pt2)
	return diff.Dot(diff)
}
