package transform

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Convert2DPointsToHomogeneousPoints converts float64 image coordinates to homogeneous float64 coordinates.
func Convert2DPointsToHomogeneousPoints(pts []r2.Point) []r3.Vector {
	ptsHomogeneous := make([]r3.Vector, len(pts))
	for i, pt := range pts {
		ptsHomogeneous[i] = r3.Vector{
			X: pt.X,
			Y: pt.Y,
			Z: 1,
		}
	}
	return ptsHomogeneous
}

// multiplyMatrixVector multiplies a 3x3 matrix with a homogeneous point.
func multiplyMatrixVector(m *mat.Dense, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// multiplyMatrixTransposeVector multiplies the transpose of a 3x3 matrix with a homogeneous point.
func multiplyMatrixTransposeVector(m *mat.Dense, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.At(0, 0)*v.X + m.At(1, 0)*v.Y + m.At(2, 0)*v.Z,
		Y: m.At(0, 1)*v.X + m.At(1, 1)*v.Y + m.At(2, 1)*v.Z,
		Z: m.At(0, 2)*v.X + m.At(1, 2)*v.Y + m.At(2, 2)*v.Z,
	}
}

// SquaredSampsonError returns the squared Sampson distance of a point pair with
// respect to the epipolar geometry described by fundamental matrix f. Pairs on
// exactly corresponding epipolar lines have an error of 0. If the pair is
// degenerate (both points on an epipole), +Inf is returned.
func SquaredSampsonError(f *mat.Dense, pt1, pt2 r2.Point) float64 {
	x1 := r3.Vector{X: pt1.X, Y: pt1.Y, Z: 1}
	x2 := r3.Vector{X: pt2.X, Y: pt2.Y, Z: 1}
	// epipolar lines f*x1 in image 2 and f^T*x2 in image 1
	fx1 := multiplyMatrixVector(f, x1)
	ftx2 := multiplyMatrixTransposeVector(f, x2)
	num := x2.Dot(fx1)
	denom := fx1.X*fx1.X + fx1.Y*fx1.Y + ftx2.X*ftx2.X + ftx2.Y*ftx2.Y
	if denom == 0 {
		return math.Inf(1)
	}
	return num * num / denom
}
