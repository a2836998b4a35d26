package feature

import "gonum.org/v1/gonum/mat"

// Match contains the index of a feature in the first image and the index of
// the feature it was matched with in the second image.
type Match struct {
	Idx1 int
	Idx2 int
}

// Matches is a set of feature matches between two images.
type Matches []Match

// GeometryType labels the geometric model relating two views.
type GeometryType int

const (
	// GeometryUndefined means no relation was estimated.
	GeometryUndefined GeometryType = iota
	// GeometryDegenerate means the views have too few correspondences for a model.
	GeometryDegenerate
	// GeometryCalibrated is an epipolar relation with known camera intrinsics.
	GeometryCalibrated
	// GeometryUncalibrated is an epipolar relation with unknown camera intrinsics.
	GeometryUncalibrated
	// GeometryPlanar relates two views of a plane.
	GeometryPlanar
	// GeometryPanoramic relates two views taken from the same position.
	GeometryPanoramic
	// GeometryPlanarOrPanoramic covers both planar and panoramic relations.
	GeometryPlanarOrPanoramic
	// GeometryWatermark is a pure 2D translation in the image borders.
	GeometryWatermark
	// GeometryMultiple means multiple models fit the views.
	GeometryMultiple
)

// String returns a human readable name of the geometry type.
func (gt GeometryType) String() string {
	switch gt {
	case GeometryUndefined:
		return "undefined"
	case GeometryDegenerate:
		return "degenerate"
	case GeometryCalibrated:
		return "calibrated"
	case GeometryUncalibrated:
		return "uncalibrated"
	case GeometryPlanar:
		return "planar"
	case GeometryPanoramic:
		return "panoramic"
	case GeometryPlanarOrPanoramic:
		return "planar_or_panoramic"
	case GeometryWatermark:
		return "watermark"
	case GeometryMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// TwoViewGeometry holds the estimated geometric relation between two views and
// the feature matches consistent with it.
type TwoViewGeometry struct {
	// Type of the estimated model.
	Type GeometryType
	// F is the 3x3 fundamental matrix of a calibrated or uncalibrated relation.
	F *mat.Dense
	// H is the 3x3 homography of a planar or panoramic relation.
	H *mat.Dense
	// InlierMatches are the matches consistent with the model.
	InlierMatches Matches
}
