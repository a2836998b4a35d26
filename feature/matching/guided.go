package matching

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/sfm/feature"
	"go.viam.com/sfm/transform"
)

// NewEpipolarFilter returns a filter that rejects correspondences whose
// squared Sampson error with respect to fundamental matrix f exceeds the
// square of maxError.
func NewEpipolarFilter(f *mat.Dense, maxError float64) FilterFunc {
	maxResidual := maxError * maxError
	return func(x1, y1, x2, y2 float64) bool {
		return transform.SquaredSampsonError(f, r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2}) > maxResidual
	}
}

// NewHomographyFilter returns a filter that rejects correspondences whose
// squared transfer error through homography h exceeds the square of maxError.
func NewHomographyFilter(h *mat.Dense, maxError float64) FilterFunc {
	maxResidual := maxError * maxError
	return func(x1, y1, x2, y2 float64) bool {
		return transform.SquaredTransferError(h, r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2}) > maxResidual
	}
}

// MatchGuided matches two descriptor sets guided by the estimated relation of
// the two views and stores the matches consistent with the relation in
// geom.InlierMatches. Epipolar relations are filtered with the Sampson error
// with respect to geom.F, planar and panoramic relations with the transfer
// error through geom.H. Any other relation leaves geom untouched.
func MatchGuided(
	kps1, kps2 feature.Keypoints,
	descs1, descs2 feature.Descriptors,
	geom *feature.TwoViewGeometry,
	opts *Options,
	logger golog.Logger,
) error {
	if geom == nil {
		return errors.New("two view geometry must not be nil")
	}

	var filter FilterFunc
	switch geom.Type {
	case feature.GeometryCalibrated, feature.GeometryUncalibrated:
		if geom.F == nil {
			return errors.Errorf("%s relation requires a fundamental matrix", geom.Type)
		}
		filter = NewEpipolarFilter(geom.F, opts.MaxError)
	case feature.GeometryPlanar, feature.GeometryPanoramic, feature.GeometryPlanarOrPanoramic:
		if geom.H == nil {
			return errors.Errorf("%s relation requires a homography", geom.Type)
		}
		filter = NewHomographyFilter(geom.H, opts.MaxError)
	default:
		logger.Debugf("no guided matching for %s relation", geom.Type)
		return nil
	}

	dists, err := ComputeGuidedDistanceMatrix(kps1, kps2, descs1, descs2, filter)
	if err != nil {
		return err
	}
	geom.InlierMatches = FindBestMatches(dists, opts.MaxRatio, opts.MaxDistance, opts.CrossCheck)
	logger.Debugf("guided matching kept %d of %d descriptors", len(geom.InlierMatches), len(descs1))
	return nil
}
