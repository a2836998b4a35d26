package matching

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	uts "go.viam.com/utils"

	"go.viam.com/sfm/feature"
	"go.viam.com/sfm/utils"
)

// FeatureExtractor provides the features of an image to the matching pipeline.
type FeatureExtractor interface {
	Extract(ctx context.Context, imagePath string) (feature.Keypoints, feature.Descriptors, error)
}

// TwoViewEstimator estimates the geometric relation of two views from their
// matched keypoints.
type TwoViewEstimator interface {
	Estimate(ctx context.Context, kps1, kps2 feature.Keypoints, matches feature.Matches) (*feature.TwoViewGeometry, error)
}

// TextFileExtractor reads precomputed features stored next to the images in
// the text interchange format.
type TextFileExtractor struct {
	// Root is prepended to relative image paths.
	Root string
}

// Extract loads the features of the image from the text file "<imagePath>.txt".
func (e *TextFileExtractor) Extract(ctx context.Context, imagePath string) (feature.Keypoints, feature.Descriptors, error) {
	path := imagePath + ".txt"
	if e.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(e.Root, path)
	}
	return feature.LoadFeaturesFromFile(path)
}

// PipelineConfig contains the parameters of an image pair matching pipeline.
type PipelineConfig struct {
	Matching    *Options `json:"matching"`
	FeatureRoot string   `json:"feature_root"`
}

// LoadPipelineConfig loads a PipelineConfig from a json file.
func LoadPipelineConfig(file string) (*PipelineConfig, error) {
	var config PipelineConfig
	filePath := filepath.Clean(file)
	configFile, err := os.Open(filePath)
	defer uts.UncheckedErrorFunc(configFile.Close)
	if err != nil {
		return nil, err
	}
	jsonParser := json.NewDecoder(configFile)
	err = jsonParser.Decode(&config)
	if err != nil {
		return nil, err
	}
	if config.Matching == nil {
		return nil, uts.NewConfigValidationFieldRequiredError(file, "matching")
	}
	err = config.Matching.Validate(file)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// MatchImagePair extracts the features of both images in parallel and matches
// them. When an estimator is given, the relation of the two views is estimated
// from the matches and guided matching is run with it; the returned geometry
// is nil otherwise.
func MatchImagePair(
	ctx context.Context,
	extractor FeatureExtractor,
	estimator TwoViewEstimator,
	imagePath1, imagePath2 string,
	opts *Options,
	logger golog.Logger,
) (*feature.TwoViewGeometry, feature.Matches, error) {
	if extractor == nil {
		return nil, nil, errors.New("feature extractor must not be nil")
	}

	var kps1, kps2 feature.Keypoints
	var descs1, descs2 feature.Descriptors
	_, err := utils.RunInParallel(ctx, []utils.SimpleFunc{
		func(ctx context.Context) error {
			var err error
			kps1, descs1, err = extractor.Extract(ctx, imagePath1)
			return err
		},
		func(ctx context.Context) error {
			var err error
			kps2, descs2, err = extractor.Extract(ctx, imagePath2)
			return err
		},
	})
	if err != nil {
		return nil, nil, err
	}

	matches, err := MatchDescriptors(descs1, descs2, opts, logger)
	if err != nil {
		return nil, nil, err
	}
	if estimator == nil {
		return nil, matches, nil
	}

	geom, err := estimator.Estimate(ctx, kps1, kps2, matches)
	if err != nil {
		return nil, matches, err
	}
	err = MatchGuided(kps1, kps2, descs1, descs2, geom, opts, logger)
	if err != nil {
		return nil, matches, err
	}
	return geom, matches, nil
}
