package matching

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Options contains the parameters for matching two sets of descriptors.
type Options struct {
	// MaxRatio is the maximum allowed ratio between the angular distances of the
	// best and the second best match.
	MaxRatio float64 `json:"max_ratio"`
	// MaxDistance is the maximum allowed angular distance of a match.
	MaxDistance float64 `json:"max_distance"`
	// CrossCheck only keeps matches that are mutual best matches.
	CrossCheck bool `json:"cross_check"`
	// MaxError is the maximum geometric residual in pixels a correspondence may
	// have in guided matching.
	MaxError float64 `json:"max_error"`
}

// NewOptions returns matching options with the usual defaults.
func NewOptions() *Options {
	return &Options{
		MaxRatio:    0.8,
		MaxDistance: 0.7,
		CrossCheck:  true,
		MaxError:    4.0,
	}
}

// Validate ensures all parts of the Options are valid.
func (opts *Options) Validate(path string) error {
	if opts.MaxRatio <= 0 {
		return utils.NewConfigValidationError(path, errors.New("max_ratio should be > 0"))
	}
	if opts.MaxDistance <= 0 {
		return utils.NewConfigValidationError(path, errors.New("max_distance should be > 0"))
	}
	if opts.MaxError <= 0 {
		return utils.NewConfigValidationError(path, errors.New("max_error should be > 0"))
	}
	return nil
}

// LoadOptions loads matching Options from a json file.
func LoadOptions(file string) (*Options, error) {
	var opts Options
	filePath := filepath.Clean(file)
	optsFile, err := os.Open(filePath)
	defer utils.UncheckedErrorFunc(optsFile.Close)
	if err != nil {
		return nil, err
	}
	jsonParser := json.NewDecoder(optsFile)
	err = jsonParser.Decode(&opts)
	if err != nil {
		return nil, err
	}
	err = opts.Validate(file)
	if err != nil {
		return nil, err
	}
	return &opts, nil
}
