package feature

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// ReadFeatures parses keypoints and quantized descriptors from the text
// interchange format. The first line contains the number of features and their
// dimension, each following line one keypoint as "x y scale orientation"
// followed by the descriptor values.
func ReadFeatures(r io.Reader) (Keypoints, Descriptors, error) {
	in := bufio.NewReader(r)
	header, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	headerFields := strings.Fields(header)
	if len(headerFields) != 2 {
		return nil, nil, errors.Errorf("header must contain the number of features and their dimension, got %q", strings.TrimSpace(header))
	}
	numFeatures, err := strconv.Atoi(headerFields[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid number of features")
	}
	if numFeatures < 0 {
		return nil, nil, errors.Errorf("number of features must be non-negative, got %d", numFeatures)
	}
	dim, err := strconv.Atoi(headerFields[1])
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid feature dimension")
	}
	if dim != DescriptorDim {
		return nil, nil, errors.Errorf("features must have %d dimensions, got %d", DescriptorDim, dim)
	}

	keypoints := make(Keypoints, numFeatures)
	descriptors := make(Descriptors, numFeatures)
	for i := 0; i < numFeatures; i++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, nil, errors.Errorf("expected %d features, got %d", numFeatures, i)
		}
		if len(fields) != 4+dim {
			return nil, nil, errors.Errorf("feature %d must have %d fields, got %d", i, 4+dim, len(fields))
		}
		kpFields := make([]float64, 4)
		for j := 0; j < 4; j++ {
			kpFields[j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "invalid keypoint field %q of feature %d", fields[j], i)
			}
		}
		keypoints[i] = NewOrientedKeypoint(kpFields[0], kpFields[1], kpFields[2], kpFields[3])

		desc := make(Descriptor, dim)
		for j, field := range fields[4:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "invalid descriptor value %q of feature %d", field, i)
			}
			if value < 0 || value > 255 {
				return nil, nil, errors.Errorf("descriptor value %s of feature %d out of range [0, 255]", field, i)
			}
			desc[j] = uint8(value)
		}
		descriptors[i] = desc
	}
	return keypoints, descriptors, nil
}

// LoadFeaturesFromFile reads features in the text interchange format from a file.
func LoadFeaturesFromFile(path string) (Keypoints, Descriptors, error) {
	featureFile, err := os.Open(filepath.Clean(path))
	defer utils.UncheckedErrorFunc(featureFile.Close)
	if err != nil {
		return nil, nil, err
	}
	return ReadFeatures(featureFile)
}

// WriteFeatures writes keypoints and descriptors to w in the text interchange
// format read by ReadFeatures.
func WriteFeatures(w io.Writer, kps Keypoints, descs Descriptors) error {
	if len(kps) != len(descs) {
		return errors.New("keypoints and descriptors must have same length")
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", len(kps), DescriptorDim); err != nil {
		return err
	}
	for i, kp := range kps {
		desc := descs[i]
		if len(desc) != DescriptorDim {
			return errors.Errorf("descriptor %d must have %d elements", i, DescriptorDim)
		}
		var line strings.Builder
		fmt.Fprintf(&line, "%g %g %g %g", kp.X, kp.Y, kp.Scale(), kp.Orientation())
		for _, v := range desc {
			fmt.Fprintf(&line, " %d", v)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFeaturesToFile writes features in the text interchange format to a file.
func WriteFeaturesToFile(path string, kps Keypoints, descs Descriptors) (err error) {
	featureFile, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, featureFile.Close())
	}()
	return WriteFeatures(featureFile, kps, descs)
}
