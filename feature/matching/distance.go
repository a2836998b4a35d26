package matching

import (
	"context"

	"github.com/pkg/errors"

	"go.viam.com/sfm/feature"
	"go.viam.com/sfm/utils"
)

// maxDotProduct is the largest possible dot product of two quantized descriptors.
const maxDotProduct = feature.DescriptorNorm * feature.DescriptorNorm

// FilterFunc reports whether matching a keypoint at (x1, y1) in the first
// image with a keypoint at (x2, y2) in the second image is geometrically
// inadmissible.
type FilterFunc func(x1, y1, x2, y2 float64) bool

// ComputeDistanceMatrix computes the matrix of dot products between all pairs
// of descriptors from the two sets. Entries are in [0, maxDotProduct] and
// larger entries mean more similar descriptors.
func ComputeDistanceMatrix(descs1, descs2 feature.Descriptors) ([][]int, error) {
	return computeDistanceMatrix(nil, nil, descs1, descs2, nil)
}

// ComputeGuidedDistanceMatrix computes the same matrix as
// ComputeDistanceMatrix, except that pairs rejected by filter get a dot
// product of 0 so that they can never be selected as matches.
func ComputeGuidedDistanceMatrix(
	kps1, kps2 feature.Keypoints,
	descs1, descs2 feature.Descriptors,
	filter FilterFunc,
) ([][]int, error) {
	if filter == nil {
		return nil, errors.New("guided filter must not be nil")
	}
	if len(kps1) != len(descs1) {
		return nil, errors.Errorf("first set has %d keypoints and %d descriptors, must have same length", len(kps1), len(descs1))
	}
	if len(kps2) != len(descs2) {
		return nil, errors.Errorf("second set has %d keypoints and %d descriptors, must have same length", len(kps2), len(descs2))
	}
	return computeDistanceMatrix(kps1, kps2, descs1, descs2, filter)
}

func computeDistanceMatrix(
	kps1, kps2 feature.Keypoints,
	descs1, descs2 feature.Descriptors,
	filter FilterFunc,
) ([][]int, error) {
	for i, desc := range descs1 {
		if len(desc) != feature.DescriptorDim {
			return nil, errors.Errorf("descriptor %d in first set must have %d elements", i, feature.DescriptorDim)
		}
	}
	for i, desc := range descs2 {
		if len(desc) != feature.DescriptorDim {
			return nil, errors.Errorf("descriptor %d in second set must have %d elements", i, feature.DescriptorDim)
		}
	}

	dists := make([][]int, len(descs1))
	err := utils.GroupWorkParallel(
		context.Background(),
		len(descs1),
		func(numGroups int) {},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				i1 := workNum
				row := make([]int, len(descs2))
				for i2 := range descs2 {
					if filter != nil && filter(kps1[i1].X, kps1[i1].Y, kps2[i2].X, kps2[i2].Y) {
						continue
					}
					row[i2] = dotProduct(descs1[i1], descs2[i2])
				}
				dists[i1] = row
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return dists, nil
}

// dotProduct returns the dot product of two descriptors of the same length.
func dotProduct(desc1, desc2 feature.Descriptor) int {
	sum := 0
	for k := range desc1 {
		sum += int(desc1[k]) * int(desc2[k])
	}
	return sum
}
