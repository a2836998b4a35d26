// Package matching implements descriptor matching between two images, with
// optional geometric guidance from an estimated two-view relation.
package matching

import (
	"math"

	"github.com/edaniels/golog"

	"go.viam.com/sfm/feature"
	"go.viam.com/sfm/utils"
)

// distNorm rescales dot products of quantized descriptors to cosines.
const distNorm = 1.0 / float64(maxDotProduct)

// FindBestMatchesOneWay finds the best match in the second descriptor set for
// every descriptor of the first set, given their distance matrix. A match must
// have an angular distance of at most maxDistance and pass the ratio test
// against the second best candidate. The result has one entry per descriptor
// of the first set with the index of its match in the second set, or -1.
func FindBestMatchesOneWay(dists [][]int, maxRatio, maxDistance float64) []int {
	matches := make([]int, len(dists))

	for i1, row := range dists {
		matches[i1] = -1

		bestI2 := -1
		bestDist := 0
		secondBestDist := 0
		for i2, dist := range row {
			if dist > bestDist {
				bestI2 = i2
				secondBestDist = bestDist
				bestDist = dist
			} else if dist > secondBestDist {
				secondBestDist = dist
			}
		}

		if bestI2 == -1 {
			continue
		}

		bestDistNormed := math.Acos(math.Min(distNorm*float64(bestDist), 1))
		if bestDistNormed > maxDistance {
			continue
		}

		// Keep this comparison >= so that best == second best is rejected.
		secondBestDistNormed := math.Acos(math.Min(distNorm*float64(secondBestDist), 1))
		if bestDistNormed >= maxRatio*secondBestDistNormed {
			continue
		}

		matches[i1] = bestI2
	}

	return matches
}

// FindBestMatches finds the matches between two descriptor sets given their
// distance matrix. With crossCheck, a match is only kept when the two
// descriptors are each other's best match.
func FindBestMatches(dists [][]int, maxRatio, maxDistance float64, crossCheck bool) feature.Matches {
	matches12 := FindBestMatchesOneWay(dists, maxRatio, maxDistance)

	if crossCheck {
		matches21 := FindBestMatchesOneWay(utils.Transpose(dists), maxRatio, maxDistance)
		matches := make(feature.Matches, 0, len(matches12))
		for i1, i2 := range matches12 {
			if i2 != -1 && matches21[i2] != -1 && matches21[i2] == i1 {
				matches = append(matches, feature.Match{Idx1: i1, Idx2: i2})
			}
		}
		return matches
	}

	matches := make(feature.Matches, 0, len(matches12))
	for i1, i2 := range matches12 {
		if i2 != -1 {
			matches = append(matches, feature.Match{Idx1: i1, Idx2: i2})
		}
	}
	return matches
}

// MatchDescriptors matches two sets of quantized descriptors.
func MatchDescriptors(descs1, descs2 feature.Descriptors, opts *Options, logger golog.Logger) (feature.Matches, error) {
	dists, err := ComputeDistanceMatrix(descs1, descs2)
	if err != nil {
		return nil, err
	}
	matches := FindBestMatches(dists, opts.MaxRatio, opts.MaxDistance, opts.CrossCheck)
	logger.Debugf("matched %d of %d descriptors", len(matches), len(descs1))
	return matches, nil
}
