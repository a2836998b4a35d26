package matching

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/sfm/feature"
)

func TestFindBestMatchesOneWay(t *testing.T) {
	// A perfect candidate in each row.
	matches := FindBestMatchesOneWay([][]int{{maxDotProduct, 0}, {0, maxDotProduct}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{0, 1})

	// Rows without a positive dot product have no candidate at all.
	matches = FindBestMatchesOneWay([][]int{{0, 0}, {0, 0}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{-1, -1})

	// A single candidate is ratio tested against a right angle and passes.
	matches = FindBestMatchesOneWay([][]int{{maxDotProduct}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{0})

	// acos(150000/262144) is about 0.96 and exceeds the distance threshold.
	matches = FindBestMatchesOneWay([][]int{{150000}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{-1})

	// A distance threshold of a right angle or more admits every candidate
	// the ratio test admits.
	matches = FindBestMatchesOneWay([][]int{{150000}}, 0.8, 1.6)
	test.That(t, matches, test.ShouldResemble, []int{0})

	// Equal best and second best candidates fail the ratio test.
	matches = FindBestMatchesOneWay([][]int{{230000, 230000}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{-1})

	// So does a second best almost as close as the best.
	matches = FindBestMatchesOneWay([][]int{{230000, 228000}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{-1})

	// A clearly worse second best passes it.
	matches = FindBestMatchesOneWay([][]int{{230000, 100000}}, 0.8, 0.7)
	test.That(t, matches, test.ShouldResemble, []int{0})

	matches = FindBestMatchesOneWay([][]int{}, 0.8, 0.7)
	test.That(t, matches, test.ShouldHaveLength, 0)
}

func TestFindBestMatches(t *testing.T) {
	// The second set holds the same descriptors in reverse order.
	dists := [][]int{{0, 260100}, {260100, 0}}
	matches := FindBestMatches(dists, 0.8, 0.7, true)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 1}, {Idx1: 1, Idx2: 0}})

	// Both rows prefer the single column but only the mutual best pair
	// survives the cross check.
	dists = [][]int{{maxDotProduct}, {230000}}
	matches = FindBestMatches(dists, 0.8, 0.7, true)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 0}})

	matches = FindBestMatches(dists, 0.8, 0.7, false)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 0}, {Idx1: 1, Idx2: 0}})

	matches = FindBestMatches([][]int{}, 0.8, 0.7, true)
	test.That(t, matches, test.ShouldHaveLength, 0)
}

func TestMatchDescriptors(t *testing.T) {
	logger := golog.NewTestLogger(t)
	descs1 := feature.Descriptors{blockDescriptor(0), blockDescriptor(4)}
	descs2 := feature.Descriptors{descs1[1], descs1[0]}

	matches, err := MatchDescriptors(descs1, descs2, NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 1}, {Idx1: 1, Idx2: 0}})

	// A descriptor planted in both sets gives exactly one match.
	matches, err = MatchDescriptors(feature.Descriptors{descs1[0]}, descs2, NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 1}})

	// Same with size three sets whose remaining descriptors are unrelated.
	matches, err = MatchDescriptors(
		feature.Descriptors{descs1[0], blockDescriptor(8), blockDescriptor(12)},
		feature.Descriptors{descs1[0], blockDescriptor(16), blockDescriptor(20)},
		NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldResemble, feature.Matches{{Idx1: 0, Idx2: 0}})

	matches, err = MatchDescriptors(feature.Descriptors{}, descs2, NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldHaveLength, 0)

	matches, err = MatchDescriptors(descs1, feature.Descriptors{}, NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldHaveLength, 0)

	matches, err = MatchDescriptors(feature.Descriptors{}, feature.Descriptors{}, NewOptions(), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matches, test.ShouldHaveLength, 0)

	_, err = MatchDescriptors(feature.Descriptors{make(feature.Descriptor, 64)}, descs2, NewOptions(), logger)
	test.That(t, err, test.ShouldBeError, errors.New("descriptor 0 in first set must have 128 elements"))
}
