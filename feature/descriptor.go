// Package feature contains SIFT keypoints and descriptors along with the codec
// that turns raw floating point descriptors into the quantized form used for
// matching.
package feature

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const (
	// DescriptorDim is the number of elements of a SIFT descriptor.
	DescriptorDim = 128
	// DescriptorNorm is the L2 norm a quantized descriptor is scaled to. The
	// dot product of two quantized descriptors is therefore at most
	// DescriptorNorm * DescriptorNorm.
	DescriptorNorm = 512
)

type (
	// Descriptor is a quantized SIFT descriptor.
	Descriptor []uint8
	// Descriptors is a set of quantized SIFT descriptors.
	Descriptors []Descriptor
)

// NormalizationType defines how raw descriptors are normalized before quantization.
type NormalizationType int

const (
	// L2Normalization is NormalizationType 0.
	L2Normalization NormalizationType = iota
	// RootSIFTNormalization is NormalizationType 1.
	RootSIFTNormalization
)

// NormalizeDescriptors normalizes raw descriptors in place. With
// L2Normalization each descriptor is scaled to unit L2 norm. With
// RootSIFTNormalization each descriptor is scaled to unit L1 norm and the
// square root is taken elementwise, which also yields unit L2 norm.
// Descriptors with zero norm are left unchanged.
func NormalizeDescriptors(descs [][]float64, normType NormalizationType) error {
	switch normType {
	case L2Normalization:
		for _, desc := range descs {
			norm := floats.Norm(desc, 2)
			if norm == 0 {
				continue
			}
			floats.Scale(1/norm, desc)
		}
	case RootSIFTNormalization:
		for _, desc := range descs {
			norm := floats.Norm(desc, 1)
			if norm == 0 {
				continue
			}
			floats.Scale(1/norm, desc)
			for i, v := range desc {
				desc[i] = math.Sqrt(v)
			}
		}
	default:
		return errors.Errorf("normalization type %d not supported", normType)
	}
	return nil
}

// QuantizeDescriptors converts normalized descriptors to their quantized
// representation. Each value is scaled by DescriptorNorm, rounded to the
// nearest integer and clamped to [0, 255].
func QuantizeDescriptors(descs [][]float64) Descriptors {
	quantized := make(Descriptors, len(descs))
	for i, desc := range descs {
		q := make(Descriptor, len(desc))
		for j, v := range desc {
			q[j] = uint8(math.Min(255, math.Max(0, math.Round(DescriptorNorm*v))))
		}
		quantized[i] = q
	}
	return quantized
}

// ubcBinOrder maps each group of 8 orientation bins from the VLFeat layout to
// the layout of the original UBC SIFT binaries.
var ubcBinOrder = [8]int{0, 7, 6, 5, 4, 3, 2, 1}

// ToUBCOrdering returns copies of the descriptors with the orientation bins of
// each of the 16 spatial cells reordered from the VLFeat layout to the UBC
// layout. The input is not modified.
func ToUBCOrdering(descs Descriptors) (Descriptors, error) {
	out := make(Descriptors, len(descs))
	for n, desc := range descs {
		if len(desc) != DescriptorDim {
			return nil, errors.Errorf("descriptor %d must have %d elements", n, DescriptorDim)
		}
		reordered := make(Descriptor, DescriptorDim)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				cell := 8 * (j + 4*i)
				for k := 0; k < 8; k++ {
					reordered[cell+ubcBinOrder[k]] = desc[cell+k]
				}
			}
		}
		out[n] = reordered
	}
	return out, nil
}
