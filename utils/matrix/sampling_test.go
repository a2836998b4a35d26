package matrix

import (
	"testing"

	"go.viam.com/test"
)

func TestSampleNIntegersUniform(t *testing.T) {
	samples1 := SampleNIntegersUniform(32, -8, 8)
	test.That(t, samples1, test.ShouldHaveLength, 32)
	for _, sample := range samples1 {
		test.That(t, sample, test.ShouldBeGreaterThanOrEqualTo, -8)
		test.That(t, sample, test.ShouldBeLessThanOrEqualTo, 8)
	}

	samples2 := SampleNIntegersUniform(1000, 0, 255)
	test.That(t, samples2, test.ShouldHaveLength, 1000)
	for _, sample := range samples2 {
		test.That(t, sample, test.ShouldBeGreaterThanOrEqualTo, 0)
		test.That(t, sample, test.ShouldBeLessThanOrEqualTo, 255)
	}
}

func TestSampleNIntegersNormal(t *testing.T) {
	samples := SampleNIntegersNormal(1000, -6, 6)
	test.That(t, samples, test.ShouldHaveLength, 1000)
	mean := 0.
	for _, sample := range samples {
		test.That(t, sample, test.ShouldBeGreaterThanOrEqualTo, -6)
		test.That(t, sample, test.ShouldBeLessThanOrEqualTo, 6)
		mean += float64(sample)
	}
	mean /= 1000.
	// samples are centered on (vMax+vMin)/2 = 0
	test.That(t, mean, test.ShouldBeGreaterThan, -1.)
	test.That(t, mean, test.ShouldBeLessThan, 1.)
}

func TestSampleMatrixUniform(t *testing.T) {
	m := SampleMatrixUniform(12, 128, 0, 1)
	test.That(t, m, test.ShouldHaveLength, 12)
	for _, row := range m {
		test.That(t, row, test.ShouldHaveLength, 128)
		for _, v := range row {
			test.That(t, v, test.ShouldBeGreaterThanOrEqualTo, 0.)
			test.That(t, v, test.ShouldBeLessThan, 1.)
		}
	}
}
