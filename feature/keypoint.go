package feature

import "math"

// Keypoint is the location of a feature in an image together with its affine
// shape, stored as the affine transform from a canonical patch frame to image
// coordinates.
type Keypoint struct {
	X   float64
	Y   float64
	A11 float64
	A12 float64
	A21 float64
	A22 float64
}

// Keypoints is a set of keypoints detected in one image.
type Keypoints []Keypoint

// NewKeypoint creates a keypoint with unit scale and no rotation.
func NewKeypoint(x, y float64) Keypoint {
	return NewAffineKeypoint(x, y, 1, 0, 0, 1)
}

// NewOrientedKeypoint creates a keypoint with the given scale and orientation,
// in radians, and no shear.
func NewOrientedKeypoint(x, y, scale, orientation float64) Keypoint {
	cosO := math.Cos(orientation)
	sinO := math.Sin(orientation)
	return NewAffineKeypoint(x, y, scale*cosO, -scale*sinO, scale*sinO, scale*cosO)
}

// NewAffineKeypoint creates a keypoint with a fully specified affine shape.
func NewAffineKeypoint(x, y, a11, a12, a21, a22 float64) Keypoint {
	return Keypoint{X: x, Y: y, A11: a11, A12: a12, A21: a21, A22: a22}
}

// ScaleX returns the scale of the keypoint along the x axis of the patch frame.
func (kp *Keypoint) ScaleX() float64 {
	return math.Sqrt(kp.A11*kp.A11 + kp.A21*kp.A21)
}

// ScaleY returns the scale of the keypoint along the y axis of the patch frame.
func (kp *Keypoint) ScaleY() float64 {
	return math.Sqrt(kp.A12*kp.A12 + kp.A22*kp.A22)
}

// Scale returns the mean scale of the keypoint.
func (kp *Keypoint) Scale() float64 {
	return (kp.ScaleX() + kp.ScaleY()) / 2
}

// Orientation returns the orientation of the keypoint in radians.
func (kp *Keypoint) Orientation() float64 {
	return math.Atan2(kp.A21, kp.A11)
}

// Shear returns the shear angle of the keypoint shape in radians.
func (kp *Keypoint) Shear() float64 {
	return math.Atan2(-kp.A12, kp.A22) - kp.Orientation()
}

// Rescale scales the position and shape of the keypoint by a positive factor,
// e.g. when features were detected on a downsampled image.
func (kp *Keypoint) Rescale(factor float64) {
	kp.X *= factor
	kp.Y *= factor
	kp.A11 *= factor
	kp.A12 *= factor
	kp.A21 *= factor
	kp.A22 *= factor
}
