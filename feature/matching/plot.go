package matching

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"go.viam.com/sfm/feature"
)

// PlotMatches draws the two images side by side with their keypoints and a
// line for every match, and saves the drawing in a png file.
func PlotMatches(img1, img2 image.Image, kps1, kps2 feature.Keypoints, matches feature.Matches, outName string) error {
	for _, match := range matches {
		if match.Idx1 < 0 || match.Idx1 >= len(kps1) || match.Idx2 < 0 || match.Idx2 >= len(kps2) {
			return errors.Errorf("match (%d, %d) out of range", match.Idx1, match.Idx2)
		}
	}
	w1, h1 := img1.Bounds().Max.X, img1.Bounds().Max.Y
	w2, h2 := img2.Bounds().Max.X, img2.Bounds().Max.Y
	h := h1
	if h2 > h {
		h = h2
	}
	dc := gg.NewContext(w1+w2, h)
	dc.DrawImage(img1, 0, 0)
	dc.DrawImage(img2, w1, 0)

	// keypoints on both images
	dc.SetRGBA(0, 0, 1, 0.5)
	for _, kp := range kps1 {
		dc.DrawCircle(kp.X, kp.Y, 3.0)
		dc.Fill()
	}
	for _, kp := range kps2 {
		dc.DrawCircle(kp.X+float64(w1), kp.Y, 3.0)
		dc.Fill()
	}

	// one line per match
	dc.SetRGBA(0, 1, 0, 0.5)
	dc.SetLineWidth(1.25)
	for _, match := range matches {
		kp1 := kps1[match.Idx1]
		kp2 := kps2[match.Idx2]
		dc.DrawLine(kp1.X, kp1.Y, kp2.X+float64(w1), kp2.Y)
		dc.Stroke()
	}
	return dc.SavePNG(outName)
}
