package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Morphology settings applied to every mask.
const (
	// KernelSize is the side of the square structuring element.
	KernelSize = 5
	// MorphIterations is how many times erosion and then dilation run.
	MorphIterations = 2
)

// Segmenter produces binary masks of the pixels matching a color preset.
type Segmenter struct {
	kernel gocv.Mat
}

// NewSegmenter creates a Segmenter with a 5x5 rectangular kernel.
// Call Close to release the kernel.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		kernel: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(KernelSize, KernelSize)),
	}
}

// Segment returns a single-channel mask with the frame's dimensions where
// matching pixels are 255 and everything else is 0.
// The caller is responsible for closing the returned Mat.
//
// Algorithm:
// 1. Convert BGR to HSV
// 2. Threshold each range of the preset
// 3. OR the range masks together
// 4. Erode twice, then dilate twice, to drop speckle noise
func (s *Segmenter) Segment(frame gocv.Mat, preset ColorPreset) gocv.Mat {
	if frame.Empty() {
		return gocv.NewMat()
	}

	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), frame.Rows(), frame.Cols(), gocv.MatTypeCV8U)
	if len(preset.Ranges) == 0 {
		return mask
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	part := gocv.NewMat()
	defer part.Close()
	for _, r := range preset.Ranges {
		gocv.InRangeWithScalar(hsv, r.Lower.Scalar(), r.Upper.Scalar(), &part)
		gocv.BitwiseOr(mask, part, &mask)
	}

	tmp := gocv.NewMat()
	defer tmp.Close()
	for i := 0; i < MorphIterations; i++ {
		gocv.Erode(mask, &tmp, s.kernel)
		tmp.CopyTo(&mask)
	}
	for i := 0; i < MorphIterations; i++ {
		gocv.Dilate(mask, &tmp, s.kernel)
		tmp.CopyTo(&mask)
	}

	return mask
}

// Close releases the structuring element.
func (s *Segmenter) Close() {
	if !s.kernel.Empty() {
		s.kernel.Close()
		s.kernel = gocv.NewMat()
	}
}
