package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// DefaultMinArea is the smallest contour area, in square pixels, that counts
// as the tracked object. Anything at or below it is treated as noise.
const DefaultMinArea = 500

// Tracker defines the interface for locating the tracked object in a mask.
type Tracker interface {
	// Locate returns the object's position, or false when nothing qualifies.
	Locate(mask gocv.Mat) (image.Point, bool)
}

// ContourTracker picks the largest external contour and reports its centroid.
type ContourTracker struct {
	minArea float64
}

// NewContourTracker creates a ContourTracker. Values of minArea less than or
// equal to 0 fall back to DefaultMinArea.
func NewContourTracker(minArea float64) *ContourTracker {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}
	return &ContourTracker{minArea: minArea}
}

// MinArea returns the noise threshold in square pixels.
func (t *ContourTracker) MinArea() float64 {
	return t.minArea
}

// Locate finds the largest blob in mask and returns its centroid.
// Equal-area contours are resolved in favor of the first one found.
func (t *ContourTracker) Locate(mask gocv.Mat) (image.Point, bool) {
	if mask.Empty() {
		return image.Point{}, false
	}

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	best := -1
	bestArea := 0.0
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if best < 0 || area > bestArea {
			best = i
			bestArea = area
		}
	}

	if best < 0 || bestArea <= t.minArea {
		return image.Point{}, false
	}

	return ContourMoments(contours.At(best).ToPoints()).Centroid()
}
