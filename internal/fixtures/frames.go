// Package fixtures builds synthetic frames and masks for tests.
package fixtures

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Solid colors expressed as RGBA; gocv converts them to BGR when drawing.
var (
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// BlankFrame returns an all-black BGR frame.
func BlankFrame(width, height int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
}

// BlobFrame returns a black frame with a filled disc of color c at center.
func BlobFrame(width, height int, center image.Point, radius int, c color.RGBA) gocv.Mat {
	frame := BlankFrame(width, height)
	gocv.Circle(&frame, center, radius, c, -1)
	return frame
}

// Mask returns a single-channel mask with each rectangle filled with 255.
func Mask(width, height int, rects ...image.Rectangle) gocv.Mat {
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8U)
	for _, r := range rects {
		gocv.Rectangle(&mask, r, White, -1)
	}
	return mask
}

// Sequence returns one BlobFrame per center, for playback through a mock
// camera. The caller closes every frame.
func Sequence(width, height int, centers []image.Point, radius int, c color.RGBA) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, len(centers))
	for _, center := range centers {
		frame := BlobFrame(width, height, center, radius, c)
		frames = append(frames, &frame)
	}
	return frames
}

// CloseAll releases every frame in frames.
func CloseAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
