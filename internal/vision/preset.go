// Package vision locates a colored object in camera frames using HSV
// segmentation and contour analysis.
package vision

import "gocv.io/x/gocv"

// HSV is a color in OpenCV's 8-bit HSV space (H 0-180, S and V 0-255).
type HSV struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	V float64 `yaml:"v"`
}

// Scalar converts the color to a gocv.Scalar for use with InRange.
func (c HSV) Scalar() gocv.Scalar {
	return gocv.NewScalar(c.H, c.S, c.V, 0)
}

// ColorRange is an inclusive HSV interval.
type ColorRange struct {
	Lower HSV `yaml:"lower"`
	Upper HSV `yaml:"upper"`
}

// Contains reports whether c lies inside the range on every channel.
func (r ColorRange) Contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

// ColorPreset is a named set of one or two ranges. Two ranges are used for
// hues that straddle the origin, like red.
type ColorPreset struct {
	Name   string       `yaml:"name"`
	Ranges []ColorRange `yaml:"ranges"`
}

// DefaultPresets returns the built-in preset list: RED, BLUE, GREEN, YELLOW.
func DefaultPresets() []ColorPreset {
	return []ColorPreset{
		{
			Name: "RED",
			Ranges: []ColorRange{
				{Lower: HSV{0, 120, 70}, Upper: HSV{10, 255, 255}},
				{Lower: HSV{170, 120, 70}, Upper: HSV{180, 255, 255}},
			},
		},
		{
			Name:   "BLUE",
			Ranges: []ColorRange{{Lower: HSV{100, 150, 0}, Upper: HSV{140, 255, 255}}},
		},
		{
			Name:   "GREEN",
			Ranges: []ColorRange{{Lower: HSV{40, 40, 40}, Upper: HSV{80, 255, 255}}},
		},
		{
			Name:   "YELLOW",
			Ranges: []ColorRange{{Lower: HSV{20, 100, 100}, Upper: HSV{30, 255, 255}}},
		},
	}
}
