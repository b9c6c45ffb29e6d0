package vision

import "image"

// Moments holds the spatial moments of a closed polygon up to first order.
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
}

// ContourMoments computes the moments of the polygon described by pts using
// Green's theorem, the same way OpenCV treats a contour passed to moments().
// The result is orientation independent: M00 is never negative.
func ContourMoments(pts []image.Point) Moments {
	if len(pts) < 3 {
		return Moments{}
	}

	var a00, a10, a01 float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		xp, yp := float64(prev.X), float64(prev.Y)
		x, y := float64(p.X), float64(p.Y)

		cross := xp*y - x*yp
		a00 += cross
		a10 += cross * (xp + x)
		a01 += cross * (yp + y)

		prev = p
	}

	m := Moments{M00: a00 / 2, M10: a10 / 6, M01: a01 / 6}
	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}
	return m
}

// Centroid returns the center of mass truncated to integer pixels.
// It returns false when M00 is zero.
func (m Moments) Centroid() (image.Point, bool) {
	if m.M00 == 0 {
		return image.Point{}, false
	}
	return image.Pt(int(m.M10/m.M00), int(m.M01/m.M00)), true
}
