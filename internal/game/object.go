// Package game implements the Color Catcher rules: spawning falling shapes,
// catching them with the tracked point, particles, scoring and the
// calibration, playing and game-over phases.
package game

import (
	"image"
	"image/color"
	"math"
)

// Shape is the kind of a falling object.
type Shape int

const (
	// ShapeCircle is a filled disc with a white outline.
	ShapeCircle Shape = iota
	// ShapeStar is a ten-vertex star.
	ShapeStar
	// ShapeHeart is two discs over a triangle.
	ShapeHeart
)

// Shapes lists every shape the spawner can produce.
var Shapes = [...]Shape{ShapeCircle, ShapeStar, ShapeHeart}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// CatchMargin is added to an object's size to get its catch radius.
const CatchMargin = 40

// FallingObject is a shape moving straight down at a constant speed.
type FallingObject struct {
	X      float64
	Y      float64
	Speed  float64
	Size   int
	Color  color.RGBA
	Shape  Shape
	Caught bool

	missed bool
}

// Center returns the object's position truncated to whole pixels.
func (o *FallingObject) Center() image.Point {
	return image.Pt(int(o.X), int(o.Y))
}

// Fall advances the object by one tick.
func (o *FallingObject) Fall() {
	o.Y += o.Speed
}

// Touches reports whether p is within the catch radius of the object.
func (o *FallingObject) Touches(p image.Point) bool {
	d := math.Hypot(float64(p.X)-o.X, float64(p.Y)-o.Y)
	return d < float64(o.Size+CatchMargin)
}

// Instructions returns the primitives that draw the object.
func (o *FallingObject) Instructions() []Instruction {
	center := o.Center()
	r := o.Size / 2

	switch o.Shape {
	case ShapeStar:
		return []Instruction{Polygon(StarVertices(center, r), o.Color)}
	case ShapeHeart:
		left, right, radius, tri := HeartParts(center, r)
		return []Instruction{
			Disc(left, radius, o.Color),
			Disc(right, radius, o.Color),
			Polygon(tri, o.Color),
		}
	default:
		return []Instruction{
			Disc(center, r, o.Color),
			Ring(center, r, white, 2),
		}
	}
}

// StarVertices returns the ten vertices of a star with outer radius r and
// inner radius r/2, starting straight up and going clockwise in 36° steps.
func StarVertices(center image.Point, r int) []image.Point {
	pts := make([]image.Point, 10)
	for i := range pts {
		angle := float64(i*36) * math.Pi / 180
		radius := r
		if i%2 == 1 {
			radius = r / 2
		}
		x := float64(center.X) + float64(radius)*math.Sin(angle)
		y := float64(center.Y) - float64(radius)*math.Cos(angle)
		pts[i] = image.Pt(int(x), int(y))
	}
	return pts
}

// HeartParts returns the two lobe centers, the lobe radius and the triangle
// of a heart drawn with half-size r.
func HeartParts(center image.Point, r int) (left, right image.Point, radius int, tri []image.Point) {
	left = image.Pt(center.X-r/4, center.Y-r/4)
	right = image.Pt(center.X+r/4, center.Y-r/4)
	radius = r / 3
	tri = []image.Point{
		image.Pt(center.X-r/2, center.Y-r/6),
		image.Pt(center.X+r/2, center.Y-r/6),
		image.Pt(center.X, center.Y+r/2),
	}
	return left, right, radius, tri
}
