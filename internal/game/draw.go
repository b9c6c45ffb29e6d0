package game

import (
	"fmt"
	"image"
	"image/color"
)

// Kind selects how an Instruction is drawn.
type Kind int

const (
	// KindCircle draws a disc or ring at Center with Radius.
	KindCircle Kind = iota
	// KindPolygon fills the polygon described by Points.
	KindPolygon
	// KindText writes Text at Origin, or centered on the screen.
	KindText
	// KindShade blends Color over Rect with opacity Alpha.
	KindShade
	// KindMaskPreview pastes a scaled copy of the segmentation mask into Rect.
	KindMaskPreview
)

// Font is a text face understood by the renderer.
type Font int

const (
	FontSimplex Font = iota
	FontDuplex
)

// Filled is the thickness value that fills a circle.
const Filled = -1

// Instruction is one drawing primitive.
type Instruction struct {
	Kind      Kind
	Color     color.RGBA
	Center    image.Point
	Radius    int
	Thickness int
	Points    []image.Point
	Text      string
	Origin    image.Point
	Font      Font
	Scale     float64
	Centered  bool
	Rect      image.Rectangle
	Alpha     float64
}

// Disc returns a filled circle.
func Disc(center image.Point, radius int, c color.RGBA) Instruction {
	return Instruction{Kind: KindCircle, Center: center, Radius: radius, Color: c, Thickness: Filled}
}

// Ring returns a circle outline.
func Ring(center image.Point, radius int, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindCircle, Center: center, Radius: radius, Color: c, Thickness: thickness}
}

// Polygon returns a filled polygon.
func Polygon(pts []image.Point, c color.RGBA) Instruction {
	return Instruction{Kind: KindPolygon, Points: pts, Color: c}
}

// Text returns a text label with its baseline starting at origin.
func Text(s string, origin image.Point, font Font, scale float64, c color.RGBA, thickness int) Instruction {
	return Instruction{Kind: KindText, Text: s, Origin: origin, Font: font, Scale: scale, Color: c, Thickness: thickness}
}

// Shade returns a translucent filled rectangle.
func Shade(r image.Rectangle, c color.RGBA, alpha float64) Instruction {
	return Instruction{Kind: KindShade, Rect: r, Color: c, Alpha: alpha}
}

// MaskPreview returns the mask inset instruction.
func MaskPreview(r image.Rectangle) Instruction {
	return Instruction{Kind: KindMaskPreview, Rect: r}
}

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black  = color.RGBA{A: 255}
	gray   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	cyan   = color.RGBA{G: 255, B: 255, A: 255}
)

// HUD layout.
const (
	hudHeight     = 80
	hudAlpha      = 0.3
	gameOverAlpha = 0.7
	lifeRadius    = 20
	lifeSpacing   = 60
	markerRadius  = 40
	markerFill    = 35
)

// Mask preview layout.
const (
	PreviewWidth  = 320
	PreviewHeight = 180
	previewInset  = 10
)

// PreviewRect returns where the mask preview goes for a playfield of bounds.
func PreviewRect(bounds image.Point) image.Rectangle {
	return image.Rect(previewInset, bounds.Y-PreviewHeight-previewInset, previewInset+PreviewWidth, bounds.Y-previewInset)
}

// Draw returns the overlay for the current frame, back to front: tracking
// marker, objects, particles, HUD, banners and the calibration mask preview.
func (m *Machine) Draw(tracked image.Point, ok bool) []Instruction {
	s := m.state
	w, h := m.bounds.X, m.bounds.Y
	var out []Instruction

	if ok {
		switch {
		case s.Calibration:
			out = append(out,
				Ring(tracked, markerRadius, green, 3),
				Disc(tracked, markerFill, green),
				Text("Object Detected!", image.Pt(tracked.X-70, tracked.Y-50), FontSimplex, 0.7, green, 2),
			)
		case s.Active():
			out = append(out,
				Ring(tracked, markerRadius, green, 3),
				Disc(tracked, markerFill, green),
			)
		}
	}

	if s.Active() {
		for i := range m.objects {
			out = append(out, m.objects[i].Instructions()...)
		}
		out = append(out, m.particles.Instructions()...)
	}

	out = append(out,
		Shade(image.Rect(0, 0, w, hudHeight), black, hudAlpha),
		Text(fmt.Sprintf("SCORE: %d", s.Score), image.Pt(20, 50), FontDuplex, 1.2, yellow, 3),
	)
	for i := 0; i < s.Lives; i++ {
		out = append(out, Disc(image.Pt(w-50-i*lifeSpacing, 40), lifeRadius, red))
	}
	out = append(out, Text(fmt.Sprintf("LEVEL: %d", s.Level), image.Pt(w/2-100, 50), FontDuplex, 1.2, cyan, 3))

	switch {
	case s.Calibration:
		out = append(out,
			Text("CALIBRATION MODE", image.Pt(w/2-200, 150), FontDuplex, 1.2, yellow, 3),
			Text(fmt.Sprintf("Hold a %s object (ball, glove, marker)", m.Preset().Name), image.Pt(w/2-350, 220), FontSimplex, 1, white, 2),
			Text("Press SPACE when ready to start", image.Pt(w/2-300, 270), FontSimplex, 1, white, 2),
			Text("Or press 'C' to use different color", image.Pt(w/2-300, 320), FontSimplex, 1, gray, 2),
		)
	case !s.Started:
		t := Text("Move your object to start!", image.Point{}, FontDuplex, 1.5, white, 3)
		t.Centered = true
		out = append(out, t)
	}

	if s.Over {
		out = append(out,
			Shade(image.Rect(0, 0, w, h), black, gameOverAlpha),
			Text("GAME OVER!", image.Pt(w/2-200, h/2-50), FontDuplex, 2.5, red, 5),
			Text(fmt.Sprintf("Final Score: %d", s.Score), image.Pt(w/2-180, h/2+50), FontDuplex, 1.5, white, 3),
			Text("Press 'R' to restart or 'Q' to quit", image.Pt(w/2-300, h/2+120), FontSimplex, 1, white, 2),
		)
	}

	if s.Calibration {
		preview := PreviewRect(m.bounds)
		out = append(out,
			MaskPreview(preview),
			Text("Detection View", image.Pt(15, preview.Min.Y-10), FontSimplex, 0.6, white, 2),
		)
	}

	return out
}
