// Package render executes game draw instructions on camera frames.
package render

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ayusman/colorcatch/internal/game"
)

// Renderer draws game.Instructions onto BGR frames.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw executes ins on frame in order. mask is the single-channel
// segmentation mask used by mask preview instructions; it may be empty.
func (r *Renderer) Draw(frame *gocv.Mat, mask gocv.Mat, ins []game.Instruction) {
	if frame == nil || frame.Empty() {
		return
	}

	for _, in := range ins {
		switch in.Kind {
		case game.KindCircle:
			gocv.Circle(frame, in.Center, in.Radius, in.Color, in.Thickness)
		case game.KindPolygon:
			r.polygon(frame, in)
		case game.KindText:
			r.text(frame, in)
		case game.KindShade:
			r.shade(frame, in)
		case game.KindMaskPreview:
			r.maskPreview(frame, mask, in.Rect)
		}
	}
}

func (r *Renderer) polygon(frame *gocv.Mat, in game.Instruction) {
	if len(in.Points) < 3 {
		return
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{in.Points})
	defer pv.Close()
	gocv.FillPoly(frame, pv, in.Color)
}

func (r *Renderer) text(frame *gocv.Mat, in game.Instruction) {
	font := hersheyFont(in.Font)
	origin := in.Origin
	if in.Centered {
		size := gocv.GetTextSize(in.Text, font, in.Scale, in.Thickness)
		origin = image.Pt((frame.Cols()-size.X)/2, (frame.Rows()+size.Y)/2)
	}
	gocv.PutText(frame, in.Text, origin, font, in.Scale, in.Color, in.Thickness)
}

// shade blends a filled rectangle over the frame:
// dst = alpha*color + (1-alpha)*frame.
func (r *Renderer) shade(frame *gocv.Mat, in game.Instruction) {
	rect := in.Rect.Intersect(bounds(*frame))
	if rect.Empty() {
		return
	}

	region := frame.Region(rect)
	defer region.Close()

	overlay := region.Clone()
	defer overlay.Close()

	gocv.Rectangle(&overlay, image.Rect(0, 0, rect.Dx(), rect.Dy()), in.Color, game.Filled)
	gocv.AddWeighted(overlay, in.Alpha, region, 1-in.Alpha, 0, &region)
}

// maskPreview scales mask into rect and pastes it as a gray BGR image.
func (r *Renderer) maskPreview(frame *gocv.Mat, mask gocv.Mat, rect image.Rectangle) {
	if mask.Empty() {
		return
	}
	clipped := rect.Intersect(bounds(*frame))
	if clipped.Empty() {
		return
	}

	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(mask, &small, rect.Size(), 0, 0, gocv.InterpolationLinear)

	bgr := gocv.NewMat()
	defer bgr.Close()
	if small.Channels() == 1 {
		gocv.CvtColor(small, &bgr, gocv.ColorGrayToBGR)
	} else {
		small.CopyTo(&bgr)
	}

	src := bgr.Region(clipped.Sub(rect.Min))
	defer src.Close()
	dst := frame.Region(clipped)
	defer dst.Close()
	src.CopyTo(&dst)
}

func bounds(m gocv.Mat) image.Rectangle {
	return image.Rect(0, 0, m.Cols(), m.Rows())
}

func hersheyFont(f game.Font) gocv.HersheyFont {
	if f == game.FontDuplex {
		return gocv.FontHersheyDuplex
	}
	return gocv.FontHersheySimplex
}
