package vision

import (
	"image"
	"testing"

	"github.com/ayusman/colorcatch/internal/fixtures"
	"gocv.io/x/gocv"
)

const (
	testWidth  = 640
	testHeight = 360
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSegmenter_Segment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	seg := NewSegmenter()
	defer seg.Close()

	presets := DefaultPresets()
	red, blue, green, yellow := presets[0], presets[1], presets[2], presets[3]

	tests := []struct {
		name     string
		preset   ColorPreset
		frame    func() gocv.Mat
		wantHits bool
	}{
		{
			name:   "red disc with red preset",
			preset: red,
			frame: func() gocv.Mat {
				return fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Red)
			},
			wantHits: true,
		},
		{
			name:   "blue disc with blue preset",
			preset: blue,
			frame: func() gocv.Mat {
				return fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Blue)
			},
			wantHits: true,
		},
		{
			name:   "green disc with green preset",
			preset: green,
			frame: func() gocv.Mat {
				return fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Green)
			},
			wantHits: true,
		},
		{
			name:   "yellow disc with yellow preset",
			preset: yellow,
			frame: func() gocv.Mat {
				return fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Yellow)
			},
			wantHits: true,
		},
		{
			name:   "blue disc with red preset",
			preset: red,
			frame: func() gocv.Mat {
				return fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Blue)
			},
			wantHits: false,
		},
		{
			name:   "black frame",
			preset: red,
			frame: func() gocv.Mat {
				return fixtures.BlankFrame(testWidth, testHeight)
			},
			wantHits: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := tt.frame()
			defer frame.Close()

			mask := seg.Segment(frame, tt.preset)
			defer mask.Close()

			if mask.Rows() != testHeight || mask.Cols() != testWidth {
				t.Fatalf("mask size = %dx%d, want %dx%d", mask.Cols(), mask.Rows(), testWidth, testHeight)
			}
			if mask.Channels() != 1 {
				t.Errorf("mask channels = %d, want 1", mask.Channels())
			}

			hits := gocv.CountNonZero(mask) > 0
			if hits != tt.wantHits {
				t.Errorf("mask has matches = %v, want %v", hits, tt.wantHits)
			}
		})
	}
}

func TestSegmenter_RemovesSpeckles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	seg := NewSegmenter()
	defer seg.Close()

	// A 3 pixel dot cannot survive two 5x5 erosions.
	frame := fixtures.BlobFrame(testWidth, testHeight, image.Pt(100, 100), 1, fixtures.Red)
	defer frame.Close()

	mask := seg.Segment(frame, DefaultPresets()[0])
	defer mask.Close()

	if n := gocv.CountNonZero(mask); n != 0 {
		t.Errorf("CountNonZero() = %d, want 0 after erosion", n)
	}
}

func TestSegmenter_EmptyInputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	seg := NewSegmenter()
	defer seg.Close()

	empty := gocv.NewMat()
	defer empty.Close()

	mask := seg.Segment(empty, DefaultPresets()[0])
	if !mask.Empty() {
		t.Error("Segment() of an empty frame should return an empty mask")
	}
	mask.Close()

	frame := fixtures.BlobFrame(testWidth, testHeight, image.Pt(320, 180), 40, fixtures.Red)
	defer frame.Close()

	mask = seg.Segment(frame, ColorPreset{Name: "NONE"})
	defer mask.Close()
	if n := gocv.CountNonZero(mask); n != 0 {
		t.Errorf("preset without ranges matched %d pixels, want 0", n)
	}
}

func TestSegmenter_Close_Multiple(t *testing.T) {
	seg := NewSegmenter()

	// Close multiple times should not panic
	seg.Close()
	seg.Close()
}

func TestNewContourTracker(t *testing.T) {
	tests := []struct {
		name    string
		minArea float64
		want    float64
	}{
		{name: "default", minArea: 0, want: DefaultMinArea},
		{name: "negative falls back", minArea: -3, want: DefaultMinArea},
		{name: "custom", minArea: 120, want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewContourTracker(tt.minArea)
			if got := tr.MinArea(); got != tt.want {
				t.Errorf("MinArea() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContourTracker_Locate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	tr := NewContourTracker(DefaultMinArea)

	tests := []struct {
		name   string
		rects  []image.Rectangle
		wantOK bool
		want   image.Point
	}{
		{
			name:   "empty mask",
			rects:  nil,
			wantOK: false,
		},
		{
			name:   "single large square",
			rects:  []image.Rectangle{image.Rect(100, 100, 200, 200)},
			wantOK: true,
			want:   image.Pt(150, 150),
		},
		{
			name: "largest of several blobs wins",
			rects: []image.Rectangle{
				image.Rect(10, 10, 40, 40),
				image.Rect(300, 100, 420, 220),
				image.Rect(500, 300, 530, 330),
			},
			wantOK: true,
			want:   image.Pt(360, 160),
		},
		{
			name:   "blob below minimum area",
			rects:  []image.Rectangle{image.Rect(10, 10, 30, 30)},
			wantOK: false,
		},
		{
			name:   "blob touching the origin",
			rects:  []image.Rectangle{image.Rect(0, 0, 60, 60)},
			wantOK: true,
			want:   image.Pt(30, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := fixtures.Mask(testWidth, testHeight, tt.rects...)
			defer mask.Close()

			got, ok := tr.Locate(mask)
			if ok != tt.wantOK {
				t.Fatalf("Locate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (abs(got.X-tt.want.X) > 1 || abs(got.Y-tt.want.Y) > 1) {
				t.Errorf("Locate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContourTracker_EmptyMat(t *testing.T) {
	tr := NewContourTracker(DefaultMinArea)

	empty := gocv.NewMat()
	defer empty.Close()

	if _, ok := tr.Locate(empty); ok {
		t.Error("Locate() on an empty Mat should report no detection")
	}
}

func TestSegmentAndLocate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	seg := NewSegmenter()
	defer seg.Close()
	tr := NewContourTracker(DefaultMinArea)

	center := image.Pt(420, 200)
	frame := fixtures.BlobFrame(testWidth, testHeight, center, 45, fixtures.Red)
	defer frame.Close()

	mask := seg.Segment(frame, DefaultPresets()[0])
	defer mask.Close()

	got, ok := tr.Locate(mask)
	if !ok {
		t.Fatal("expected the red disc to be tracked")
	}
	if abs(got.X-center.X) > 2 || abs(got.Y-center.Y) > 2 {
		t.Errorf("Locate() = %v, want near %v", got, center)
	}
}

func TestMockTracker(t *testing.T) {
	m := NewMockTracker()
	mask := gocv.NewMat()
	defer mask.Close()

	if _, ok := m.Locate(mask); ok {
		t.Error("unscripted MockTracker should report no detection")
	}

	m.Push(image.Pt(1, 2))
	m.PushMiss()
	m.Push(image.Pt(3, 4))

	if p, ok := m.Locate(mask); !ok || p != image.Pt(1, 2) {
		t.Errorf("Locate() = %v, %v, want (1,2), true", p, ok)
	}
	if _, ok := m.Locate(mask); ok {
		t.Error("second Locate() should be a miss")
	}
	for i := 0; i < 3; i++ {
		if p, ok := m.Locate(mask); !ok || p != image.Pt(3, 4) {
			t.Errorf("Locate() = %v, %v, want last entry repeated", p, ok)
		}
	}
	if m.Calls() != 6 {
		t.Errorf("Calls() = %d, want 6", m.Calls())
	}
}
