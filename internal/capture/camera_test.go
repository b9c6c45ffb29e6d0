package capture

import (
	"errors"
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name     string
		deviceID int
		width    int
		height   int
		wantSize image.Point
	}{
		{
			name:     "default resolution",
			deviceID: 0,
			width:    1280,
			height:   720,
			wantSize: image.Pt(1280, 720),
		},
		{
			name:     "custom resolution",
			deviceID: 1,
			width:    640,
			height:   480,
			wantSize: image.Pt(640, 480),
		},
		{
			name:     "zero falls back to default",
			deviceID: 2,
			width:    0,
			height:   480,
			wantSize: image.Pt(DefaultWidth, DefaultHeight),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.deviceID, tt.width, tt.height)

			if cam == nil {
				t.Fatal("NewCamera returned nil")
			}
			if got := cam.FPS(); got != DefaultFPS {
				t.Errorf("FPS() = %d, want %d (default)", got, DefaultFPS)
			}
			if got := cam.Size(); got != tt.wantSize {
				t.Errorf("Size() = %v, want %v", got, tt.wantSize)
			}
			if cam.IsOpen() {
				t.Error("camera should not be running initially")
			}
		})
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(0, DefaultWidth, DefaultHeight)

	tests := []struct {
		name    string
		fps     int
		wantFPS int
	}{
		{name: "set to 60", fps: 60, wantFPS: 60},
		{name: "set to 15", fps: 15, wantFPS: 15},
		{name: "set to 0 should keep previous", fps: 0, wantFPS: 15},
		{name: "set to negative should keep previous", fps: -5, wantFPS: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.SetFPS(tt.fps)

			if got := cam.FPS(); got != tt.wantFPS {
				t.Errorf("FPS() = %d, want %d", got, tt.wantFPS)
			}
		})
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(0, DefaultWidth, DefaultHeight)

	if err := cam.Open(); err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if mat.Cols() != DefaultWidth || mat.Rows() != DefaultHeight {
			t.Errorf("frame = %dx%d, want %dx%d", mat.Cols(), mat.Rows(), DefaultWidth, DefaultHeight)
		}
		mat.Close()
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera(0, DefaultWidth, DefaultHeight)

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera(0, DefaultWidth, DefaultHeight)

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on not opened camera should return nil, got: %v", err)
	}
}

func TestMirror(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gocv test in short mode")
	}

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 4, 6, gocv.MatTypeCV8UC3)
	defer frame.Close()
	frame.SetUCharAt(1, 0, 200) // row 1, column 0, blue channel

	Mirror(&frame)

	if got := frame.GetUCharAt(1, 5*3); got != 200 {
		t.Errorf("mirrored pixel = %d, want 200 at the right edge", got)
	}
	if got := frame.GetUCharAt(1, 0); got != 0 {
		t.Errorf("left edge = %d, want 0 after mirroring", got)
	}
}

func TestMirror_EmptyFrame(t *testing.T) {
	Mirror(nil)

	empty := gocv.NewMat()
	defer empty.Close()
	Mirror(&empty)

	if !empty.Empty() {
		t.Error("mirroring an empty frame should leave it empty")
	}
}
