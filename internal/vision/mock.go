package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// MockTracker is a test implementation of the Tracker interface.
// It replays a scripted sequence of detections, one per Locate call.
type MockTracker struct {
	points []image.Point
	found  []bool
	index  int
	calls  int
}

// NewMockTracker creates a MockTracker that reports nothing until scripted.
func NewMockTracker() *MockTracker {
	return &MockTracker{}
}

// Push appends a detection at p to the script.
func (m *MockTracker) Push(p image.Point) {
	m.points = append(m.points, p)
	m.found = append(m.found, true)
}

// PushMiss appends a frame with no detection to the script.
func (m *MockTracker) PushMiss() {
	m.points = append(m.points, image.Point{})
	m.found = append(m.found, false)
}

// Locate returns the next scripted result. Once the script is exhausted the
// last entry repeats.
func (m *MockTracker) Locate(mask gocv.Mat) (image.Point, bool) {
	m.calls++
	if len(m.points) == 0 {
		return image.Point{}, false
	}

	i := m.index
	if i >= len(m.points) {
		i = len(m.points) - 1
	} else {
		m.index++
	}
	return m.points[i], m.found[i]
}

// Calls returns how many times Locate was invoked.
func (m *MockTracker) Calls() int {
	return m.calls
}
