package render

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDisplay records shown frames and replays scripted key presses for testing.
type MockDisplay struct {
	mu     sync.Mutex
	keys   []int
	shown  int
	last   gocv.Mat
	closed bool
}

func NewMockDisplay() *MockDisplay {
	return &MockDisplay{last: gocv.NewMat()}
}

// PressAt scripts key to be reported on the n-th call to Key (0-based).
func (d *MockDisplay) PressAt(n int, key int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.keys) <= n {
		d.keys = append(d.keys, NoKey)
	}
	d.keys[n] = key
}

func (d *MockDisplay) Show(frame gocv.Mat) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	frame.CopyTo(&d.last)
	d.shown++
	return nil
}

func (d *MockDisplay) Key() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.keys) == 0 {
		return NoKey
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Shown returns how many frames have been displayed.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Last returns a copy of the most recently shown frame. The caller closes it.
func (d *MockDisplay) Last() gocv.Mat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last.Clone()
}

// Closed reports whether Close was called.
func (d *MockDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Release frees the copy of the last frame.
func (d *MockDisplay) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last.Close()
}
