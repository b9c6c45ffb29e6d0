package render

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/colorcatch/internal/game"
)

// WindowTitle is the title of the game window.
const WindowTitle = "Color Catcher Game"

// NoKey is returned by Display.Key when no key was pressed.
const NoKey = -1

// Display shows frames and reports key presses.
type Display interface {
	Show(frame gocv.Mat) error
	// Key polls the keyboard briefly and returns the pressed key or NoKey.
	Key() int
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window titled title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

func (w *Window) Show(frame gocv.Mat) error {
	w.win.IMShow(frame)
	return nil
}

// Key waits 1ms for a key press.
func (w *Window) Key() int {
	return w.win.WaitKey(1)
}

func (w *Window) Close() error {
	return w.win.Close()
}

// KeyEvent maps a key code to a game event: q quits, space confirms,
// c cycles the color and r restarts.
func KeyEvent(key int) game.Event {
	if key < 0 {
		return game.EventNone
	}

	switch key & 0xFF {
	case 'q':
		return game.EventQuit
	case ' ':
		return game.EventConfirm
	case 'c':
		return game.EventCycleColor
	case 'r':
		return game.EventRestart
	default:
		return game.EventNone
	}
}
