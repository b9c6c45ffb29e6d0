// Package tray provides a system tray menu for controlling Color Catcher.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"

	"github.com/ayusman/colorcatch/internal/game"
)

// DefaultBuffer is the event channel capacity used by New.
const DefaultBuffer = 8

// Tray represents the system tray menu. Menu clicks are delivered as game
// events on a buffered channel that the game loop drains once per frame.
type Tray struct {
	events chan game.Event
	mu     sync.RWMutex

	// Menu items stored for later updates
	menuStatus  *systray.MenuItem
	menuStart   *systray.MenuItem
	menuRestart *systray.MenuItem
}

// New creates a new Tray whose event channel holds up to buffer clicks.
func New(buffer int) *Tray {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Tray{
		events: make(chan game.Event, buffer),
	}
}

// Events returns the channel menu clicks are delivered on.
func (t *Tray) Events() <-chan game.Event {
	return t.events
}

// Start registers the tray menu. The event loop is shared with the video
// window, so Start does not block.
func (t *Tray) Start() {
	systray.Register(t.onReady, t.onExit)
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	systray.Quit()
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Color Catcher")
	systray.SetTooltip("Color Catcher - catch falling shapes with a colored object")

	t.mu.Lock()
	t.menuStatus = systray.AddMenuItem(StatusText(game.State{Calibration: true, Lives: game.InitialLives, Level: 1}), "Current game")
	t.menuStatus.Disable()
	systray.AddSeparator()

	t.menuStart = systray.AddMenuItem("Start", "Finish calibration and start playing")
	menuColor := systray.AddMenuItem("Change Color", "Track the next color preset")
	t.menuRestart = systray.AddMenuItem("Restart", "Start a new round")
	t.menuRestart.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Color Catcher")
	start, restart := t.menuStart, t.menuRestart
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-start.ClickedCh:
				t.emit(game.EventConfirm)
			case <-menuColor.ClickedCh:
				t.emit(game.EventCycleColor)
			case <-restart.ClickedCh:
				t.emit(game.EventRestart)
			case <-menuQuit.ClickedCh:
				t.emit(game.EventQuit)
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

// emit queues ev without blocking. It reports false when the buffer is full
// and the click was dropped.
func (t *Tray) emit(ev game.Event) bool {
	select {
	case t.events <- ev:
		return true
	default:
		return false
	}
}

// SetStatus refreshes the menu for the given state. It is safe to call
// before the tray is ready.
func (t *Tray) SetStatus(s game.State) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuStatus == nil {
		return
	}

	t.menuStatus.SetTitle(StatusText(s))

	if s.Calibration {
		t.menuStart.Enable()
	} else {
		t.menuStart.Disable()
	}

	if s.Over {
		t.menuRestart.Enable()
	} else {
		t.menuRestart.Disable()
	}
}

// StatusText describes s in one short line for the status menu item.
func StatusText(s game.State) string {
	switch s.Phase() {
	case game.PhaseCalibration:
		return "Calibrating"
	case game.PhaseAwaitingMove:
		return "Move your object to start"
	case game.PhaseGameOver:
		return fmt.Sprintf("Game over - score %d", s.Score)
	default:
		return fmt.Sprintf("Score %d - Level %d - Lives %d", s.Score, s.Level, s.Lives)
	}
}
