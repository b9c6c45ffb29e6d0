// Package app wires camera capture, color tracking, game rules, rendering,
// sound and tray control into the Color Catcher game loop.
package app

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/ayusman/colorcatch/internal/audio"
	"github.com/ayusman/colorcatch/internal/capture"
	"github.com/ayusman/colorcatch/internal/config"
	"github.com/ayusman/colorcatch/internal/game"
	"github.com/ayusman/colorcatch/internal/render"
	"github.com/ayusman/colorcatch/internal/vision"
)

// Controller is an out-of-window source of game events that also shows
// the game status, such as the system tray.
type Controller interface {
	Events() <-chan game.Event
	SetStatus(s game.State)
}

// Config holds configuration options for the application.
type Config struct {
	// Settings are the loaded game settings; nil means config.Default().
	Settings *config.Config
	// Rand drives spawning and particles; nil seeds from the clock.
	Rand *rand.Rand
	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

// App is the game: it owns every collaborator and runs the frame loop on
// the calling goroutine.
type App struct {
	settings   *config.Config
	clock      func() time.Time
	camera     capture.Camera
	display    render.Display
	renderer   *render.Renderer
	tracker    vision.Tracker
	player     audio.Player
	controller Controller
	machine    *game.Machine
	lastStatus game.State
}

// New creates a new App instance with the given configuration. The camera
// is created but not opened; the window is created when Run starts unless
// a display was set.
func New(config Config) *App {
	settings := config.Settings
	if settings == nil {
		settings = defaultSettings()
	}

	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}

	camera := capture.NewCamera(settings.CameraID, settings.Width, settings.Height)
	camera.SetFPS(settings.FPS)

	return &App{
		settings: settings,
		clock:    clock,
		camera:   camera,
		renderer: render.NewRenderer(),
		tracker:  vision.NewContourTracker(settings.MinArea),
		player:   audio.Mute{},
		machine: game.NewMachine(game.Config{
			Bounds:  image.Pt(settings.Width, settings.Height),
			Presets: settings.Presets,
			Rand:    config.Rand,
		}, clock()),
	}
}

// SetCamera replaces the frame source.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDisplay replaces the output window.
func (a *App) SetDisplay(d render.Display) {
	a.display = d
}

// SetTracker replaces the mask tracker.
func (a *App) SetTracker(t vision.Tracker) {
	a.tracker = t
}

// SetPlayer replaces the sound effect player.
func (a *App) SetPlayer(p audio.Player) {
	a.player = p
}

// SetController attaches an extra event source such as the system tray.
func (a *App) SetController(c Controller) {
	a.controller = c
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Machine returns the game state machine.
func (a *App) Machine() *game.Machine {
	return a.machine
}

// Run opens the camera and plays until the player quits, ctx is cancelled
// or a frame cannot be read. Quitting and cancellation return nil; a capture
// failure is returned wrapped. The camera, window and audio are released
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("failed to open camera: %w", err)
	}

	if a.display == nil {
		a.display = render.NewWindow(render.WindowTitle)
	}

	segmenter := vision.NewSegmenter()
	defer segmenter.Close()
	defer a.release()

	log.Printf("Game loop started, tracking %s", a.machine.Preset().Name)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return nil
		default:
		}

		quit, err := a.step(segmenter)
		if err != nil {
			return err
		}
		if quit {
			log.Println("Quit requested")
			return nil
		}
	}
}

func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if err := a.display.Close(); err != nil {
		log.Printf("Error closing window: %v", err)
	}
	if err := a.player.Close(); err != nil {
		log.Printf("Error closing audio: %v", err)
	}

	log.Println("Game loop stopped")
}

func defaultSettings() *config.Config {
	return config.Default()
}
