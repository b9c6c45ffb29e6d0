package app

import (
	"fmt"
	"log"
	"time"

	"github.com/ayusman/colorcatch/internal/audio"
	"github.com/ayusman/colorcatch/internal/capture"
	"github.com/ayusman/colorcatch/internal/game"
	"github.com/ayusman/colorcatch/internal/render"
	"github.com/ayusman/colorcatch/internal/vision"
)

// step runs one frame of the game loop and reports whether the player quit.
//
// Pipeline logic:
// 1. Read a frame and mirror it
// 2. Segment the active preset and locate the largest blob
// 3. Advance the game and announce what happened
// 4. Draw the overlay and show the frame
// 5. Apply the key press and any pending tray clicks
func (a *App) step(segmenter *vision.Segmenter) (bool, error) {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		return false, fmt.Errorf("failed to read frame: %w", err)
	}
	defer frame.Close()

	if a.settings.Mirror {
		capture.Mirror(frame)
	}

	mask := segmenter.Segment(*frame, a.machine.Preset())
	defer mask.Close()

	tracked, ok := a.tracker.Locate(mask)

	now := a.clock()
	a.announce(a.machine.Update(now, tracked, ok))

	a.renderer.Draw(frame, mask, a.machine.Draw(tracked, ok))
	if err := a.display.Show(*frame); err != nil {
		log.Printf("Error showing frame: %v", err)
	}

	for _, ev := range a.pendingEvents() {
		if ev == game.EventQuit {
			return true, nil
		}
		a.apply(ev, now)
	}

	a.publishStatus()
	return false, nil
}

// pendingEvents returns the key press followed by every queued controller
// event, without blocking.
func (a *App) pendingEvents() []game.Event {
	var events []game.Event
	if ev := render.KeyEvent(a.display.Key()); ev != game.EventNone {
		events = append(events, ev)
	}

	if a.controller == nil {
		return events
	}
	for {
		select {
		case ev := <-a.controller.Events():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func (a *App) apply(ev game.Event, now time.Time) {
	if !a.machine.Handle(ev, now) {
		return
	}

	switch ev {
	case game.EventConfirm:
		log.Println("Calibration complete, move your object to start")
	case game.EventCycleColor:
		log.Printf("Color changed to: %s", a.machine.Preset().Name)
	case game.EventRestart:
		log.Printf("Game restarted, round %s", a.machine.State().Round)
	}
}

// announce logs and plays the outcome of one update.
func (a *App) announce(res game.Result) {
	s := a.machine.State()

	if res.Started {
		log.Printf("Round %s started", s.Round)
	}
	if res.Caught > 0 {
		a.player.Play(audio.CueCatch)
	}
	if res.LevelUp {
		log.Printf("Level %d reached, spawning every %v", s.Level, s.SpawnInterval)
		a.player.Play(audio.CueLevelUp)
	}

	switch {
	case res.Ended:
		log.Printf("Round %s over, final score %d", s.Round, s.Score)
		a.player.Play(audio.CueGameOver)
	case res.Missed > 0:
		a.player.Play(audio.CueMiss)
	}
}

// publishStatus pushes the state to the controller when it changed.
func (a *App) publishStatus() {
	if a.controller == nil {
		return
	}

	s := a.machine.State()
	if s == a.lastStatus {
		return
	}
	a.lastStatus = s
	a.controller.SetStatus(s)
}
