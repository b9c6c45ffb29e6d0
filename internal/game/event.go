package game

// Event is a discrete player command.
type Event int

const (
	// EventNone means nothing happened this tick.
	EventNone Event = iota
	// EventQuit ends the game loop after the current frame.
	EventQuit
	// EventConfirm leaves calibration.
	EventConfirm
	// EventCycleColor switches to the next color preset.
	EventCycleColor
	// EventRestart starts over after a game over.
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventConfirm:
		return "confirm"
	case EventCycleColor:
		return "cycle-color"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
