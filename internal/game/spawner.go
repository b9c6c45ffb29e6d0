package game

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Spawn tuning.
const (
	// SpawnMarginX keeps objects this far from the left and right edges.
	SpawnMarginX = 50
	// SpawnY is the starting height, just above the visible area.
	SpawnY = -50
	// MinObjectSize and MaxObjectSize bound the random object size.
	MinObjectSize = 30
	MaxObjectSize = 60
	// BaseSpeed is the fall speed at level 0; each level adds SpeedPerLevel.
	BaseSpeed     = 3.0
	SpeedPerLevel = 0.5
)

// Spawn cadence in seconds.
const (
	InitialSpawnSeconds  = 1.5
	MinSpawnSeconds      = 0.5
	SpawnStepPerLevelSec = 0.1
)

// Palette holds the colors falling objects are drawn in.
var Palette = [...]color.RGBA{
	{B: 255, A: 255},         // blue
	{G: 255, A: 255},         // green
	{R: 255, A: 255},         // red
	{G: 255, B: 255, A: 255}, // cyan
	{R: 255, B: 255, A: 255}, // magenta
	{R: 255, G: 255, A: 255}, // yellow
}

// Spawner creates falling objects with randomized attributes.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a Spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn returns a new object for the given level inside bounds.
func (s *Spawner) Spawn(level int, bounds image.Point) FallingObject {
	x := bounds.X / 2
	if span := bounds.X - 2*SpawnMarginX; span >= 0 {
		x = SpawnMarginX + s.rng.Intn(span+1)
	}

	return FallingObject{
		X:     float64(x),
		Y:     SpawnY,
		Speed: FallSpeed(level),
		Size:  MinObjectSize + s.rng.Intn(MaxObjectSize-MinObjectSize+1),
		Color: Palette[s.rng.Intn(len(Palette))],
		Shape: Shapes[s.rng.Intn(len(Shapes))],
	}
}

// FallSpeed returns the per-tick fall speed at level.
func FallSpeed(level int) float64 {
	return BaseSpeed + float64(level)*SpeedPerLevel
}

// SpawnInterval returns the time between spawns at level.
func SpawnInterval(level int) time.Duration {
	secs := math.Max(MinSpawnSeconds, InitialSpawnSeconds-float64(level)*SpawnStepPerLevelSec)
	return time.Duration(math.Round(secs * float64(time.Second)))
}
