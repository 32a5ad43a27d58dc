package game

import (
	"math/rand"
)

// Bubble is one poppable bubble.
type Bubble struct {
	X, Y   float64
	Radius float64
}

// BubbleConfig tunes a bubble field.
type BubbleConfig struct {
	Width, Height float64
	Count         int // bubbles kept on screen
	RadiusMin     float64
	RadiusMax     float64
}

// DefaultBubbleConfig returns the bubble-pop tuning for the 720x720 panel.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Width:     720,
		Height:    720,
		Count:     12,
		RadiusMin: 30,
		RadiusMax: 65,
	}
}

// BubbleField is the untimed pop game: a fixed population of bubbles
// where every pop respawns a new one somewhere else. There is no
// failure state and no clock; the game ends when the player leaves.
// Owned by the frame loop, not safe for concurrent use.
type BubbleField struct {
	cfg     BubbleConfig
	rng     *rand.Rand
	bubbles []Bubble
	pops    int
}

func NewBubbleField(cfg BubbleConfig, rng *rand.Rand) *BubbleField {
	return &BubbleField{cfg: cfg, rng: rng}
}

// Start fills the field with fresh bubbles and zeroes the pop count.
func (f *BubbleField) Start() {
	f.pops = 0
	f.bubbles = f.bubbles[:0]
	for i := 0; i < f.cfg.Count; i++ {
		f.bubbles = append(f.bubbles, f.spawn())
	}
}

// Pop tests a tap against the field. A hit removes the bubble, spawns a
// replacement and returns the popped bubble for the screen's effects.
func (f *BubbleField) Pop(x, y float64) (Bubble, bool) {
	for i, b := range f.bubbles {
		dx := x - b.X
		dy := y - b.Y
		if dx*dx+dy*dy < b.Radius*b.Radius {
			f.bubbles[i] = f.bubbles[len(f.bubbles)-1]
			f.bubbles = f.bubbles[:len(f.bubbles)-1]
			f.bubbles = append(f.bubbles, f.spawn())
			f.pops++
			return b, true
		}
	}
	return Bubble{}, false
}

// Bubbles returns the live bubbles. The slice is owned by the field.
func (f *BubbleField) Bubbles() []Bubble { return f.bubbles }

// Pops returns how many bubbles have been popped since Start.
func (f *BubbleField) Pops() int { return f.pops }

// spawn places a new bubble, trying a few times to avoid overlapping an
// existing one. Crowded fields settle for the last attempt.
func (f *BubbleField) spawn() Bubble {
	radius := f.cfg.RadiusMin + f.rng.Float64()*(f.cfg.RadiusMax-f.cfg.RadiusMin)
	var b Bubble
	for attempt := 0; attempt < 50; attempt++ {
		b = Bubble{
			X:      radius + 10 + f.rng.Float64()*(f.cfg.Width-2*(radius+10)),
			Y:      radius + 10 + f.rng.Float64()*(f.cfg.Height-2*(radius+10)),
			Radius: radius,
		}
		if !f.overlaps(b) {
			break
		}
	}
	return b
}

func (f *BubbleField) overlaps(b Bubble) bool {
	for _, other := range f.bubbles {
		dx := b.X - other.X
		dy := b.Y - other.Y
		minDist := b.Radius + other.Radius + 5
		if dx*dx+dy*dy < minDist*minDist {
			return true
		}
	}
	return false
}
