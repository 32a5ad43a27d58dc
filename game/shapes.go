package game

import (
	"math"
	"math/rand"
	"time"
)

// ShapeKind enumerates the sorter's pieces.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeTriangle
	ShapeStar
	ShapeHexagon
	shapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeStar:
		return "star"
	case ShapeHexagon:
		return "hexagon"
	}
	return "unknown"
}

// Shape is one draggable piece with its matching cutout.
type Shape struct {
	Kind             ShapeKind
	X, Y             float64
	TargetX, TargetY float64
	Placed           bool
	Snap             float64 // seconds since snapping home, caps at snapTime
}

const (
	snapTime  = 0.3 // seconds of grow-and-settle after a snap
	grabSlack = 10  // extra hit-test radius around a piece

	// Board layout, top area scatter and bottom row of cutouts.
	targetRaise = 150
	scatterMinY = 130
	scatterMaxY = 300
	scatterInsX = 120
)

// Scale is the brief grow-and-settle pulse after a piece snaps home.
func (s Shape) Scale() float64 {
	if !s.Placed || s.Snap >= snapTime {
		return 1
	}
	t := s.Snap / snapTime
	if t < 0.4 {
		return 1 + 0.3*(t/0.4)
	}
	return 1.3 - 0.3*((t-0.4)/0.6)
}

// SorterConfig tunes a shape board.
type SorterConfig struct {
	Width, Height float64
	Size          float64 // piece half-size / radius
	SnapDist      float64 // drop-to-cutout distance that counts as home
	CelebrateFor  time.Duration
}

// DefaultSorterConfig returns the sorter tuning for the 720x720 panel.
func DefaultSorterConfig() SorterConfig {
	return SorterConfig{
		Width:        720,
		Height:       720,
		Size:         70,
		SnapDist:     55,
		CelebrateFor: 2500 * time.Millisecond,
	}
}

// ShapeBoard is the drag-and-match sorter core: five pieces scattered in
// the upper half, their cutouts in a row along the bottom. Dropping a
// piece near its own cutout snaps it home; a full board celebrates for a
// moment and rebuilds itself. Owned by the frame loop, not safe for
// concurrent use.
type ShapeBoard struct {
	cfg    SorterConfig
	rng    *rand.Rand
	shapes []Shape

	dragging   int // index into shapes, -1 when nothing is held
	offX, offY float64

	celebrating   bool
	celebrateLeft time.Duration
}

func NewShapeBoard(cfg SorterConfig, rng *rand.Rand) *ShapeBoard {
	return &ShapeBoard{cfg: cfg, rng: rng, dragging: -1}
}

// Start scatters fresh pieces and lays out the cutout row.
func (b *ShapeBoard) Start() {
	b.shapes = b.shapes[:0]
	b.dragging = -1
	b.celebrating = false
	b.celebrateLeft = 0

	n := int(shapeKindCount)
	spacing := b.cfg.Width / float64(n+1)
	targetY := b.cfg.Height - targetRaise
	for i := 0; i < n; i++ {
		b.shapes = append(b.shapes, Shape{
			Kind:    ShapeKind(i),
			X:       scatterInsX + b.rng.Float64()*(b.cfg.Width-2*scatterInsX),
			Y:       scatterMinY + b.rng.Float64()*(scatterMaxY-scatterMinY),
			TargetX: spacing * float64(i+1),
			TargetY: targetY,
		})
	}
}

// Press tries to grab the topmost loose piece under (x, y). A grabbed
// piece moves to the top of the draw order and follows Drag until
// Release. Presses during the celebration are ignored.
func (b *ShapeBoard) Press(x, y float64) bool {
	if b.celebrating {
		return false
	}
	for i := len(b.shapes) - 1; i >= 0; i-- {
		s := b.shapes[i]
		if s.Placed {
			continue
		}
		if math.Hypot(x-s.X, y-s.Y) > b.cfg.Size+grabSlack {
			continue
		}
		b.shapes = append(append(b.shapes[:i:i], b.shapes[i+1:]...), s)
		b.dragging = len(b.shapes) - 1
		b.offX = s.X - x
		b.offY = s.Y - y
		return true
	}
	return false
}

// Drag moves the held piece with the pointer, keeping the grab offset.
func (b *ShapeBoard) Drag(x, y float64) {
	if b.dragging < 0 {
		return
	}
	b.shapes[b.dragging].X = x + b.offX
	b.shapes[b.dragging].Y = y + b.offY
}

// Release drops the held piece. Dropping within SnapDist of the piece's
// own cutout snaps it home; anywhere else it just stays put. The snapped
// piece is returned for the screen's effects, and solved reports whether
// this drop completed the board.
func (b *ShapeBoard) Release() (snapped Shape, placed, solved bool) {
	if b.dragging < 0 {
		return Shape{}, false, false
	}
	s := &b.shapes[b.dragging]
	b.dragging = -1

	if math.Hypot(s.X-s.TargetX, s.Y-s.TargetY) >= b.cfg.SnapDist {
		return Shape{}, false, false
	}
	s.X = s.TargetX
	s.Y = s.TargetY
	s.Placed = true
	s.Snap = 0

	for _, other := range b.shapes {
		if !other.Placed {
			return *s, true, false
		}
	}
	b.celebrating = true
	b.celebrateLeft = b.cfg.CelebrateFor
	return *s, true, true
}

// Update advances snap pulses and the celebration; a finished
// celebration rebuilds the board.
func (b *ShapeBoard) Update(dt time.Duration) {
	sec := dt.Seconds()
	for i := range b.shapes {
		if b.shapes[i].Placed && b.shapes[i].Snap < snapTime {
			b.shapes[i].Snap += sec
		}
	}
	if b.celebrating {
		b.celebrateLeft -= dt
		if b.celebrateLeft <= 0 {
			b.Start()
		}
	}
}

// Config returns the board's tuning.
func (b *ShapeBoard) Config() SorterConfig { return b.cfg }

// Shapes returns the pieces in draw order, held piece last. The slice is
// owned by the board.
func (b *ShapeBoard) Shapes() []Shape { return b.shapes }

// Dragging returns the index of the held piece, or -1.
func (b *ShapeBoard) Dragging() int { return b.dragging }

// Celebrating reports whether the solved-board celebration is running.
func (b *ShapeBoard) Celebrating() bool { return b.celebrating }

// CelebrationLeft returns how long the celebration has to run.
func (b *ShapeBoard) CelebrationLeft() time.Duration { return b.celebrateLeft }
