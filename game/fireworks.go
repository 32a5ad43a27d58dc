package game

import (
	"math"
	"math/rand"
	"time"
)

// Rocket is a shell in flight toward its burst point.
type Rocket struct {
	X, Y             float64
	TargetX, TargetY float64
	Speed            float64
	Hue              float64 // degrees, 0..360
}

// Spark is one glowing particle of a burst.
type Spark struct {
	X, Y          float64
	VX, VY        float64
	Gravity       float64
	Life, MaxLife float64 // seconds
	Radius        float64
	Hue           float64
}

// burst shapes, picked at random per rocket.
type burstPattern int

const (
	burstStarburst burstPattern = iota
	burstRing
	burstCascade
	burstSpiral
	burstPatternCount
)

const (
	burstRadius    = 10 // rocket explodes within this distance of its target
	sparkCountMin  = 50
	sparkCountMax  = 80
	sparkLifeMin   = 1.5
	sparkLifeMax   = 2.5
	targetFloorGap = 80 // bursts stay at least this far above the bottom
)

// FireworksConfig sizes the sky.
type FireworksConfig struct {
	Width, Height float64
}

// DefaultFireworksConfig returns the tuning for the 720x720 panel.
func DefaultFireworksConfig() FireworksConfig {
	return FireworksConfig{Width: 720, Height: 720}
}

// FireworksShow is the tap-to-launch fireworks core: every tap sends a
// rocket from the bottom center toward the tap point, and arrival bursts
// it into a patterned spray of sparks. No score, no clock, no failure.
// Owned by the frame loop, not safe for concurrent use.
type FireworksShow struct {
	cfg     FireworksConfig
	rng     *rand.Rand
	rockets []Rocket
	sparks  []Spark
}

func NewFireworksShow(cfg FireworksConfig, rng *rand.Rand) *FireworksShow {
	return &FireworksShow{cfg: cfg, rng: rng}
}

// Start clears the sky.
func (s *FireworksShow) Start() {
	s.rockets = s.rockets[:0]
	s.sparks = s.sparks[:0]
}

// Launch sends a rocket toward (x, y). The target is clamped upward so
// the burst stays on screen.
func (s *FireworksShow) Launch(x, y float64) {
	if y > s.cfg.Height-targetFloorGap {
		y = s.cfg.Height - targetFloorGap
	}
	s.rockets = append(s.rockets, Rocket{
		X:       s.cfg.Width / 2,
		Y:       s.cfg.Height,
		TargetX: x,
		TargetY: y,
		Speed:   500 + s.rng.Float64()*150,
		Hue:     s.rng.Float64() * 360,
	})
}

// Update flies the rockets, bursts arrivals and ages the sparks.
func (s *FireworksShow) Update(dt time.Duration) {
	sec := dt.Seconds()

	liveRockets := s.rockets[:0]
	for _, r := range s.rockets {
		dx := r.TargetX - r.X
		dy := r.TargetY - r.Y
		dist := math.Hypot(dx, dy)
		if dist < burstRadius {
			s.burst(r.X, r.Y, r.Hue)
			continue
		}
		r.X += dx / dist * r.Speed * sec
		r.Y += dy / dist * r.Speed * sec
		liveRockets = append(liveRockets, r)
	}
	s.rockets = liveRockets

	liveSparks := s.sparks[:0]
	for _, p := range s.sparks {
		p.Life -= sec
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * sec
		p.Y += p.VY * sec
		p.VY += p.Gravity * sec
		liveSparks = append(liveSparks, p)
	}
	s.sparks = liveSparks
}

// Rockets returns the shells in flight. The slice is owned by the show.
func (s *FireworksShow) Rockets() []Rocket { return s.rockets }

// Sparks returns the live burst particles. The slice is owned by the show.
func (s *FireworksShow) Sparks() []Spark { return s.sparks }

func (s *FireworksShow) burst(x, y, baseHue float64) {
	pattern := burstPattern(s.rng.Intn(int(burstPatternCount)))
	count := sparkCountMin + s.rng.Intn(sparkCountMax-sparkCountMin+1)

	for i := 0; i < count; i++ {
		hue := math.Mod(baseHue+s.rng.Float64()*50-25+360, 360)
		life := sparkLifeMin + s.rng.Float64()*(sparkLifeMax-sparkLifeMin)

		var vx, vy float64
		switch pattern {
		case burstRing:
			angle := 2*math.Pi/float64(count)*float64(i) + s.rng.Float64()*0.2 - 0.1
			speed := 120 + s.rng.Float64()*50
			vx = math.Cos(angle) * speed
			vy = math.Sin(angle) * speed
		case burstCascade:
			angle := -math.Pi*0.8 + s.rng.Float64()*math.Pi*0.6
			speed := 80 + s.rng.Float64()*120
			vx = math.Cos(angle)*speed + s.rng.Float64()*60 - 30
			vy = math.Sin(angle)*speed - s.rng.Float64()*60
		case burstSpiral:
			angle := 2 * math.Pi / float64(count) * float64(i) * 3
			speed := 60 + float64(i)/float64(count)*160
			vx = math.Cos(angle) * speed
			vy = math.Sin(angle) * speed
		default: // starburst
			angle := s.rng.Float64() * 2 * math.Pi
			speed := 60 + s.rng.Float64()*160
			vx = math.Cos(angle) * speed
			vy = math.Sin(angle) * speed
		}

		s.sparks = append(s.sparks, Spark{
			X:       x + s.rng.Float64()*4 - 2,
			Y:       y + s.rng.Float64()*4 - 2,
			VX:      vx,
			VY:      vy,
			Gravity: 60 + s.rng.Float64()*60,
			Life:    life,
			MaxLife: life,
			Radius:  2 + s.rng.Float64()*2,
			Hue:     hue,
		})
	}
}
