// Package game holds the headless mini-game logic. Nothing in here touches
// Ebiten or the network, so rounds can be driven entirely from tests.
package game

import (
	"math/rand"
	"time"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Point is a spawn position in screen coordinates.
type Point struct {
	X, Y float64
}

// Target is one tappable critter. SpawnedAt is on the round clock, not wall
// time, so a paused or abandoned round cannot age targets.
type Target struct {
	Hole      int
	X, Y      float64
	SpawnedAt time.Duration
	TTL       time.Duration
}

// Age returns how long the target has existed at round time now.
func (t Target) Age(now time.Duration) time.Duration {
	return now - t.SpawnedAt
}

// Expired reports whether the target's time is up at round time now.
// The boundary counts as expired: a tap landing exactly at TTL scores
// nothing.
func (t Target) Expired(now time.Duration) bool {
	return t.Age(now) >= t.TTL
}

// Config tunes a round. All fields must be set; DefaultConfig matches the
// whack-a-critter game.
type Config struct {
	Duration   time.Duration
	MaxTargets int
	SpawnMin   time.Duration // inter-spawn interval bounds
	SpawnMax   time.Duration
	TTLMin     time.Duration // per-target lifetime bounds
	TTLMax     time.Duration
	Holes      []Point
	HitRadius  float64
}

// DefaultConfig returns the whack-a-critter tuning: a 3x3 hole grid on the
// 720x720 panel, 45 second rounds, at most 3 critters up at once.
func DefaultConfig() Config {
	holes := make([]Point, 0, 9)
	for _, y := range []float64{250, 410, 570} {
		for _, x := range []float64{120, 360, 600} {
			holes = append(holes, Point{X: x, Y: y})
		}
	}
	return Config{
		Duration:   45 * time.Second,
		MaxTargets: 3,
		SpawnMin:   800 * time.Millisecond,
		SpawnMax:   1500 * time.Millisecond,
		TTLMin:     2 * time.Second,
		TTLMax:     3200 * time.Millisecond,
		Holes:      holes,
		HitRadius:  44,
	}
}

// Round is the timed-session state machine:
// idle -> running -> ended, with Start restarting from either end state.
// It is owned by the frame loop and is not safe for concurrent use.
type Round struct {
	cfg Config
	rng *rand.Rand

	phase     Phase
	elapsed   time.Duration
	remaining time.Duration
	score     int
	targets   []Target // spawn order, oldest first
	nextSpawn time.Duration
}

// NewRound creates an idle round. rng drives spawn placement and timing;
// tests pass a seeded source.
func NewRound(cfg Config, rng *rand.Rand) *Round {
	return &Round{cfg: cfg, rng: rng}
}

// Start begins (or restarts) a round: score zeroed, clock reset, targets
// cleared, first spawn scheduled.
func (r *Round) Start() {
	r.phase = PhaseRunning
	r.elapsed = 0
	r.remaining = r.cfg.Duration
	r.score = 0
	r.targets = r.targets[:0]
	// First critter comes up right away; the randomized interval applies
	// between spawns.
	r.nextSpawn = 0
}

// Reset abandons the round and returns to idle. Used when the player
// navigates away mid-round.
func (r *Round) Reset() {
	r.phase = PhaseIdle
	r.elapsed = 0
	r.remaining = 0
	r.score = 0
	r.targets = r.targets[:0]
}

// Update advances the round clock. Outside of running it does nothing.
func (r *Round) Update(dt time.Duration) {
	if r.phase != PhaseRunning {
		return
	}

	r.elapsed += dt
	r.remaining -= dt
	if r.remaining < 0 {
		r.remaining = 0
	}

	// Expiry before anything else: a target at its TTL boundary is gone
	// this frame no matter what.
	r.sweepExpired()

	if r.remaining == 0 {
		r.targets = r.targets[:0]
		r.phase = PhaseEnded
		return
	}

	r.trySpawn()
}

// Tap hit-tests a tap against the active targets, newest first, and scores
// the first hit. A miss is a no-op; there are no penalties.
func (r *Round) Tap(x, y float64) bool {
	if r.phase != PhaseRunning {
		return false
	}
	for i := len(r.targets) - 1; i >= 0; i-- {
		t := r.targets[i]
		if t.Expired(r.elapsed) {
			continue
		}
		dx, dy := x-t.X, y-t.Y
		if dx*dx+dy*dy <= r.cfg.HitRadius*r.cfg.HitRadius {
			r.targets = append(r.targets[:i], r.targets[i+1:]...)
			r.score++
			return true
		}
	}
	return false
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase { return r.phase }

// Config returns the round's tuning.
func (r *Round) Config() Config { return r.cfg }

// Score returns the number of targets hit this round.
func (r *Round) Score() int { return r.score }

// Remaining returns the clamped countdown.
func (r *Round) Remaining() time.Duration { return r.remaining }

// Elapsed returns the round clock, which only advances while running.
func (r *Round) Elapsed() time.Duration { return r.elapsed }

// Targets returns the live targets in spawn order. Callers must not mutate
// the returned slice.
func (r *Round) Targets() []Target { return r.targets }

func (r *Round) sweepExpired() {
	kept := r.targets[:0]
	for _, t := range r.targets {
		if !t.Expired(r.elapsed) {
			kept = append(kept, t)
		}
	}
	r.targets = kept
}

// trySpawn places a new target once the inter-spawn interval has elapsed.
// If every hole is occupied or the cap is reached, the attempt is skipped
// and retried next frame; the schedule only advances on success.
func (r *Round) trySpawn() {
	if r.elapsed < r.nextSpawn {
		return
	}
	if len(r.targets) >= r.cfg.MaxTargets {
		return
	}

	hole, ok := r.freeHole()
	if !ok {
		return
	}

	p := r.cfg.Holes[hole]
	r.targets = append(r.targets, Target{
		Hole:      hole,
		X:         p.X,
		Y:         p.Y,
		SpawnedAt: r.elapsed,
		TTL:       r.duration(r.cfg.TTLMin, r.cfg.TTLMax),
	})
	r.nextSpawn = r.elapsed + r.interval()
}

func (r *Round) freeHole() (int, bool) {
	occupied := make(map[int]bool, len(r.targets))
	for _, t := range r.targets {
		occupied[t.Hole] = true
	}
	free := make([]int, 0, len(r.cfg.Holes))
	for i := range r.cfg.Holes {
		if !occupied[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[r.rng.Intn(len(free))], true
}

func (r *Round) interval() time.Duration {
	return r.duration(r.cfg.SpawnMin, r.cfg.SpawnMax)
}

func (r *Round) duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(r.rng.Int63n(int64(max-min)))
}
