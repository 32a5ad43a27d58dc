package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func newTestShow(t *testing.T) *FireworksShow {
	t.Helper()
	return NewFireworksShow(DefaultFireworksConfig(), rand.New(rand.NewSource(11)))
}

const frame = 16 * time.Millisecond

func TestLaunchAimsRocketAtTap(t *testing.T) {
	s := newTestShow(t)

	s.Launch(100, 200)
	rockets := s.Rockets()
	if len(rockets) != 1 {
		t.Fatalf("rockets = %d, want 1", len(rockets))
	}
	r := rockets[0]
	if r.X != 360 || r.Y != 720 {
		t.Errorf("rocket starts at (%.0f, %.0f), want bottom center (360, 720)", r.X, r.Y)
	}
	if r.TargetX != 100 || r.TargetY != 200 {
		t.Errorf("target = (%.0f, %.0f), want (100, 200)", r.TargetX, r.TargetY)
	}
	if r.Speed < 500 || r.Speed > 650 {
		t.Errorf("speed = %.0f, want within [500, 650]", r.Speed)
	}
}

func TestLaunchClampsLowTarget(t *testing.T) {
	s := newTestShow(t)

	s.Launch(360, 719)
	if got := s.Rockets()[0].TargetY; got != 640 {
		t.Errorf("target y = %.0f, want clamped to 640", got)
	}
}

func TestRocketFliesTowardTarget(t *testing.T) {
	s := newTestShow(t)
	s.Launch(360, 100)
	before := s.Rockets()[0]

	s.Update(frame)

	after := s.Rockets()[0]
	db := math.Hypot(before.TargetX-before.X, before.TargetY-before.Y)
	da := math.Hypot(after.TargetX-after.X, after.TargetY-after.Y)
	if da >= db {
		t.Errorf("distance to target grew: %.1f -> %.1f", db, da)
	}
}

func TestArrivalBursts(t *testing.T) {
	s := newTestShow(t)
	s.Launch(360, 300)

	for i := 0; len(s.Rockets()) > 0; i++ {
		if i > 300 {
			t.Fatal("rocket never reached its target")
		}
		s.Update(frame)
	}

	sparks := s.Sparks()
	if len(sparks) < sparkCountMin || len(sparks) > sparkCountMax {
		t.Fatalf("sparks = %d, want within [%d, %d]", len(sparks), sparkCountMin, sparkCountMax)
	}
	for _, p := range sparks {
		if math.Hypot(p.X-360, p.Y-300) > 40 {
			t.Errorf("fresh spark at (%.0f, %.0f), want near the burst point", p.X, p.Y)
		}
		if p.Life <= 0 || p.Life > sparkLifeMax {
			t.Errorf("spark life = %.2f, want within (0, %.1f]", p.Life, sparkLifeMax)
		}
	}
}

func TestSparksBurnOut(t *testing.T) {
	s := newTestShow(t)
	s.Launch(200, 200)

	for i := 0; i < 300; i++ {
		s.Update(frame)
	}
	if len(s.Rockets()) != 0 {
		t.Errorf("rockets = %d, want 0", len(s.Rockets()))
	}
	if len(s.Sparks()) != 0 {
		t.Errorf("sparks = %d, want all burned out after %v", len(s.Sparks()), 300*frame)
	}
}

func TestStartClearsTheSky(t *testing.T) {
	s := newTestShow(t)
	s.Launch(100, 100)
	s.Launch(600, 200)
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}

	s.Start()
	if len(s.Rockets()) != 0 || len(s.Sparks()) != 0 {
		t.Errorf("rockets = %d sparks = %d after Start, want empty sky",
			len(s.Rockets()), len(s.Sparks()))
	}
}
