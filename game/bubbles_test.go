package game

import (
	"math/rand"
	"testing"
)

func newTestField(t *testing.T) *BubbleField {
	t.Helper()
	f := NewBubbleField(DefaultBubbleConfig(), rand.New(rand.NewSource(7)))
	f.Start()
	return f
}

func TestStartFillsField(t *testing.T) {
	f := newTestField(t)
	if got := len(f.Bubbles()); got != DefaultBubbleConfig().Count {
		t.Errorf("bubble count = %d, want %d", got, DefaultBubbleConfig().Count)
	}
	if f.Pops() != 0 {
		t.Errorf("pops = %d, want 0", f.Pops())
	}
}

func TestBubblesStayOnScreen(t *testing.T) {
	f := newTestField(t)
	cfg := DefaultBubbleConfig()
	for _, b := range f.Bubbles() {
		if b.X-b.Radius < 0 || b.X+b.Radius > cfg.Width ||
			b.Y-b.Radius < 0 || b.Y+b.Radius > cfg.Height {
			t.Errorf("bubble at (%.0f, %.0f) r=%.0f leaves the screen", b.X, b.Y, b.Radius)
		}
		if b.Radius < cfg.RadiusMin || b.Radius > cfg.RadiusMax {
			t.Errorf("bubble radius %.0f outside [%v, %v]", b.Radius, cfg.RadiusMin, cfg.RadiusMax)
		}
	}
}

func TestPopHitRespawns(t *testing.T) {
	f := newTestField(t)
	target := f.Bubbles()[0]

	popped, ok := f.Pop(target.X, target.Y)
	if !ok {
		t.Fatal("tap on a bubble center did not pop")
	}
	if popped != target {
		t.Errorf("popped %+v, want %+v", popped, target)
	}
	if got := len(f.Bubbles()); got != DefaultBubbleConfig().Count {
		t.Errorf("bubble count after pop = %d, want %d", got, DefaultBubbleConfig().Count)
	}
	if f.Pops() != 1 {
		t.Errorf("pops = %d, want 1", f.Pops())
	}
}

func TestPopMissDoesNothing(t *testing.T) {
	f := NewBubbleField(BubbleConfig{
		Width: 720, Height: 720, Count: 1, RadiusMin: 30, RadiusMax: 30,
	}, rand.New(rand.NewSource(3)))
	f.Start()
	b := f.Bubbles()[0]

	// Just outside the rim.
	if _, ok := f.Pop(b.X+b.Radius+1, b.Y); ok {
		t.Error("tap outside the bubble popped it")
	}
	if f.Pops() != 0 {
		t.Errorf("pops = %d, want 0", f.Pops())
	}
	if f.Bubbles()[0] != b {
		t.Error("missed tap replaced the bubble")
	}
}

func TestManyPopsKeepPopulationStable(t *testing.T) {
	f := newTestField(t)
	for i := 0; i < 100; i++ {
		b := f.Bubbles()[i%len(f.Bubbles())]
		if _, ok := f.Pop(b.X, b.Y); !ok {
			t.Fatalf("pop %d missed its own center", i)
		}
	}
	if f.Pops() != 100 {
		t.Errorf("pops = %d, want 100", f.Pops())
	}
	if got := len(f.Bubbles()); got != DefaultBubbleConfig().Count {
		t.Errorf("bubble count = %d, want %d", got, DefaultBubbleConfig().Count)
	}
}

func TestStartResetsPops(t *testing.T) {
	f := newTestField(t)
	b := f.Bubbles()[0]
	f.Pop(b.X, b.Y)

	f.Start()
	if f.Pops() != 0 {
		t.Errorf("pops after restart = %d, want 0", f.Pops())
	}
}
