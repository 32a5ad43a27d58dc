package game

import (
	"math/rand"
	"testing"
	"time"
)

func newTestBoard(t *testing.T) *ShapeBoard {
	t.Helper()
	b := NewShapeBoard(DefaultSorterConfig(), rand.New(rand.NewSource(3)))
	b.Start()
	return b
}

func TestStartLaysOutBoard(t *testing.T) {
	b := newTestBoard(t)
	cfg := DefaultSorterConfig()

	shapes := b.Shapes()
	if len(shapes) != 5 {
		t.Fatalf("pieces = %d, want 5", len(shapes))
	}

	kinds := map[ShapeKind]bool{}
	for _, s := range shapes {
		kinds[s.Kind] = true
		if s.Placed {
			t.Errorf("%v starts placed", s.Kind)
		}
		if s.X < scatterInsX || s.X > cfg.Width-scatterInsX ||
			s.Y < scatterMinY || s.Y > scatterMaxY {
			t.Errorf("%v scattered to (%.0f, %.0f), outside the upper area", s.Kind, s.X, s.Y)
		}
		if s.TargetY != cfg.Height-targetRaise {
			t.Errorf("%v cutout y = %.0f, want %.0f", s.Kind, s.TargetY, cfg.Height-targetRaise)
		}
	}
	if len(kinds) != 5 {
		t.Errorf("kinds = %v, want all five distinct", kinds)
	}

	// Cutouts sit in an evenly spaced row, one slot per kind.
	spacing := cfg.Width / 6
	for _, s := range shapes {
		if want := spacing * float64(int(s.Kind)+1); s.TargetX != want {
			t.Errorf("%v cutout x = %.0f, want %.0f", s.Kind, s.TargetX, want)
		}
	}
}

func TestPressGrabsTopmostPiece(t *testing.T) {
	b := newTestBoard(t)

	// Spread the pieces out of grab range of each other, then stack the
	// first exactly under the second; the later piece in draw order is
	// on top and must win the grab.
	shapes := b.Shapes()
	for i := range shapes {
		shapes[i].X = 100 + float64(i)*170
		shapes[i].Y = 200
	}
	under, over := shapes[0].Kind, shapes[1].Kind
	shapes[0].X, shapes[0].Y = shapes[1].X, shapes[1].Y

	if !b.Press(shapes[1].X, shapes[1].Y) {
		t.Fatal("press on a stacked pair grabbed nothing")
	}
	held := b.Shapes()[b.Dragging()]
	if held.Kind != over {
		t.Errorf("grabbed %v, want the top piece %v (not %v)", held.Kind, over, under)
	}
}

func TestPressMissGrabsNothing(t *testing.T) {
	b := newTestBoard(t)

	if b.Press(5, 700) {
		t.Error("press on empty board space grabbed a piece")
	}
	if b.Dragging() != -1 {
		t.Errorf("dragging = %d, want -1", b.Dragging())
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	b := newTestBoard(t)
	s := b.Shapes()[len(b.Shapes())-1]

	// Grab 5px off center; the piece must keep that offset while moving.
	if !b.Press(s.X+5, s.Y+5) {
		t.Fatal("press on a piece grabbed nothing")
	}
	b.Drag(400, 500)

	held := b.Shapes()[b.Dragging()]
	if held.X != 395 || held.Y != 495 {
		t.Errorf("dragged piece at (%.0f, %.0f), want (395, 495)", held.X, held.Y)
	}
}

// dropOn grabs the topmost loose piece and drops it at (x, y).
func dropOn(t *testing.T, b *ShapeBoard, x, y float64) (Shape, bool, bool) {
	t.Helper()
	var grab Shape
	found := false
	for i := len(b.Shapes()) - 1; i >= 0; i-- {
		if !b.Shapes()[i].Placed {
			grab = b.Shapes()[i]
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no loose piece left to drop")
	}
	if !b.Press(grab.X, grab.Y) {
		t.Fatalf("could not grab %v at (%.0f, %.0f)", grab.Kind, grab.X, grab.Y)
	}
	b.Drag(x, y)
	return b.Release()
}

func TestDropNearOwnCutoutSnaps(t *testing.T) {
	b := newTestBoard(t)
	top := b.Shapes()[len(b.Shapes())-1]

	snapped, placed, solved := dropOn(t, b, top.TargetX+30, top.TargetY-20)
	if !placed {
		t.Fatal("drop within snap distance did not place")
	}
	if solved {
		t.Error("one piece must not solve the board")
	}
	if snapped.X != top.TargetX || snapped.Y != top.TargetY {
		t.Errorf("snapped to (%.0f, %.0f), want the cutout (%.0f, %.0f)",
			snapped.X, snapped.Y, top.TargetX, top.TargetY)
	}
}

func TestDropFarAwayJustStays(t *testing.T) {
	b := newTestBoard(t)

	_, placed, _ := dropOn(t, b, 400, 400)
	if placed {
		t.Fatal("drop in open space placed a piece")
	}
	dropped := b.Shapes()[len(b.Shapes())-1]
	if dropped.X != 400 || dropped.Y != 400 {
		t.Errorf("piece at (%.0f, %.0f), want left where it was dropped", dropped.X, dropped.Y)
	}
}

func TestDropOnWrongCutoutDoesNotSnap(t *testing.T) {
	b := newTestBoard(t)
	top := b.Shapes()[len(b.Shapes())-1]

	// Neighbouring cutouts are 120px apart, beyond snap distance from
	// the piece's own cutout.
	var wrong Shape
	for _, s := range b.Shapes() {
		if s.Kind != top.Kind {
			wrong = s
			break
		}
	}
	_, placed, _ := dropOn(t, b, wrong.TargetX, wrong.TargetY)
	if placed {
		t.Errorf("%v snapped into the %v cutout", top.Kind, wrong.Kind)
	}
}

func TestPlacedPieceCannotBeGrabbed(t *testing.T) {
	b := newTestBoard(t)
	top := b.Shapes()[len(b.Shapes())-1]

	if _, placed, _ := dropOn(t, b, top.TargetX, top.TargetY); !placed {
		t.Fatal("setup drop did not place")
	}
	if b.Press(top.TargetX, top.TargetY) {
		t.Error("placed piece was grabbed again")
	}
}

func solveBoard(t *testing.T, b *ShapeBoard) {
	t.Helper()
	for i := 0; i < 5; i++ {
		var target Shape
		found := false
		for j := len(b.Shapes()) - 1; j >= 0; j-- {
			if !b.Shapes()[j].Placed {
				target = b.Shapes()[j]
				found = true
				break
			}
		}
		if !found {
			t.Fatal("board ran out of loose pieces early")
		}
		if _, placed, _ := dropOn(t, b, target.TargetX, target.TargetY); !placed {
			t.Fatalf("%v did not place on its own cutout", target.Kind)
		}
	}
}

func TestSolvingCelebratesThenRebuilds(t *testing.T) {
	b := newTestBoard(t)
	solveBoard(t, b)

	if !b.Celebrating() {
		t.Fatal("solved board is not celebrating")
	}
	if b.Press(100, 200) {
		t.Error("press during the celebration grabbed a piece")
	}

	b.Update(DefaultSorterConfig().CelebrateFor + 10*time.Millisecond)
	if b.Celebrating() {
		t.Error("celebration never ended")
	}
	for _, s := range b.Shapes() {
		if s.Placed {
			t.Errorf("%v still placed after the rebuild", s.Kind)
		}
	}
}

func TestSnapPulseSettles(t *testing.T) {
	b := newTestBoard(t)
	top := b.Shapes()[len(b.Shapes())-1]
	if _, placed, _ := dropOn(t, b, top.TargetX, top.TargetY); !placed {
		t.Fatal("setup drop did not place")
	}

	fresh := b.Shapes()[len(b.Shapes())-1]
	if fresh.Scale() != 1 {
		t.Errorf("scale at snap instant = %.2f, want 1", fresh.Scale())
	}
	b.Update(60 * time.Millisecond)
	if got := b.Shapes()[len(b.Shapes())-1].Scale(); got <= 1 {
		t.Errorf("scale mid-pulse = %.2f, want above 1", got)
	}
	b.Update(time.Second)
	if got := b.Shapes()[len(b.Shapes())-1].Scale(); got != 1 {
		t.Errorf("scale after the pulse = %.2f, want settled back to 1", got)
	}
}
