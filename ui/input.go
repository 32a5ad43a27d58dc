package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type tap struct {
	x, y int
}

// justPressedTaps collects this frame's new taps: touch presses on the
// panel plus the left mouse button for desktop testing. Only the press
// moment counts; holds and drags are not taps.
func justPressedTaps(touchIDs []ebiten.TouchID) ([]tap, []ebiten.TouchID) {
	var taps []tap

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, tap{x: x, y: y})
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, tap{x: x, y: y})
	}
	return taps, touchIDs
}

// pointer follows the primary press for drag-capable screens: the left
// mouse button on desktop, the first finger on the panel. It keeps the
// last known position so a lift still has coordinates after the touch
// is gone.
type pointer struct {
	down     bool
	viaTouch bool
	touch    ebiten.TouchID
	x, y     int
	live     []ebiten.TouchID
}

// track advances the pointer one frame. It reports whether the pointer
// is being held (moved) and whether it lifted this frame (lifted); the
// press frame itself reports neither, since the press already arrived
// as a tap. justPressed is this frame's new touch ids.
func (p *pointer) track(justPressed []ebiten.TouchID) (moved, lifted bool) {
	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.down, p.viaTouch = true, false
			p.x, p.y = ebiten.CursorPosition()
		} else if len(justPressed) > 0 {
			p.down, p.viaTouch = true, true
			p.touch = justPressed[0]
			p.x, p.y = ebiten.TouchPosition(p.touch)
		}
		return false, false
	}

	if p.viaTouch {
		p.live = ebiten.AppendTouchIDs(p.live[:0])
		for _, id := range p.live {
			if id == p.touch {
				p.x, p.y = ebiten.TouchPosition(id)
				return true, false
			}
		}
		p.down = false
		return false, true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.x, p.y = ebiten.CursorPosition()
		return true, false
	}
	p.down = false
	return false, true
}
