package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Navigator owns which screen is active and the back-navigation history.
// It is driven only from the frame loop and is not safe for concurrent use.
//
// The history stack never stores the root screen: the root is the implicit
// bottom, so Back from any screen with an empty history lands on the root,
// and Back at the root does nothing.
type Navigator struct {
	log     *zap.Logger
	root    ScreenID
	screens map[ScreenID]Screen
	active  ScreenID
	history []ScreenID
	started bool

	// Transitions requested from inside OnEnter/OnExit are queued here and
	// applied after the in-flight transition, never inlined, so lifecycle
	// ordering and history stay consistent.
	dispatching bool
	pending     []pendingNav
}

type pendingNav struct {
	back bool
	id   ScreenID
}

// NewNavigator creates a navigator whose root screen is root. Screens must
// be registered before Start.
func NewNavigator(root ScreenID, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{
		log:     log.Named("nav"),
		root:    root,
		screens: make(map[ScreenID]Screen),
		active:  root,
	}
}

// Register adds a screen to the registry. Registering an id twice, or
// registering after Start, is a wiring bug and returns an error; the caller
// logs it and skips the screen rather than crashing the kiosk.
func (n *Navigator) Register(id ScreenID, s Screen) error {
	if n.started {
		return fmt.Errorf("register: screen %v registered after start", id)
	}
	if id == ScreenNone {
		return fmt.Errorf("register: %v is not a valid screen id", id)
	}
	if _, exists := n.screens[id]; exists {
		return fmt.Errorf("register: screen %v already registered", id)
	}
	n.screens[id] = s
	return nil
}

// Start activates the root screen and freezes the registry. Call once,
// after registration and before the first frame.
func (n *Navigator) Start() error {
	s, ok := n.screens[n.root]
	if !ok {
		return fmt.Errorf("start: root screen %v not registered", n.root)
	}
	n.started = true
	n.dispatching = true
	s.OnEnter(ScreenNone)
	n.dispatching = false
	n.drain()
	return nil
}

// Active returns the id of the active screen.
func (n *Navigator) Active() ScreenID { return n.active }

// History returns a copy of the back stack, oldest first.
func (n *Navigator) History() []ScreenID {
	out := make([]ScreenID, len(n.history))
	copy(out, n.history)
	return out
}

// GoTo makes id the active screen, pushing the current one onto the
// history. Navigating to the already-active screen is a no-op (no push, no
// lifecycle calls), so a double-tapped menu card cannot restart a game.
// Navigating to an unregistered id is logged and ignored.
func (n *Navigator) GoTo(id ScreenID) {
	if n.dispatching {
		n.pending = append(n.pending, pendingNav{id: id})
		return
	}
	n.applyGoTo(id)
	n.drain()
}

// Back returns to the previous screen, re-running its OnEnter. With an
// empty history it returns to the root, unless already there.
func (n *Navigator) Back() {
	if n.dispatching {
		n.pending = append(n.pending, pendingNav{back: true})
		return
	}
	n.applyBack()
	n.drain()
}

// HandleTap forwards a tap to the active screen.
func (n *Navigator) HandleTap(x, y int) {
	if s, ok := n.screens[n.active]; ok {
		s.HandleTap(x, y)
	}
}

// HandleDrag forwards pointer movement while it stays down. Only the
// active screen sees it, and only if it implements Dragger.
func (n *Navigator) HandleDrag(x, y int) {
	if d, ok := n.screens[n.active].(Dragger); ok {
		d.HandleDrag(x, y)
	}
}

// HandleRelease forwards the pointer lifting.
func (n *Navigator) HandleRelease(x, y int) {
	if d, ok := n.screens[n.active].(Dragger); ok {
		d.HandleRelease(x, y)
	}
}

// Update forwards elapsed time to the active screen only; nothing simulates
// in the background.
func (n *Navigator) Update(dt time.Duration) {
	if s, ok := n.screens[n.active]; ok {
		s.Update(dt)
	}
}

// Draw renders the active screen.
func (n *Navigator) Draw(screen *ebiten.Image) {
	if s, ok := n.screens[n.active]; ok {
		s.Draw(screen)
	}
}

func (n *Navigator) applyGoTo(id ScreenID) {
	if id == n.active {
		return
	}
	if _, ok := n.screens[id]; !ok {
		n.log.Error("navigation to unregistered screen ignored",
			zap.Stringer("screen", id),
			zap.Stringer("active", n.active))
		return
	}
	if n.active != n.root {
		n.history = append(n.history, n.active)
	}
	n.switchTo(id)
}

func (n *Navigator) applyBack() {
	var target ScreenID
	switch {
	case len(n.history) > 0:
		target = n.history[len(n.history)-1]
		n.history = n.history[:len(n.history)-1]
	case n.active != n.root:
		target = n.root
	default:
		return
	}
	n.switchTo(target)
}

// switchTo runs the lifecycle pair: OnExit on the outgoing screen strictly
// before OnEnter on the incoming one.
func (n *Navigator) switchTo(id ScreenID) {
	prev := n.active
	n.dispatching = true
	if s, ok := n.screens[prev]; ok {
		s.OnExit()
	}
	n.active = id
	n.screens[id].OnEnter(prev)
	n.dispatching = false

	n.log.Debug("screen transition",
		zap.Stringer("from", prev),
		zap.Stringer("to", id),
		zap.Int("history", len(n.history)))
}

func (n *Navigator) drain() {
	for len(n.pending) > 0 {
		next := n.pending[0]
		n.pending = n.pending[1:]
		if next.back {
			n.applyBack()
		} else {
			n.applyGoTo(next.id)
		}
	}
}
