package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// maxFrameDelta caps the per-frame time step. A window losing vsync or
// the process getting suspended must not make the round clock jump.
const maxFrameDelta = 250 * time.Millisecond

// App is the ebiten.Game glue: it measures frame time, turns input into
// taps and hands both to the navigator.
type App struct {
	log *zap.Logger
	nav *Navigator

	width, height int
	lastFrame     time.Time
	touchIDs      []ebiten.TouchID
	pointer       pointer
}

// NewApp creates the game loop driver for a started navigator.
func NewApp(nav *Navigator, width, height int, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		log:    log.Named("app"),
		nav:    nav,
		width:  width,
		height: height,
	}
}

func (a *App) Update() error {
	// Escape is the maintenance exit; the kiosk has no visible quit.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.log.Info("shutting down")
		return ebiten.Termination
	}

	now := time.Now()
	var dt time.Duration
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame)
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	a.lastFrame = now

	var taps []tap
	taps, a.touchIDs = justPressedTaps(a.touchIDs)
	for _, t := range taps {
		a.nav.HandleTap(t.x, t.y)
	}

	moved, lifted := a.pointer.track(a.touchIDs)
	switch {
	case moved:
		a.nav.HandleDrag(a.pointer.x, a.pointer.y)
	case lifted:
		a.nav.HandleRelease(a.pointer.x, a.pointer.y)
	}

	a.nav.Update(dt)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.nav.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
