package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenID names a navigable screen. The set is closed and known at
// startup; screens register under exactly one id.
type ScreenID int

const (
	// ScreenNone is the "came from nowhere" previous-screen marker passed
	// to the root's first OnEnter.
	ScreenNone ScreenID = iota
	ScreenMainMenu
	ScreenGamesMenu
	ScreenWhack
	ScreenBubbles
	ScreenShapeSorter
	ScreenFireworks
	ScreenShows
	ScreenVideos
	ScreenRemote
)

func (id ScreenID) String() string {
	switch id {
	case ScreenNone:
		return "none"
	case ScreenMainMenu:
		return "main-menu"
	case ScreenGamesMenu:
		return "games-menu"
	case ScreenWhack:
		return "whack"
	case ScreenBubbles:
		return "bubbles"
	case ScreenShapeSorter:
		return "shape-sorter"
	case ScreenFireworks:
		return "fireworks"
	case ScreenShows:
		return "shows"
	case ScreenVideos:
		return "videos"
	case ScreenRemote:
		return "remote"
	}
	return "unknown"
}

// Screen is the contract every navigable view implements. The navigator
// drives exactly one screen at a time; inactive screens get no taps, no
// updates and no draws. Screens may keep private state across activations;
// anything that must not survive re-entry is reset in OnEnter.
type Screen interface {
	// OnEnter runs every time the screen becomes active, including
	// re-activation via back navigation. prev is the screen the user came
	// from, or ScreenNone for the root's first activation.
	OnEnter(prev ScreenID)
	// OnExit runs when the screen stops being active, strictly before the
	// incoming screen's OnEnter.
	OnExit()
	// HandleTap receives a tap in screen coordinates.
	HandleTap(x, y int)
	// Update advances the screen by the frame's elapsed time.
	Update(dt time.Duration)
	// Draw renders the screen.
	Draw(screen *ebiten.Image)
}

// Dragger is an optional Screen extension for screens that follow the
// pointer between tap and lift. The tap is the press; HandleDrag reports
// the pointer while it stays down and HandleRelease reports where it
// lifted. Plain Screens only ever see taps.
type Dragger interface {
	HandleDrag(x, y int)
	HandleRelease(x, y int)
}
