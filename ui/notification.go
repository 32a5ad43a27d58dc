package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/avabox/gamebox/ui/style"
)

// Notification displays temporary messages on screen. Screens use it
// for transient feedback ("Playing Bluey!") that a toddler does not
// have to dismiss.
type Notification struct {
	message   string
	startTime time.Time
	duration  time.Duration
}

// NewNotification creates a new notification overlay
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.message = ""
}

// Draw renders the notification as a pill centered near the top of the
// screen, big enough to read from across the room.
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	bounds := screen.Bounds()
	screenWidth := bounds.Dx()

	textWidth, textHeight := text.Measure(n.message, style.FontFace(), 0)
	scale := style.LabelTextScale

	padding := 16
	bgWidth := int(textWidth*scale) + padding*2
	bgHeight := int(textHeight*scale) + padding*2

	bgX := (screenWidth - bgWidth) / 2
	bgY := 40

	bg := ebiten.NewImage(bgWidth, bgHeight)
	bg.Fill(color.RGBA{0, 0, 0, 153})

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(bg, opts)

	style.DrawLabel(screen, n.message,
		float64(bgX+bgWidth/2), float64(bgY+bgHeight/2), scale, color.White)
}
