package style

// Layout constants used across screens. The panel is a fixed 720x720
// touch screen, so everything is sized in absolute pixels.
const (
	// Standard spacing and padding values
	DefaultPadding = 16
	DefaultSpacing = 16
	SmallSpacing   = 8
	LargeSpacing   = 24

	// Minimum tap target for toddler fingers
	MinTapSize = 96

	// Menu cards
	MenuCardWidth  = 300
	MenuCardHeight = 220

	// Show/video grid cards
	GridCardWidth  = 200
	GridCardHeight = 160
	GridColumns    = 3

	// Back button in screen corners
	BackButtonPadding = 20

	// Text scales for the 7x13 base face
	TitleTextScale  = 4.0
	CardTextScale   = 3.0
	LabelTextScale  = 2.0
	BannerTextScale = 5.0
)
