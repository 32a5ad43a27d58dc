package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Theme colors. Bright and high-contrast; the whole UI is aimed at a
// toddler on a small square panel.
var (
	Background    = color.NRGBA{0x87, 0xce, 0xeb, 0xff} // Sky blue
	Surface       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	Primary       = color.NRGBA{0x4c, 0xaf, 0x50, 0xff} // Green
	PrimaryHover  = color.NRGBA{0x5c, 0xbf, 0x60, 0xff}
	Accent        = color.NRGBA{0xff, 0xd7, 0x00, 0xff} // Gold
	Warm          = color.NRGBA{0xff, 0x98, 0x00, 0xff} // Orange
	Text          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextDark      = color.NRGBA{0x3c, 0x3c, 0x3c, 0xff}
	TextSecondary = color.NRGBA{0xb4, 0xb4, 0xb4, 0xff}
	Border        = color.NRGBA{0x3c, 0x3c, 0x3c, 0xff}
	Black         = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

// fontFace is the cached font face
var fontFace text.Face

// FontFace returns the font face to use for UI text
func FontFace() text.Face {
	if fontFace == nil {
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return fontFace
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Warm),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// AccentButtonImage creates a gold button image set for the most
// prominent action on a screen.
func AccentButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Accent),
		Hover:    image.NewNineSliceColor(Warm),
		Pressed:  image.NewNineSliceColor(Warm),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// CardButtonImage creates a button image set in a card's own color.
func CardButtonImage(c color.Color) *widget.ButtonImage {
	nine := image.NewNineSliceColor(c)
	return &widget.ButtonImage{
		Idle:     nine,
		Hover:    nine,
		Pressed:  image.NewNineSliceColor(Warm),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
