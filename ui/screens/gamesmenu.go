package screens

import (
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

// GamesMenu lists the built-in games.
type GamesMenu struct {
	nav *ui.Navigator
	eui *ebitenui.UI
}

func NewGamesMenu(nav *ui.Navigator) *GamesMenu {
	g := &GamesMenu{nav: nav}
	g.build()
	return g
}

func (g *GamesMenu) build() {
	root := style.RootContainer()
	root.AddChild(style.BackButton(func(args *widget.ButtonClickedEventArgs) {
		g.nav.Back()
	}))

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	games := []struct {
		label  string
		color  color.NRGBA
		target ui.ScreenID
	}{
		{"WHACK-A-CRITTER", color.NRGBA{0x50, 0xc8, 0x50, 0xff}, ui.ScreenWhack},
		{"BUBBLE POP", color.NRGBA{0x3c, 0xb4, 0xc8, 0xff}, ui.ScreenBubbles},
		{"SHAPE SORTER", color.NRGBA{0x50, 0xb4, 0xff, 0xff}, ui.ScreenShapeSorter},
		{"FIREWORKS", color.NRGBA{0xff, 0xa0, 0x28, 0xff}, ui.ScreenFireworks},
	}
	for _, game := range games {
		target := game.target
		grid.AddChild(style.CardButton(game.label, game.color,
			style.MenuCardWidth, style.MenuCardHeight,
			func(args *widget.ButtonClickedEventArgs) {
				g.nav.GoTo(target)
			}))
	}

	root.AddChild(grid)
	g.eui = &ebitenui.UI{Container: root}
}

func (g *GamesMenu) OnEnter(prev ui.ScreenID) {}
func (g *GamesMenu) OnExit()                  {}
func (g *GamesMenu) HandleTap(x, y int)       {}

func (g *GamesMenu) Update(dt time.Duration) {
	g.eui.Update()
}

func (g *GamesMenu) Draw(screen *ebiten.Image) {
	g.eui.Draw(screen)
}
