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

// MainMenu is the root screen: the kiosk title over four big cards.
type MainMenu struct {
	nav *ui.Navigator
	eui *ebitenui.UI
}

func NewMainMenu(nav *ui.Navigator) *MainMenu {
	m := &MainMenu{nav: nav}
	m.build()
	return m
}

func (m *MainMenu) build() {
	root := style.RootContainer()

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.LargeSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	cards := []struct {
		label  string
		color  color.NRGBA
		target ui.ScreenID
	}{
		{"PLAY GAMES", style.Primary, ui.ScreenGamesMenu},
		{"WATCH SHOWS", style.Warm, ui.ScreenShows},
		{"COOL VIDEOS", color.NRGBA{0x9c, 0x27, 0xb0, 0xff}, ui.ScreenVideos},
		{"TV REMOTE", color.NRGBA{0x37, 0x50, 0xb4, 0xff}, ui.ScreenRemote},
	}
	for _, card := range cards {
		target := card.target
		content.AddChild(style.CardButton(card.label, card.color,
			500, 90, func(args *widget.ButtonClickedEventArgs) {
				m.nav.GoTo(target)
			}))
	}

	root.AddChild(content)
	m.eui = &ebitenui.UI{Container: root}
}

func (m *MainMenu) OnEnter(prev ui.ScreenID) {}
func (m *MainMenu) OnExit()                  {}

// Taps land through ebitenui's own input handling, not HandleTap.
func (m *MainMenu) HandleTap(x, y int) {}

func (m *MainMenu) Update(dt time.Duration) {
	m.eui.Update()
}

func (m *MainMenu) Draw(screen *ebiten.Image) {
	m.eui.Draw(screen)
	style.DrawLabel(screen, "AVA",
		float64(screen.Bounds().Dx())/2, 80, style.BannerTextScale, style.Text)
	style.DrawLabel(screen, "Game Box",
		float64(screen.Bounds().Dx())/2, 130, style.LabelTextScale, style.Surface)
}
