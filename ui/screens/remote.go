package screens

import (
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avabox/gamebox/roku"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

// Remote is a big-button TV remote: a D-pad with OK in the middle and a
// Home / Play-Pause / Back row underneath. Every tap fires one ECP
// keypress and nothing waits for the TV to answer.
type Remote struct {
	nav  *ui.Navigator
	roku *roku.Client
	eui  *ebitenui.UI
}

func NewRemote(nav *ui.Navigator, rokuClient *roku.Client) *Remote {
	r := &Remote{nav: nav, roku: rokuClient}
	r.build()
	return r
}

func (r *Remote) build() {
	padBlue := color.NRGBA{0x37, 0x50, 0xb4, 0xff}
	okGreen := color.NRGBA{0x32, 0xaa, 0x50, 0xff}
	gray := color.NRGBA{0x5a, 0x5a, 0x6e, 0xff}

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{0x14, 0x14, 0x32, 0xff})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(style.BackButton(func(args *widget.ButtonClickedEventArgs) {
		r.nav.Back()
	}))

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.LargeSpacing*2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// D-pad as a 3x3 grid with empty corners.
	dpad := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, style.SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	type padKey struct {
		label string
		key   string
		color color.NRGBA
	}
	layout := []*padKey{
		nil, {"^", "Up", padBlue}, nil,
		{"<", "Left", padBlue}, {"OK", "Select", okGreen}, {">", "Right", padBlue},
		nil, {"v", "Down", padBlue}, nil,
	}
	for _, cell := range layout {
		if cell == nil {
			dpad.AddChild(widget.NewContainer(
				widget.ContainerOpts.WidgetOpts(
					widget.WidgetOpts.MinSize(style.MinTapSize, style.MinTapSize),
				),
			))
			continue
		}
		key := cell.key
		dpad.AddChild(style.CardButton(cell.label, cell.color,
			style.MinTapSize, style.MinTapSize,
			func(args *widget.ButtonClickedEventArgs) {
				r.roku.Send(roku.Keypress(key))
			}))
	}
	content.AddChild(dpad)

	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	for _, cell := range []padKey{
		{"Home", "Home", gray},
		{"Play/Pause", "Play", gray},
		{"Back", "Back", gray},
	} {
		key := cell.key
		bottom.AddChild(style.CardButton(cell.label, cell.color,
			140, 72, func(args *widget.ButtonClickedEventArgs) {
				r.roku.Send(roku.Keypress(key))
			}))
	}
	content.AddChild(bottom)

	volume := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	for _, cell := range []padKey{
		{"Vol -", "VolumeDown", gray},
		{"Mute", "VolumeMute", gray},
		{"Vol +", "VolumeUp", gray},
	} {
		key := cell.key
		volume.AddChild(style.CardButton(cell.label, cell.color,
			140, 72, func(args *widget.ButtonClickedEventArgs) {
				r.roku.Send(roku.Keypress(key))
			}))
	}
	content.AddChild(volume)

	root.AddChild(content)
	r.eui = &ebitenui.UI{Container: root}
}

func (r *Remote) OnEnter(prev ui.ScreenID) {}
func (r *Remote) OnExit()                  {}
func (r *Remote) HandleTap(x, y int)       {}

func (r *Remote) Update(dt time.Duration) {
	r.eui.Update()
}

func (r *Remote) Draw(screen *ebiten.Image) {
	r.eui.Draw(screen)
	style.DrawLabel(screen, "REMOTE",
		float64(screen.Bounds().Dx())/2, 48, style.CardTextScale, style.Text)
}
