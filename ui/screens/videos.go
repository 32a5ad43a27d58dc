package screens

import (
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/avabox/gamebox/catalog"
	"github.com/avabox/gamebox/roku"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

// Videos is a curated list of YouTube videos, deep-linked into the
// Roku YouTube channel. The list is hand-picked in the catalog, so
// there is no search, no recommendations and no way to wander off.
type Videos struct {
	nav    *ui.Navigator
	roku   *roku.Client
	log    *zap.Logger
	videos []catalog.Video
	notif  *ui.Notification
	eui    *ebitenui.UI
}

func NewVideos(nav *ui.Navigator, rokuClient *roku.Client, videos []catalog.Video, log *zap.Logger) *Videos {
	if log == nil {
		log = zap.NewNop()
	}
	v := &Videos{
		nav:    nav,
		roku:   rokuClient,
		log:    log.Named("videos"),
		videos: videos,
		notif:  ui.NewNotification(),
	}
	v.build()
	return v
}

func (v *Videos) build() {
	root := style.RootContainer()

	if len(v.videos) == 0 {
		root.AddChild(style.EmptyState("No videos yet", "Add favorites to the catalog to see them here"))
	} else {
		grid := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(2),
				widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
				widget.GridLayoutOpts.Padding(widget.Insets{
					Top: 90, Left: style.DefaultPadding, Right: style.DefaultPadding, Bottom: style.DefaultPadding,
				}),
			)),
		)
		for i := range v.videos {
			video := v.videos[i]
			name, _ := style.TruncateEnd(video.Name, 24)
			grid.AddChild(style.CardButton(name, video.Accent.Color(),
				showCardWidth, showCardHeight,
				func(args *widget.ButtonClickedEventArgs) {
					v.log.Info("launching video", zap.String("video", video.Name))
					v.roku.Send(roku.LaunchYouTube(video.VideoID))
					v.notif.ShowDefault("Playing " + video.Name + "!")
				}))
		}

		_, wrapper := style.ScrollableContainer(grid)
		wrapper.GetWidget().LayoutData = widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		}
		root.AddChild(wrapper)
	}

	root.AddChild(style.BackButton(func(args *widget.ButtonClickedEventArgs) {
		v.nav.Back()
	}))

	v.eui = &ebitenui.UI{Container: root}
}

func (v *Videos) OnEnter(prev ui.ScreenID) {
	v.notif.Clear()
}

func (v *Videos) OnExit()            {}
func (v *Videos) HandleTap(x, y int) {}

func (v *Videos) Update(dt time.Duration) {
	v.eui.Update()
}

func (v *Videos) Draw(screen *ebiten.Image) {
	v.eui.Draw(screen)
	style.DrawLabel(screen, "COOL VIDEOS",
		float64(screen.Bounds().Dx())/2, 48, style.CardTextScale, style.Text)
	v.notif.Draw(screen)
}
