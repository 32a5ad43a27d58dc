package screens

import (
	"bytes"
	goimage "image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/avabox/gamebox/catalog"
	"github.com/avabox/gamebox/roku"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

const (
	showCardWidth   = 320
	showCardHeight  = 150
	showArtWidth    = 180
	artworkCacheCap = 32
)

// Shows is a scrollable grid of show cards. Tapping a card deep-links
// the show on the TV; the kiosk itself never plays anything.
type Shows struct {
	nav   *ui.Navigator
	roku  *roku.Client
	log   *zap.Logger
	fs    afero.Fs
	dir   string
	shows []catalog.Show
	notif *ui.Notification

	artwork *lru.Cache[string, *ebiten.Image]
	eui     *ebitenui.UI
}

// ShowsOptions wires the shows screen.
type ShowsOptions struct {
	Nav        *ui.Navigator
	Roku       *roku.Client
	Logger     *zap.Logger
	Fs         afero.Fs
	ArtworkDir string
	Shows      []catalog.Show
}

func NewShows(opts ShowsOptions) *Shows {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cache, _ := lru.New[string, *ebiten.Image](artworkCacheCap)
	s := &Shows{
		nav:     opts.Nav,
		roku:    opts.Roku,
		log:     opts.Logger.Named("shows"),
		fs:      opts.Fs,
		dir:     opts.ArtworkDir,
		shows:   opts.Shows,
		notif:   ui.NewNotification(),
		artwork: cache,
	}
	s.build()
	return s
}

func (s *Shows) build() {
	root := style.RootContainer()

	if len(s.shows) == 0 {
		root.AddChild(style.EmptyState("No shows yet", "Add shows to the catalog to see them here"))
		root.AddChild(style.BackButton(func(args *widget.ButtonClickedEventArgs) {
			s.nav.Back()
		}))
		s.eui = &ebitenui.UI{Container: root}
		return
	}

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
			widget.GridLayoutOpts.Padding(widget.Insets{
				Top: 90, Left: style.DefaultPadding, Right: style.DefaultPadding, Bottom: style.DefaultPadding,
			}),
		)),
	)
	for i := range s.shows {
		grid.AddChild(s.buildShowCard(&s.shows[i]))
	}

	_, wrapper := style.ScrollableContainer(grid)
	wrapper.GetWidget().LayoutData = widget.AnchorLayoutData{
		StretchHorizontal: true,
		StretchVertical:   true,
	}
	root.AddChild(wrapper)

	root.AddChild(style.BackButton(func(args *widget.ButtonClickedEventArgs) {
		s.nav.Back()
	}))

	s.eui = &ebitenui.UI{Container: root}
}

func (s *Shows) buildShowCard(show *catalog.Show) *widget.Container {
	card := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	launch := func(args *widget.ButtonClickedEventArgs) {
		s.log.Info("launching show",
			zap.String("show", show.Name),
			zap.Int("channel", show.ChannelID))
		s.roku.Send(roku.Launch(show.ChannelID, show.ContentID, show.MediaType))
		s.notif.ShowDefault("Playing " + show.Name + "!")
	}

	if art, ok := s.loadArtwork(show); ok {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(style.CardButtonImage(show.Accent.Color())),
			widget.ButtonOpts.Graphic(&widget.GraphicImage{Idle: art}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(showCardWidth, showCardHeight),
			),
			widget.ButtonOpts.ClickedHandler(launch),
		)
		card.AddChild(btn)
		return card
	}

	name, _ := style.TruncateEnd(show.Name, 24)
	card.AddChild(style.CardButton(name, show.Accent.Color(),
		showCardWidth, showCardHeight, launch))
	return card
}

// loadArtwork reads and scales a show's cover through the LRU cache.
// Missing or unreadable art is fine; the card falls back to its accent
// color and name.
func (s *Shows) loadArtwork(show *catalog.Show) (*ebiten.Image, bool) {
	if show.Image == "" {
		return nil, false
	}
	if img, ok := s.artwork.Get(show.Image); ok {
		return img, true
	}

	path := filepath.Join(s.dir, "shows", show.Image)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.log.Debug("show artwork unavailable",
			zap.String("show", show.Name),
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}
	decoded, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		s.log.Warn("show artwork corrupt",
			zap.String("show", show.Name),
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}

	img := style.ScaleImage(decoded, showArtWidth, showCardHeight-8)
	s.artwork.Add(show.Image, img)
	return img, true
}

func (s *Shows) OnEnter(prev ui.ScreenID) {
	s.notif.Clear()
}

func (s *Shows) OnExit()            {}
func (s *Shows) HandleTap(x, y int) {}

func (s *Shows) Update(dt time.Duration) {
	s.eui.Update()
}

func (s *Shows) Draw(screen *ebiten.Image) {
	s.eui.Draw(screen)
	style.DrawLabel(screen, "AVA'S SHOWS",
		float64(screen.Bounds().Dx())/2, 48, style.CardTextScale, style.Text)
	s.notif.Draw(screen)
}
