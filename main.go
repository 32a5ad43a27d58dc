package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/avabox/gamebox/catalog"
	"github.com/avabox/gamebox/game"
	"github.com/avabox/gamebox/logging"
	"github.com/avabox/gamebox/roku"
	"github.com/avabox/gamebox/storage"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/screens"
)

func main() {
	configPath := flag.String("config", "gamebox.json", "path to config file")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	dev := flag.Bool("dev", false, "console logging for development")
	flag.Parse()

	logger := logging.New(*dev)
	defer logger.Sync()

	fs := afero.NewOsFs()
	cfg, err := storage.LoadConfig(fs, *configPath)
	if err != nil {
		// Defaults are still usable; a broken config must not keep the
		// kiosk from booting.
		logger.Warn("config unusable, running on defaults",
			zap.String("path", *configPath),
			zap.Error(err))
	}
	if err := storage.CreateConfigIfMissing(fs, *configPath); err != nil {
		logger.Warn("could not write initial config", zap.Error(err))
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	logger.Info("catalog loaded",
		zap.Int("shows", len(cat.Shows)),
		zap.Int("videos", len(cat.Videos)))

	rokuClient := roku.New(roku.Options{
		Address: cfg.Roku.Address,
		Enabled: cfg.Roku.Enabled,
		Timeout: time.Duration(cfg.Roku.TimeoutMS) * time.Millisecond,
		Logger:  logger,
	})
	logger.Info("roku dispatcher ready",
		zap.String("address", cfg.Roku.Address),
		zap.Bool("enabled", cfg.Roku.Enabled))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	roundCfg := game.DefaultConfig()
	roundCfg.Duration = time.Duration(cfg.Round.DurationSec) * time.Second
	roundCfg.MaxTargets = cfg.Round.MaxCritters
	round := game.NewRound(roundCfg, rng)
	bubbles := game.NewBubbleField(game.DefaultBubbleConfig(), rng)
	sorter := game.NewShapeBoard(game.DefaultSorterConfig(), rng)
	fireworks := game.NewFireworksShow(game.DefaultFireworksConfig(), rng)

	nav := ui.NewNavigator(ui.ScreenMainMenu, logger)
	register := func(id ui.ScreenID, s ui.Screen) {
		if err := nav.Register(id, s); err != nil {
			log.Fatalf("screen registry: %v", err)
		}
	}
	register(ui.ScreenMainMenu, screens.NewMainMenu(nav))
	register(ui.ScreenGamesMenu, screens.NewGamesMenu(nav))
	register(ui.ScreenWhack, screens.NewWhack(nav, round, rng, logger))
	register(ui.ScreenBubbles, screens.NewBubbles(nav, bubbles, rng, logger))
	register(ui.ScreenShapeSorter, screens.NewShapeSorter(nav, sorter, rng))
	register(ui.ScreenFireworks, screens.NewFireworks(nav, fireworks, rng))
	register(ui.ScreenShows, screens.NewShows(screens.ShowsOptions{
		Nav:        nav,
		Roku:       rokuClient,
		Logger:     logger,
		Fs:         fs,
		ArtworkDir: cfg.Artwork,
		Shows:      cat.Shows,
	}))
	register(ui.ScreenVideos, screens.NewVideos(nav, rokuClient, cat.Videos, logger))
	register(ui.ScreenRemote, screens.NewRemote(nav, rokuClient))

	if err := nav.Start(); err != nil {
		log.Fatalf("navigator: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("AVA Game Box")
	if cfg.Window.Fullscreen && !*windowed {
		ebiten.SetFullscreen(true)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	app := ui.NewApp(nav, cfg.Window.Width, cfg.Window.Height, logger)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
