package main

import (
	"flag"
	"os"

	"github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/fonts"
	"github.com/automoto/keyrain/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewWorldScene(),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the viewport so the keyboard layout and
// boundaries follow resizes.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	width := flag.Int("width", config.Window.Width, "initial window width")
	height := flag.Int("height", config.Window.Height, "initial window height")
	debug := flag.Bool("debug", config.Debug.Enabled, "draw boundaries and sweep proxies")
	mute := flag.Bool("mute", config.Audio.Muted, "disable sound cues")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "keyrain",
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal("bad -log-level", "value", *level, "err", err)
	}
	logger.SetLevel(lvl)
	log.SetDefault(logger)

	config.Window.Width = *width
	config.Window.Height = *height
	config.Debug.Enabled = *debug
	config.Audio.Muted = *mute

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Window.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatal("startup failed", "err", err)
	}

	log.Info("starting", "width", config.Window.Width, "height", config.Window.Height, "debug", *debug, "mute", *mute)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop exited", "err", err)
	}
}
