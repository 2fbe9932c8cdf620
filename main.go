package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/level"
	"github.com/automoto/tooth/scenes"
	"github.com/automoto/tooth/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(state *level.State) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewLevelScene(state),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "settings file (TOML)")
	levelPath := flag.String("level", "", "level manifest to play instead of the saved slot or the demo")
	flag.Parse()

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.Apply(); err != nil {
			log.Fatal(err)
		}
	}
	if *levelPath != "" {
		config.Debug.LevelPath = *levelPath
		config.Level.CustomSlotName = ""
	}

	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck
	systems.SetLogger(logger)

	if err := systems.BindKeys(config.Input.Bindings); err != nil {
		logger.Fatal("bad key bindings", zap.Error(err))
	}

	// Initialize persistence; without it only the file and demo levels load
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("saved levels unavailable", zap.Error(err))
	}
	m, src, err := systems.LoadStartLevel()
	if err != nil {
		logger.Fatal("could not load level", zap.Error(err))
	}
	state, err := level.New(src, m)
	if err != nil {
		logger.Fatal("could not start level", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(state)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
