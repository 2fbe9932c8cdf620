// Command termview plays a level in the terminal, drawing the frame with
// half-block characters. Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/level"
	"github.com/automoto/tooth/shared/leveldata"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const frameDuration = time.Second / 60

func main() {
	configPath := flag.String("config", "", "settings file (TOML)")
	levelPath := flag.String("level", "", "level manifest to play instead of the demo")
	logPath := flag.String("log", "termview.log", "log file")
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
	config.Logging.File = *logPath
	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, *levelPath); err != nil {
		logger.Error("termview failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, levelPath string) error {
	m, src, err := loadLevel(levelPath)
	if err != nil {
		return err
	}
	state, err := level.New(src, m)
	if err != nil {
		return err
	}
	keys, skipped := newKeymap(config.Input.Bindings)
	if len(skipped) > 0 {
		logger.Warn("key bindings the terminal cannot report", zap.Strings("keys", skipped))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	logger.Info("level started", zap.String("name", m.Name))
	frame := framebuffer.NewDefault()
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					close(quit)
					logger.Info("quit", zap.Int("score", state.Stats.Score), zap.Int("restarts", state.Restarts))
					return nil
				}
				keys.press(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			state.Tick(keys.sample())
			state.Render(frame)
			drawFrame(screen, frame)
			screen.Show()
		}
	}
}

func loadLevel(path string) (*leveldata.Manifest, []byte, error) {
	if path == "" {
		return leveldata.Demo()
	}
	return leveldata.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
