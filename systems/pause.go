package systems

import (
	"image"

	"github.com/automoto/tooth/archetypes"
	"github.com/automoto/tooth/components"
	cfg "github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/fonts"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	pauseText = "PAUSED"
	pauseHint = "START TO RESUME"
)

// UpdatePause toggles pause on Start.
// This system should run AFTER UpdateInput but BEFORE UpdateLevel.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.Buttons.Pressed(controller.Start) {
		pause.IsPaused = !pause.IsPaused
		pause.Frames = 0
		logger.Debug("pause toggled", zap.Bool("paused", pause.IsPaused))
	}
	if pause.IsPaused {
		pause.Frames++
	}
}

// IsPaused reports whether the level is paused.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = archetypes.Pause.Spawn(ecs)
	}
	return components.Pause.Get(entry)
}

// drawPause dims the frame and blinks the pause label in the middle.
func drawPause(frame *framebuffer.Framebuffer, pause *components.PauseData) {
	shade := framebuffer.RGBA(0, 0, 0, 0xFF)
	for p := range frame.Pixels() {
		framebuffer.Blend(frame, p, shade, cfg.BlackOverlay.A)
	}
	if pause.Frames/30%2 == 1 {
		return
	}

	size := frame.Size()
	centreText(frame, fonts.Mono.Get(), pauseText, size.Y/2)
	centreText(frame, fonts.MonoSmall.Get(), pauseHint, size.Y/2+12)
}

// centreText draws s centred horizontally with its baseline on row y.
func centreText(frame *framebuffer.Framebuffer, face font.Face, s string, y int32) {
	width := font.MeasureString(face, s).Ceil()
	at := gamemath.V(frame.Size().X/2-int32(width)/2, y)
	d := font.Drawer{Dst: frame, Src: image.NewUniform(cfg.White), Face: face}
	d.Dot = fixed.P(int(at.X), int(at.Y))
	d.DrawString(s)
}
