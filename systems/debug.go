package systems

import (
	"fmt"

	"github.com/automoto/tooth/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DebugKey toggles the hex position readout and hitbox outlines.
const DebugKey = ebiten.KeyF3

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(DebugKey) {
		return
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	hud := components.Level.Get(entry).State.HUD
	hud.Debug = !hud.Debug
	logger.Debug("debug overlay toggled", zap.Bool("on", hud.Debug))
}

// DrawDebug prints frame timing over the uploaded frame.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok || !components.Level.Get(entry).State.HUD.Debug {
		return
	}
	size := screen.Bounds().Size()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), size.X-100, size.Y-16)
}
