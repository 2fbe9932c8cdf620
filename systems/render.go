package systems

import (
	"github.com/automoto/tooth/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the level into its framebuffer, adds the pause overlay
// and uploads the result to the screen.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	data := components.Level.Get(entry)

	data.State.Render(data.Frame)
	if IsPaused(ecs) {
		drawPause(data.Frame, GetOrCreatePause(ecs))
	}

	if data.Image == nil {
		size := data.Frame.Size()
		data.Image = ebiten.NewImage(int(size.X), int(size.Y))
	}
	data.Bytes = data.Frame.Bytes(data.Bytes)
	data.Image.WritePixels(data.Bytes)
	screen.DrawImage(data.Image, nil)
}
