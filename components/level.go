package components

import (
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData is the running level and the frame it renders into. Image is
// the GPU copy of Frame shown on screen.
type LevelData struct {
	State *level.State
	Frame *framebuffer.Framebuffer
	Image *ebiten.Image
	Bytes []byte // upload buffer, reused every frame
}

var Level = donburi.NewComponentType[LevelData]()
