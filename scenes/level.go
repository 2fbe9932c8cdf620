package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tooth/archetypes"
	"github.com/automoto/tooth/components"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/level"
	"github.com/automoto/tooth/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene plays one level.
type LevelScene struct {
	ecs   *ecs.ECS
	state *level.State
	once  sync.Once
}

// NewLevelScene wraps a loaded level. The ECS is built on the first Update.
func NewLevelScene(state *level.State) *LevelScene {
	return &LevelScene{state: state}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		State: ls.state,
		Frame: framebuffer.NewDefault(),
	})

	ls.ecs = ecs
}
