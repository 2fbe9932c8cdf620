package systems

import (
	"github.com/automoto/tooth/components"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateLevel runs one tick of the level with this frame's buttons.
func UpdateLevel(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	data := components.Level.Get(entry)
	input := getOrCreateInput(ecs)

	restarts := data.State.Restarts
	data.State.Tick(input.Buttons.Current)
	if data.State.Restarts != restarts {
		logger.Info("player fell out of the level",
			zap.String("level", data.State.Manifest.Name),
			zap.Int("restarts", data.State.Restarts))
	}
}
