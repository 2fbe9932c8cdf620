package level

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/shared/gamemath"
)

// Follow moves the camera toward the player (fixed point position). The
// camera only scrolls once the player leaves the deadzone around the centre
// of the screen, and it never shows anything outside the level.
func Follow(cam, player, level, screen gamemath.Vec2) gamemath.Vec2 {
	target := Target(player, screen)
	dz := config.Camera.Deadzone
	cam = gamemath.V(follow(cam.X, target.X, dz), follow(cam.Y, target.Y, dz))

	limit := level.Sub(screen).Max(gamemath.Vec2{})
	return cam.Max(gamemath.Vec2{}).Min(limit)
}

func follow(cam, target, deadzone int32) int32 {
	switch {
	case target-deadzone > cam:
		return target - deadzone
	case target+deadzone < cam:
		return target + deadzone
	}
	return cam
}

// Target is the camera position that puts the player (fixed point) at the
// centre of the screen, shifted by the camera lift.
func Target(player, screen gamemath.Vec2) gamemath.Vec2 {
	return player.Pixel().Sub(screen.Div(2)).Add(gamemath.V(0, config.Camera.Lift))
}
