package terrain

import "github.com/automoto/tooth/shared/gamemath"

func gmV(x, y int32) gamemath.Vec2 {
	return gamemath.V(x, y)
}
