package gamemath

// Slope surfaces are the pixel row inside a tile at which the surface sits
// for a given column of the same tile. Descending slopes drop toward the
// right (y grows downward).

// SteepSurfaceY is the surface row of a 45 degree slope tile.
func SteepSurfaceY(descending bool, x int32) int32 {
	if descending {
		return x - 1
	}
	return 15 - x
}

// LowSurfaceY is the surface row of the lower half of a gentle slope.
func LowSurfaceY(descending bool, x int32) int32 {
	if descending {
		return x/2 + 7
	}
	return 14 - x/2
}

// HighSurfaceY is the surface row of the upper half of a gentle slope.
func HighSurfaceY(descending bool, x int32) int32 {
	if descending {
		return x/2 - 1
	}
	return 6 - x/2
}

// SlopeAngle is the angle class of a slope family: magnitude 2 for steep, 1
// for gentle, positive when descending to the right.
func SlopeAngle(descending, steep bool) int32 {
	a := int32(1)
	if steep {
		a = 2
	}
	if !descending {
		a = -a
	}
	return a
}
