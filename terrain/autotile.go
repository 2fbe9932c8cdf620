package terrain

import "github.com/automoto/tooth/foreground"

const size = foreground.Size

// landMask marks the cells still holding unprocessed land.
type landMask [size * size]bool

func (m *landMask) at(x, y int32) bool {
	if !foreground.InBounds(x, y) {
		return false
	}
	return m[y*size+x]
}

// AutoTile rewrites unprocessed land into edge, corner and interior tiles and
// scatters decoration along top edges, seeding the generator with DecorSeed.
func AutoTile(grid *foreground.Grid) {
	rng := NewRandState(DecorSeed)
	autoTile(grid, &rng)
}

func autoTile(grid *foreground.Grid, rng *RandState) {
	var mask landMask
	for i, c := range grid.Cells() {
		mask[i] = c == foreground.TileLand
	}

	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			if !mask[y*size+x] {
				continue
			}
			up, down := mask.at(x, y-1), mask.at(x, y+1)
			left, right := mask.at(x-1, y), mask.at(x+1, y)
			id := foreground.EdgeTile(foreground.EdgeClass(up, down), foreground.EdgeClass(left, right))
			if up && down && left && right {
				id = innerCorner(&mask, x, y)
			}
			grid.Set(x, y, id)

			if up {
				continue
			}
			r := rng.Next()
			if r&3 == 0 && y > 0 && grid.At(x, y-1) == foreground.TileEmpty {
				grid.Set(x, y-1, foreground.TileDecor+uint8(r>>2&3))
			}
		}
	}
}

// innerCorner picks the corner tile for a cell surrounded on all four sides,
// checking the diagonals in NW, NE, SW, SE order.
func innerCorner(mask *landMask, x, y int32) uint8 {
	switch {
	case !mask.at(x-1, y-1):
		return foreground.TileCornerNW
	case !mask.at(x+1, y-1):
		return foreground.TileCornerNE
	case !mask.at(x-1, y+1):
		return foreground.TileCornerSW
	case !mask.at(x+1, y+1):
		return foreground.TileCornerSE
	}
	return foreground.TileLandFill
}
