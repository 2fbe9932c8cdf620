// Package foreground holds the tile grid the simulation collides against and
// the table that turns tile ids into collision behaviour.
package foreground

import "github.com/automoto/tooth/shared/gamemath"

// Size is the grid edge in tiles.
const Size = 256

// Grid is the 256x256 tile map, row-major.
type Grid struct {
	cells [Size * Size]uint8
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

func clampIndex(v int32) int32 {
	return gamemath.Clamp(v, 0, Size-1)
}

// At returns the tile at (x, y). Coordinates outside the grid saturate to the
// nearest edge cell; sensor probes rely on this.
func (g *Grid) At(x, y int32) uint8 {
	return g.cells[clampIndex(y)*Size+clampIndex(x)]
}

// AtTile is At for a tile coordinate vector.
func (g *Grid) AtTile(p gamemath.Vec2) uint8 {
	return g.At(p.X, p.Y)
}

// Solidity classifies the tile at p.
func (g *Grid) Solidity(p gamemath.Vec2) Solidity {
	return Classify(g.AtTile(p))
}

// ClampTile saturates a tile coordinate to the nearest real cell.
func ClampTile(p gamemath.Vec2) gamemath.Vec2 {
	return gamemath.V(clampIndex(p.X), clampIndex(p.Y))
}

// InBounds reports whether (x, y) is a real cell.
func InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < Size && y < Size
}

// Set writes a tile. Writes outside the grid are dropped.
func (g *Grid) Set(x, y int32, id uint8) bool {
	if !InBounds(x, y) {
		return false
	}
	g.cells[y*Size+x] = id
	return true
}

// SetTile is Set for a tile coordinate vector.
func (g *Grid) SetTile(p gamemath.Vec2, id uint8) bool {
	return g.Set(p.X, p.Y, id)
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells[:])
}

// Cells exposes the backing array, row-major.
func (g *Grid) Cells() []uint8 {
	return g.cells[:]
}

// Fill writes id into the w x h rectangle at (x, y), clipped to the grid.
func (g *Grid) Fill(x, y, w, h int32, id uint8) {
	for ry := max(y, 0); ry < min(y+h, Size); ry++ {
		for rx := max(x, 0); rx < min(x+w, Size); rx++ {
			g.cells[ry*Size+rx] = id
		}
	}
}

// Count returns how many cells hold id.
func (g *Grid) Count(id uint8) int {
	n := 0
	for _, c := range g.cells {
		if c == id {
			n++
		}
	}
	return n
}
