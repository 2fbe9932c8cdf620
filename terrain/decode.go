package terrain

import "github.com/automoto/tooth/foreground"

// DecodeArea clears grid and paints the level in src into it: land records,
// then the auto-tiling and decoration pass, then object chunks. The grid is
// left untouched when src is malformed.
func DecodeArea(grid *foreground.Grid, src []byte) error {
	lvl, err := ParseLevel(src)
	if err != nil {
		return err
	}
	lvl.Paint(grid)
	return nil
}

// Paint clears grid and draws the whole level into it.
func (l *Level) Paint(grid *foreground.Grid) {
	grid.Clear()
	l.FillLand(grid)
	rng := NewRandState(DecorSeed)
	autoTile(grid, &rng)
	for _, c := range l.Chunks {
		c.Paint(grid)
	}
}

// FillLand writes every land record into grid as-is, without auto-tiling.
func (l *Level) FillLand(grid *foreground.Grid) {
	for _, r := range l.Land {
		grid.Fill(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), r.Tile)
	}
}
