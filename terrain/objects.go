package terrain

import "github.com/automoto/tooth/foreground"

// Object opcodes.
const (
	OpGroundStretch uint8 = 0x00
	OpBlockRow      uint8 = 0x01
	OpBlockColumn   uint8 = 0x02
	OpEdgedRect     uint8 = 0x03
	OpLandWall      uint8 = 0x04
	OpGentleSlope   uint8 = 0x05
	OpSteepSlope    uint8 = 0x06
	OpInnerLand     uint8 = 0x07
	OpUncompressed  uint8 = 0x08
	OpLandRect      uint8 = 0x09
	OpSemisolid     uint8 = 0x0A
)

// Flags in the param byte of wall and slope opcodes.
const (
	flagTop    = 1 << 4
	flagBottom = 1 << 5
	flagLeft   = 1 << 6

	flagUp     = 1 << 4
	flagFilled = 1 << 5
)

func (op Op) hi() int32 { return int32(op.Param >> 4) }
func (op Op) lo() int32 { return int32(op.Param & 0x0F) }

// width and height of the inclusive rectangle opcodes.
func (op Op) width() int  { return int(op.Param>>4) + 1 }
func (op Op) height() int { return int(op.Param&0x0F) + 1 }

type painter struct {
	grid   *foreground.Grid
	origin [2]int32
}

func (p painter) put(x, y int32, id uint8) {
	p.grid.Set(p.origin[0]+x, p.origin[1]+y, id)
}

// Paint draws the chunk's opcodes into the grid. Unknown opcodes are skipped.
func (c Chunk) Paint(grid *foreground.Grid) {
	p := painter{grid: grid, origin: [2]int32{int32(c.X) * 16, int32(c.Y) * 16}}
	for _, op := range c.Ops {
		p.op(op)
	}
}

func (p painter) op(op Op) {
	x, y := int32(op.X), int32(op.Y)
	switch op.ID {
	case OpGroundStretch:
		top, width := op.lo(), op.hi()*16
		for rx := int32(0); rx < width; rx++ {
			for ry := top; ry < 16; ry++ {
				id := foreground.TileLandFill
				if ry == top {
					id = foreground.TileLandTop
				}
				p.put(rx, ry, id)
			}
		}

	case OpBlockRow:
		for i := int32(0); i < op.hi(); i++ {
			p.put(x+i, y, uint8(op.lo()))
		}

	case OpBlockColumn:
		for i := int32(0); i < op.hi(); i++ {
			p.put(x, y+i, uint8(op.lo()))
		}

	case OpEdgedRect:
		w, h := op.hi(), op.lo()
		for rx := int32(0); rx <= w; rx++ {
			for ry := int32(0); ry <= h; ry++ {
				p.put(x+rx, y+ry, foreground.EdgeTile(rectEdge(ry, h), rectEdge(rx, w)))
			}
		}

	case OpLandWall:
		h := op.lo()
		top, mid, bot := uint8(0x53), uint8(0x63), uint8(0x54)
		if op.Param&flagLeft != 0 {
			top, mid, bot = 0x51, 0x61, 0x55
		}
		if op.Param&flagTop != 0 {
			p.put(x, y-1, top)
		}
		for i := int32(0); i < h; i++ {
			p.put(x, y+i, mid)
		}
		if op.Param&flagBottom != 0 {
			p.put(x, y+h, bot)
		}

	case OpGentleSlope:
		p.gentleSlope(x, y, op.lo(), op.Param&flagUp != 0, op.Param&flagFilled != 0)

	case OpSteepSlope:
		p.steepSlope(x, y, op.lo(), op.Param&flagUp != 0, op.Param&flagFilled != 0)

	case OpInnerLand:
		for rx := int32(0); rx <= op.hi(); rx++ {
			for ry := int32(0); ry <= op.lo(); ry++ {
				p.put(x+rx, y+ry, foreground.TileLandFill)
			}
		}

	case OpUncompressed:
		w := int32(op.width())
		for i, id := range op.Data {
			p.put(x+int32(i)%w, y+int32(i)/w, id)
		}

	case OpLandRect:
		for ry := int32(0); ry <= op.lo(); ry++ {
			for rx := int32(0); rx <= op.hi(); rx++ {
				id := foreground.TileLandFill
				if ry == 0 {
					id = foreground.TileLandTop
				}
				p.put(x+rx, y+ry, id)
			}
		}

	case OpSemisolid:
		w, h := op.hi()+1, op.lo()+1
		for ry := int32(0); ry <= h; ry++ {
			for rx := int32(0); rx <= w; rx++ {
				id := uint8(0x60)
				if ry == 0 {
					id = 0x50
				}
				switch rx {
				case 0:
					id |= 0x0D
				case w:
					id |= 0x0F
				default:
					id |= 0x0E
				}
				p.put(x+rx, y+ry, id)
			}
		}
	}
}

func rectEdge(i, last int32) int {
	switch {
	case last == 0:
		return foreground.EdgeNone
	case i == 0:
		return foreground.EdgeStart
	case i == last:
		return foreground.EdgeEnd
	}
	return foreground.EdgeMiddle
}

// gentleSlope lays a two-tiles-per-row slope of n rows starting at (x, y).
func (p painter) gentleSlope(x, y, n int32, up, filled bool) {
	if up {
		p.put(x, y, foreground.TileGentleUpB)
		for i := int32(0); i < n; i++ {
			for j := int32(0); j < 3; j++ {
				p.put(x+i*2+j, y-i-1, foreground.TileGentleUpLo+uint8(j))
			}
			if filled {
				for j := i * 2; j < n*2+1; j++ {
					p.put(x+j+1, y-i, foreground.TileLandFill)
				}
			}
		}
		if filled {
			p.put(x+n*2+1, y-n, foreground.TileLandFill)
		}
		p.put(x+n*2, y-n-1, foreground.TileGentleUpLo)
		p.put(x+n*2+1, y-n-1, foreground.TileGentleUpHi)
		return
	}

	p.put(x, y, foreground.TileGentleDnHi)
	p.put(x+1, y, foreground.TileGentleDnLo)
	for i := int32(0); i < n; i++ {
		for j := int32(0); j < 3; j++ {
			p.put(x+i*2+j+1, y+i+1, foreground.TileGentleDnB+uint8(j))
		}
		if filled {
			for j := int32(0); j < i*2+3; j++ {
				p.put(x+j, y+i+2, foreground.TileLandFill)
			}
			p.put(x, y+1, foreground.TileLandFill)
		}
	}
	p.put(x+n*2+1, y+n+1, foreground.TileGentleDnB)
}

// steepSlope lays a one-tile-per-row slope of n rows starting at (x, y).
func (p painter) steepSlope(x, y, n int32, up, filled bool) {
	for i := int32(0); i < n; i++ {
		for j := int32(0); j < 2; j++ {
			if up {
				p.put(x+i, y-i+j, foreground.TileSteepUp+uint8(j)*0x10)
			} else {
				p.put(x+i, y+i+j, foreground.TileSteepDown+uint8(j)*0x10)
			}
		}
		if !filled {
			continue
		}
		if up {
			for j := int32(0); j < i; j++ {
				p.put(x+i, y-j+1, foreground.TileLandFill)
			}
		} else {
			for j := i + 1; j < n; j++ {
				p.put(x+i, y+j+1, foreground.TileLandFill)
			}
		}
	}
}
