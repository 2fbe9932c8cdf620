package foreground

// Tile ids with a fixed meaning. The 0x40..0x73 block is the land edge set
// produced by auto-tiling and object opcodes: high nibble 4+vertical class
// (single, top, middle, bottom), low nibble horizontal class (single, left,
// middle, right).
const (
	TileEmpty     uint8 = 0x00
	TileLand      uint8 = 0x01 // unprocessed land, rewritten by auto-tiling
	TileCoin      uint8 = 0x02
	TileItemBlock uint8 = 0x03
	TilePlatform  uint8 = 0x04
	TileSpikes    uint8 = 0x05
	TileDoor      uint8 = 0x06 // lock doors, cleared by keys

	TileDecor uint8 = 0x30 // 0x30..0x33

	TileSteepUp    uint8 = 0x46
	TileSteepDown  uint8 = 0x47
	TileCornerNW   uint8 = 0x48
	TileSlab       uint8 = 0x49
	TileLandTop    uint8 = 0x52
	TileSteepUpB   uint8 = 0x56
	TileSteepDownB uint8 = 0x57
	TileCornerNE   uint8 = 0x58
	TileLandFill   uint8 = 0x62
	TileGentleUpLo uint8 = 0x64
	TileGentleUpHi uint8 = 0x65
	TileGentleUpB  uint8 = 0x66
	TileCornerSW   uint8 = 0x68
	TileGentleDnB  uint8 = 0x74
	TileGentleDnHi uint8 = 0x75
	TileGentleDnLo uint8 = 0x76
	TileCornerSE   uint8 = 0x78
	TileSpentBlock uint8 = 0x7F
)

// Edge classes used by EdgeTile.
const (
	EdgeNone   = 0
	EdgeStart  = 1 // top or left
	EdgeMiddle = 2
	EdgeEnd    = 3 // bottom or right
)

// EdgeTile returns the land tile for a vertical and horizontal edge class.
func EdgeTile(vertical, horizontal int) uint8 {
	return uint8((4+vertical)<<4 | horizontal)
}

// EdgeClass picks the edge class of a run from whether the cells before and
// after it are filled.
func EdgeClass(before, after bool) int {
	switch {
	case before && after:
		return EdgeMiddle
	case after:
		return EdgeStart
	case before:
		return EdgeEnd
	}
	return EdgeNone
}
