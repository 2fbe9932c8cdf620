package terrain

import (
	"testing"

	"github.com/automoto/tooth/foreground"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, lvl *Level) []byte {
	t.Helper()
	b, err := lvl.Encode()
	require.NoError(t, err)
	return b
}

func TestLandRowAutoTiles(t *testing.T) {
	lvl := &Level{Land: []LandRecord{{X: 0, Y: 10, W: 4, H: 1, Tile: foreground.TileLand}}}

	grid := foreground.NewGrid()
	lvl.FillLand(grid)
	for x := int32(0); x < 4; x++ {
		assert.Equal(t, foreground.TileLand, grid.At(x, 10))
		assert.Equal(t, foreground.Solid, grid.Solidity(gmV(x, 10)).Kind)
	}
	assert.Equal(t, foreground.TileEmpty, grid.At(4, 10))

	require.NoError(t, DecodeArea(grid, encode(t, lvl)))
	assert.Equal(t, foreground.EdgeTile(foreground.EdgeNone, foreground.EdgeStart), grid.At(0, 10))
	assert.Equal(t, foreground.EdgeTile(foreground.EdgeNone, foreground.EdgeMiddle), grid.At(1, 10))
	assert.Equal(t, foreground.EdgeTile(foreground.EdgeNone, foreground.EdgeMiddle), grid.At(2, 10))
	assert.Equal(t, foreground.EdgeTile(foreground.EdgeNone, foreground.EdgeEnd), grid.At(3, 10))
	assert.Equal(t, uint8(0x41), grid.At(0, 10))
	assert.Equal(t, uint8(0x43), grid.At(3, 10))
	for x := int32(0); x < 4; x++ {
		assert.Equal(t, foreground.Solid, grid.Solidity(gmV(x, 10)).Kind)
	}
}

func TestLandBlockEdgesAndCorners(t *testing.T) {
	// a 4x4 block at (10,10) missing its top-left cell
	lvl := &Level{Land: []LandRecord{
		{X: 11, Y: 10, W: 3, H: 1, Tile: foreground.TileLand},
		{X: 10, Y: 11, W: 4, H: 3, Tile: foreground.TileLand},
	}}
	grid := foreground.NewGrid()
	require.NoError(t, DecodeArea(grid, encode(t, lvl)))

	assert.NotEqual(t, foreground.TileLand, grid.At(10, 10), "missing cell stays unfilled")
	assert.Equal(t, uint8(0x51), grid.At(11, 10))
	assert.Equal(t, uint8(0x52), grid.At(12, 10))
	assert.Equal(t, uint8(0x53), grid.At(13, 10))
	assert.Equal(t, uint8(0x51), grid.At(10, 11))
	assert.Equal(t, foreground.TileCornerNW, grid.At(11, 11))
	assert.Equal(t, foreground.TileLandFill, grid.At(12, 12))
	assert.Equal(t, uint8(0x63), grid.At(13, 12))
	assert.Equal(t, uint8(0x71), grid.At(10, 13))
	assert.Equal(t, uint8(0x72), grid.At(11, 13))
	assert.Equal(t, uint8(0x73), grid.At(13, 13))
}

func TestLandRoundTripBeforeAutoTile(t *testing.T) {
	in := &Level{Land: []LandRecord{
		{X: 0, Y: 0, W: 30, H: 2, Tile: foreground.TileLand},
		{X: 40, Y: 100, W: 3, H: 17, Tile: foreground.TileLand},
		{X: 250, Y: 250, W: 20, H: 20, Tile: foreground.TileLand},
		{X: 5, Y: 0, W: 2, H: 1, Tile: foreground.TileEmpty},
	}}
	out, err := ParseLevel(encode(t, in))
	require.NoError(t, err)

	a, b := foreground.NewGrid(), foreground.NewGrid()
	in.FillLand(a)
	out.FillLand(b)
	assert.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, 30*2-2+3*17+6*6, a.Count(foreground.TileLand))
}

func TestDecodeIsDeterministic(t *testing.T) {
	lvl := &Level{Land: []LandRecord{
		{X: 0, Y: 100, W: 200, H: 4, Tile: foreground.TileLand},
		{X: 20, Y: 60, W: 17, H: 1, Tile: foreground.TileLand},
	}}
	src := encode(t, lvl)

	a, b := foreground.NewGrid(), foreground.NewGrid()
	require.NoError(t, DecodeArea(a, src))
	require.NoError(t, DecodeArea(b, src))
	assert.Equal(t, a.Cells(), b.Cells())

	decor := 0
	for id := foreground.TileDecor; id < foreground.TileDecor+4; id++ {
		decor += a.Count(id)
	}
	assert.Greater(t, decor, 0)
	for x := int32(0); x < 200; x++ {
		id := a.At(x, 99)
		if id != foreground.TileEmpty {
			assert.Equal(t, foreground.NonSolid, foreground.Classify(id).Kind)
		}
	}

	// decoding into a dirty grid gives the same result
	require.NoError(t, DecodeArea(b, src))
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestDecodeErrorLeavesGrid(t *testing.T) {
	grid := foreground.NewGrid()
	grid.Set(3, 3, foreground.TileCoin)
	err := DecodeArea(grid, []byte{0x00, 0x09, 1})
	require.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, foreground.TileCoin, grid.At(3, 3))
}

func TestObjectOpcodes(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  map[[2]int32]uint8
	}{
		{
			name:  "block row",
			chunk: Chunk{X: 1, Ops: []Op{{ID: OpBlockRow, X: 2, Y: 3, Param: 0x32}}},
			want:  map[[2]int32]uint8{{18, 3}: 2, {19, 3}: 2, {20, 3}: 2, {21, 3}: 0},
		},
		{
			name:  "block column",
			chunk: Chunk{Y: 1, Ops: []Op{{ID: OpBlockColumn, X: 0, Y: 0, Param: 0x25}}},
			want:  map[[2]int32]uint8{{0, 16}: 5, {0, 17}: 5, {0, 18}: 0},
		},
		{
			name:  "edged rectangle",
			chunk: Chunk{Ops: []Op{{ID: OpEdgedRect, X: 1, Y: 1, Param: 0x22}}},
			want: map[[2]int32]uint8{
				{1, 1}: 0x51, {2, 1}: 0x52, {3, 1}: 0x53,
				{1, 2}: 0x61, {2, 2}: 0x62, {3, 2}: 0x63,
				{1, 3}: 0x71, {2, 3}: 0x72, {3, 3}: 0x73,
			},
		},
		{
			name:  "single edged cell",
			chunk: Chunk{Ops: []Op{{ID: OpEdgedRect, X: 4, Y: 4, Param: 0x00}}},
			want:  map[[2]int32]uint8{{4, 4}: 0x40},
		},
		{
			name:  "land rectangle",
			chunk: Chunk{X: 2, Y: 2, Ops: []Op{{ID: OpLandRect, X: 0, Y: 0, Param: 0x11}}},
			want:  map[[2]int32]uint8{{32, 32}: 0x52, {33, 32}: 0x52, {32, 33}: 0x62, {33, 33}: 0x62},
		},
		{
			name:  "inner land",
			chunk: Chunk{Ops: []Op{{ID: OpInnerLand, X: 5, Y: 5, Param: 0x10}}},
			want:  map[[2]int32]uint8{{5, 5}: 0x62, {6, 5}: 0x62, {5, 6}: 0},
		},
		{
			name:  "uncompressed",
			chunk: Chunk{Ops: []Op{{ID: OpUncompressed, X: 1, Y: 1, Param: 0x11, Data: []byte{7, 8, 9, 10}}}},
			want:  map[[2]int32]uint8{{1, 1}: 7, {2, 1}: 8, {1, 2}: 9, {2, 2}: 10},
		},
		{
			name:  "semisolid platform",
			chunk: Chunk{Ops: []Op{{ID: OpSemisolid, X: 0, Y: 0, Param: 0x10}}},
			want: map[[2]int32]uint8{
				{0, 0}: 0x5D, {1, 0}: 0x5E, {2, 0}: 0x5F, {3, 0}: 0,
				{0, 1}: 0x6D, {1, 1}: 0x6E, {2, 1}: 0x6F, {0, 2}: 0,
			},
		},
		{
			name:  "ground stretch",
			chunk: Chunk{Y: 3, Ops: []Op{{ID: OpGroundStretch, Param: 0x1C}}},
			want:  map[[2]int32]uint8{{0, 59}: 0, {0, 60}: 0x52, {15, 60}: 0x52, {15, 63}: 0x62, {16, 60}: 0},
		},
		{
			name:  "land wall",
			chunk: Chunk{Ops: []Op{{ID: OpLandWall, X: 3, Y: 4, Param: flagTop | flagBottom | flagLeft | 2}}},
			want:  map[[2]int32]uint8{{3, 3}: 0x51, {3, 4}: 0x61, {3, 5}: 0x61, {3, 6}: 0x55},
		},
		{
			name:  "steep slope up",
			chunk: Chunk{Ops: []Op{{ID: OpSteepSlope, X: 0, Y: 8, Param: flagUp | 2}}},
			want:  map[[2]int32]uint8{{0, 8}: 0x46, {0, 9}: 0x56, {1, 7}: 0x46, {1, 8}: 0x56},
		},
		{
			name:  "steep slope down",
			chunk: Chunk{Ops: []Op{{ID: OpSteepSlope, X: 0, Y: 2, Param: 2}}},
			want:  map[[2]int32]uint8{{0, 2}: 0x47, {0, 3}: 0x57, {1, 3}: 0x47, {1, 4}: 0x57},
		},
		{
			name:  "gentle slope down",
			chunk: Chunk{Ops: []Op{{ID: OpGentleSlope, X: 0, Y: 0, Param: 1}}},
			want: map[[2]int32]uint8{
				{0, 0}: 0x75, {1, 0}: 0x76,
				{1, 1}: 0x74, {2, 1}: 0x75, {3, 1}: 0x76,
				{3, 2}: 0x74,
			},
		},
		{
			name:  "clipped at grid edge",
			chunk: Chunk{X: 15, Y: 15, Ops: []Op{{ID: OpBlockRow, X: 14, Y: 15, Param: 0x42}}},
			want:  map[[2]int32]uint8{{254, 255}: 2, {255, 255}: 2},
		},
		{
			name:  "unknown opcode",
			chunk: Chunk{Ops: []Op{{ID: 0x7E, X: 1, Y: 1, Param: 0xFF}}},
			want:  map[[2]int32]uint8{{1, 1}: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := foreground.NewGrid()
			require.NoError(t, DecodeArea(grid, encode(t, &Level{Chunks: []Chunk{tt.chunk}})))
			for pos, id := range tt.want {
				assert.Equal(t, id, grid.At(pos[0], pos[1]), "cell %v", pos)
			}
		})
	}
}

func TestObjectsPaintOverLand(t *testing.T) {
	lvl := &Level{
		Land:   []LandRecord{{X: 0, Y: 5, W: 8, H: 3, Tile: foreground.TileLand}},
		Chunks: []Chunk{{Ops: []Op{{ID: OpBlockRow, X: 2, Y: 4, Param: 0x22}}}},
	}
	grid := foreground.NewGrid()
	require.NoError(t, DecodeArea(grid, encode(t, lvl)))
	assert.Equal(t, foreground.TileCoin, grid.At(2, 4))
	assert.Equal(t, foreground.TileCoin, grid.At(3, 4))
	assert.Equal(t, uint8(0x51), grid.At(0, 5))
}
