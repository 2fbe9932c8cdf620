package foreground

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridAtSaturates(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 7)
	g.Set(255, 255, 9)
	g.Set(255, 0, 3)

	assert.Equal(t, uint8(7), g.At(-5, -1))
	assert.Equal(t, uint8(9), g.At(256, 300))
	assert.Equal(t, uint8(3), g.At(1000, -1000))
	assert.False(t, g.Set(256, 0, 1))
	assert.False(t, g.Set(-1, 0, 1))
}

func TestGridFillClips(t *testing.T) {
	g := NewGrid()
	g.Fill(250, -2, 10, 4, 1)
	assert.Equal(t, 6*2, g.Count(1))
	g.Clear()
	assert.Equal(t, Size*Size, g.Count(TileEmpty))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id   uint8
		want Solidity
	}{
		{0x00, Solidity{Kind: NonSolid}},
		{0x01, Solidity{Kind: Solid}},
		{0x02, Solidity{Kind: Collectible}},
		{0x03, Solidity{Kind: EjectUp}},
		{0x04, Solidity{Kind: Semisolid}},
		{0x05, Solidity{Kind: HurtTop}},
		{0x31, Solidity{Kind: NonSolid}},
		{0x46, Solidity{Kind: SlopeSteep}},
		{0x47, Solidity{Kind: SlopeSteep, Dir: true}},
		{0x49, Solidity{Kind: Slab}},
		{0x52, Solidity{Kind: Semisolid}},
		{0x56, Solidity{Kind: SlopeAssist, Steep: true}},
		{0x57, Solidity{Kind: SlopeAssist, Dir: true, Steep: true}},
		{0x5D, Solidity{Kind: Semisolid}},
		{0x5F, Solidity{Kind: Semisolid}},
		{0x62, Solidity{Kind: Solid}},
		{0x64, Solidity{Kind: SlopeLow}},
		{0x65, Solidity{Kind: SlopeHigh}},
		{0x66, Solidity{Kind: SlopeAssist}},
		{0x6E, Solidity{Kind: NonSolid}},
		{0x74, Solidity{Kind: SlopeAssist, Dir: true}},
		{0x75, Solidity{Kind: SlopeHigh, Dir: true}},
		{0x76, Solidity{Kind: SlopeLow, Dir: true}},
		{0x7F, Solidity{Kind: Solid}},
		{0xFF, Solidity{Kind: Solid}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.id), "tile %#02x", tt.id)
	}
}

func TestEdgeTileTable(t *testing.T) {
	assert.Equal(t, uint8(0x40), EdgeTile(EdgeNone, EdgeNone))
	assert.Equal(t, TileLandTop, EdgeTile(EdgeStart, EdgeMiddle))
	assert.Equal(t, TileLandFill, EdgeTile(EdgeMiddle, EdgeMiddle))
	assert.Equal(t, uint8(0x73), EdgeTile(EdgeEnd, EdgeEnd))

	assert.Equal(t, EdgeNone, EdgeClass(false, false))
	assert.Equal(t, EdgeStart, EdgeClass(false, true))
	assert.Equal(t, EdgeMiddle, EdgeClass(true, true))
	assert.Equal(t, EdgeEnd, EdgeClass(true, false))
}

func TestSolidityString(t *testing.T) {
	assert.Equal(t, "SlopeLow(down)", Classify(TileGentleDnLo).String())
	assert.Equal(t, "SlopeAssist(up,steep)", Classify(TileSteepUpB).String())
	assert.Equal(t, "Collectible", Classify(TileCoin).String())
}
