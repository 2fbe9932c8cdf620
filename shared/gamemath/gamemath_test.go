package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a, b := V(3, -5), V(-1, 2)
	assert.Equal(t, V(2, -3), a.Add(b))
	assert.Equal(t, V(4, -7), a.Sub(b))
	assert.Equal(t, V(6, -10), a.Mul(2))
	assert.Equal(t, V(-3, -10), a.Scale(b))
	assert.Equal(t, V(-1, -5), a.Min(b))
	assert.Equal(t, V(3, 2), a.Max(b))
	assert.Equal(t, V(3, 5), a.Abs())
	assert.True(t, Vec2{}.IsZero())
	assert.Equal(t, "(3, -5)", a.String())
}

func TestVec2DivisionTruncates(t *testing.T) {
	v := V(-300, 300)
	assert.Equal(t, V(-1, 1), v.Pixel(), "division truncates toward zero")
	assert.Equal(t, V(-44, 44), v.Rem(FixedOne), "remainder keeps the dividend's sign")
	assert.Equal(t, V(-2, 1), v.Shr(8), "shift floors")
}

func TestVec2Conversions(t *testing.T) {
	assert.Equal(t, V(0x300, 0x1000), V(3, 16).Fixed())
	assert.Equal(t, V(2, 0), V(47, 15).Tile())
	assert.Equal(t, V(15, 15), V(47, 15).InTile())
}

func TestApproachAndClamp(t *testing.T) {
	assert.Equal(t, int32(0x20), Approach(0x30, 0x10))
	assert.Equal(t, int32(-0x20), Approach(-0x30, 0x10))
	assert.Equal(t, int32(0), Approach(0x08, 0x10), "never crosses zero")
	assert.Equal(t, int32(0x400), ClampAbs(0x900, 0x400))
	assert.Equal(t, int32(-0x400), ClampAbs(-0x900, 0x400))
	assert.Equal(t, int32(5), Clamp(5, 0, 10))
	assert.Equal(t, int32(-1), Sign(-7))
	assert.Equal(t, int32(0), Sign(0))
	assert.Equal(t, int32(1), Sign(7))
	assert.Equal(t, int32(12), Smooth(10, 18, 4))
}

func TestSlopeSurfaces(t *testing.T) {
	assert.Equal(t, int32(15), SteepSurfaceY(false, 0))
	assert.Equal(t, int32(0), SteepSurfaceY(false, 15))
	assert.Equal(t, int32(-1), SteepSurfaceY(true, 0))
	assert.Equal(t, int32(14), SteepSurfaceY(true, 15))

	// a gentle slope rises one row per two columns across its two tiles
	assert.Equal(t, LowSurfaceY(false, 15)-1, HighSurfaceY(false, 0))
	assert.Equal(t, int32(7), LowSurfaceY(true, 0))
	assert.Equal(t, int32(6), HighSurfaceY(true, 15))

	assert.Equal(t, int32(2), SlopeAngle(true, true))
	assert.Equal(t, int32(-1), SlopeAngle(false, false))
}
