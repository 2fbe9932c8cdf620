package framebuffer

import (
	"image/color"
	"testing"

	"github.com/automoto/tooth/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelBounds(t *testing.T) {
	f := New(4, 3)
	assert.Nil(t, f.Pixel(gamemath.V(-1, 0)))
	assert.Nil(t, f.Pixel(gamemath.V(4, 0)))
	assert.Nil(t, f.Pixel(gamemath.V(0, 3)))

	px := f.Pixel(gamemath.V(3, 2))
	require.NotNil(t, px)
	*px = RGBA(1, 2, 3, 4)
	assert.Equal(t, uint32(0x04030201), *f.Pixel(gamemath.V(3, 2)))
}

func TestPixelsVisitsEveryPixelInOrder(t *testing.T) {
	f := New(3, 2)
	var seen []gamemath.Vec2
	for p, px := range f.Pixels() {
		*px = uint32(p.X + p.Y*10)
		seen = append(seen, p)
	}
	require.Len(t, seen, 6)
	assert.Equal(t, gamemath.V(0, 0), seen[0])
	assert.Equal(t, gamemath.V(2, 1), seen[5])
	assert.Equal(t, uint32(12), *f.Pixel(gamemath.V(2, 1)))

	n := 0
	for range f.Pixels() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestBytesAreRGBA(t *testing.T) {
	f := New(1, 1)
	f.Fill(RGBA(0x10, 0x20, 0x30, 0xFF))
	assert.Equal(t, []byte{0x10, 0x20, 0x30, 0xFF}, f.Bytes(nil))
}

func TestDrawImage(t *testing.T) {
	f := New(2, 2)
	f.Set(1, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	f.Set(5, 5, color.White)
	assert.Equal(t, color.RGBA{R: 9, G: 8, B: 7, A: 255}, f.At(1, 1))
	assert.Equal(t, color.RGBA{}, f.At(-1, 0))
}

func TestRectClips(t *testing.T) {
	f := New(4, 4)
	Rect(f, gamemath.V(2, 2), 5, 5, 1)
	n := 0
	for _, px := range f.Pixels() {
		if *px == 1 {
			n++
		}
	}
	assert.Equal(t, 4, n)
}

func TestSpriteFlipAndTransparency(t *testing.T) {
	f := New(3, 1)
	Sprite(f, gamemath.V(0, 0), 3, []uint32{5, 0, 6}, true)
	assert.Equal(t, uint32(6), *f.Pixel(gamemath.V(0, 0)))
	assert.Equal(t, uint32(0), *f.Pixel(gamemath.V(1, 0)))
	assert.Equal(t, uint32(5), *f.Pixel(gamemath.V(2, 0)))
}
