// Package framebuffer is the software frame the level renders into.
package framebuffer

import (
	"encoding/binary"
	"image"
	"image/color"
	"iter"

	"github.com/automoto/tooth/shared/gamemath"
)

// Frame dimensions in pixels.
const (
	Width  = 320
	Height = 180
)

// Surface is a pixel-addressable drawing target. Drawing code must tolerate
// Pixel returning nil for positions outside the surface.
type Surface interface {
	Pixel(p gamemath.Vec2) *uint32
	Pixels() iter.Seq2[gamemath.Vec2, *uint32]
	Size() gamemath.Vec2
}

// Framebuffer stores pixels as 0xAABBGGRR, so the little-endian bytes are
// RGBA.
type Framebuffer struct {
	w, h int32
	pix  []uint32
}

// New returns a black frame of the given size.
func New(w, h int32) *Framebuffer {
	return &Framebuffer{w: w, h: h, pix: make([]uint32, w*h)}
}

// NewDefault returns a Width x Height frame.
func NewDefault() *Framebuffer {
	return New(Width, Height)
}

// RGBA packs a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// Unpack splits a packed pixel into its channels.
func Unpack(px uint32) (r, g, b, a uint8) {
	return uint8(px), uint8(px >> 8), uint8(px >> 16), uint8(px >> 24)
}

func (f *Framebuffer) Size() gamemath.Vec2 {
	return gamemath.V(f.w, f.h)
}

func (f *Framebuffer) Pixel(p gamemath.Vec2) *uint32 {
	if p.X < 0 || p.Y < 0 || p.X >= f.w || p.Y >= f.h {
		return nil
	}
	return &f.pix[p.Y*f.w+p.X]
}

func (f *Framebuffer) Pixels() iter.Seq2[gamemath.Vec2, *uint32] {
	return func(yield func(gamemath.Vec2, *uint32) bool) {
		for i := range f.pix {
			p := gamemath.V(int32(i)%f.w, int32(i)/f.w)
			if !yield(p, &f.pix[i]) {
				return
			}
		}
	}
}

// Fill sets every pixel.
func (f *Framebuffer) Fill(px uint32) {
	for i := range f.pix {
		f.pix[i] = px
	}
}

// Bytes returns the frame as RGBA bytes, reusing dst when it is big enough.
func (f *Framebuffer) Bytes(dst []byte) []byte {
	n := len(f.pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, px := range f.pix {
		binary.LittleEndian.PutUint32(dst[i*4:], px)
	}
	return dst
}

// The methods below make the frame a draw.Image so x/image/font can render
// text straight into it.

func (f *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(f.w), int(f.h))
}

func (f *Framebuffer) At(x, y int) color.Color {
	px := f.Pixel(gamemath.V(int32(x), int32(y)))
	if px == nil {
		return color.RGBA{}
	}
	r, g, b, a := Unpack(*px)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	px := f.Pixel(gamemath.V(int32(x), int32(y)))
	if px == nil {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	*px = RGBA(rgba.R, rgba.G, rgba.B, rgba.A)
}
