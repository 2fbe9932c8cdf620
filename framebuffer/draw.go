package framebuffer

import "github.com/automoto/tooth/shared/gamemath"

// Rect fills a w x h rectangle at p, clipped to the surface.
func Rect(s Surface, p gamemath.Vec2, w, h int32, px uint32) {
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if dst := s.Pixel(p.Add(gamemath.V(x, y))); dst != nil {
				*dst = px
			}
		}
	}
}

// Outline draws a one pixel rectangle border.
func Outline(s Surface, p gamemath.Vec2, w, h int32, px uint32) {
	Rect(s, p, w, 1, px)
	Rect(s, p.Add(gamemath.V(0, h-1)), w, 1, px)
	Rect(s, p, 1, h, px)
	Rect(s, p.Add(gamemath.V(w-1, 0)), 1, h, px)
}

// Blend mixes src over the pixel at p by alpha/255.
func Blend(s Surface, p gamemath.Vec2, src uint32, alpha uint8) {
	dst := s.Pixel(p)
	if dst == nil {
		return
	}
	sr, sg, sb, _ := Unpack(src)
	dr, dg, db, da := Unpack(*dst)
	mix := func(a, b uint8) uint8 {
		return uint8((uint32(a)*uint32(alpha) + uint32(b)*uint32(255-alpha)) / 255)
	}
	*dst = RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), da)
}

// Sprite copies a w-wide block of packed pixels to p, skipping zero pixels
// and mirroring horizontally when flip is set.
func Sprite(s Surface, p gamemath.Vec2, w int32, pix []uint32, flip bool) {
	for i, px := range pix {
		if px == 0 {
			continue
		}
		x, y := int32(i)%w, int32(i)/w
		if flip {
			x = w - 1 - x
		}
		if dst := s.Pixel(p.Add(gamemath.V(x, y))); dst != nil {
			*dst = px
		}
	}
}
