package level

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var fadeBlack = framebuffer.RGBA(0, 0, 0, 0xFF)

// Fade is the circle that opens around the player when a level starts.
type Fade struct {
	tween  *gween.Tween
	radius float32
	active bool
}

// NewFade starts a fade that opens to the larger screen dimension.
func NewFade(screen gamemath.Vec2) *Fade {
	if config.Debug.SkipFade {
		return &Fade{}
	}
	end := float32(max(screen.X, screen.Y))
	return &Fade{tween: gween.New(0, end, float32(config.Level.FadeInTicks), ease.Linear)}
}

// Update grows the circle by one tick.
func (f *Fade) Update() {
	if f.tween == nil {
		f.active = false
		return
	}
	r, done := f.tween.Update(1)
	f.radius, f.active = r, true
	if done {
		f.tween = nil
	}
}

// Radius is the current circle radius in pixels.
func (f *Fade) Radius() int32 { return int32(f.radius) }

// Done reports whether the circle has fully opened and stopped drawing.
func (f *Fade) Done() bool { return f.tween == nil && !f.active }

// Draw blacks out every pixel farther than the radius from centre.
func (f *Fade) Draw(s framebuffer.Surface, centre gamemath.Vec2) {
	if !f.active {
		return
	}
	r := int64(f.radius)
	for p, px := range s.Pixels() {
		d := p.Sub(centre)
		if int64(d.X)*int64(d.X)+int64(d.Y)*int64(d.Y) > r*r {
			*px = fadeBlack
		}
	}
}
