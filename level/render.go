package level

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/entity"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
)

// Render draws the frame as the camera sees it: sky, terrain, entities,
// the HUD and, while the level starts, the fade mask.
func (s *State) Render(c Canvas) {
	DrawSky(c, s.Camera, s.size)
	DrawTiles(c, s.Grid, s.Camera, s.size)
	for _, e := range s.Pool.All() {
		s.drawEntity(c, e)
	}
	s.drawEntity(c, s.Pool.Player)
	s.HUD.Draw(c, s.Stats, s.Pool.Player.Pos)

	centre := s.Pool.Player.Pos.Pixel().Sub(s.Camera).Sub(gamemath.V(0, 24))
	s.Fade.Draw(c, centre)
}

// DrawSky fills the surface with a vertical gradient over the level height.
func DrawSky(c framebuffer.Surface, camera, level gamemath.Vec2) {
	top, bottom := config.SkyTop, config.SkyBottom
	span := max(level.Y, 1)
	lerp := func(a, b uint8, y int32) uint8 {
		return uint8(int32(a) + (int32(b)-int32(a))*y/span)
	}
	lastY, col := int32(-1), uint32(0)
	for p, px := range c.Pixels() {
		y := gamemath.Clamp(p.Y+camera.Y, 0, span)
		if y != lastY {
			col = framebuffer.RGBA(lerp(top.R, bottom.R, y), lerp(top.G, bottom.G, y), lerp(top.B, bottom.B, y), 0xFF)
			lastY = y
		}
		*px = col
	}
}

// DrawTiles draws the placeholder art of every tile inside the level that
// overlaps the view.
func DrawTiles(c framebuffer.Surface, grid *foreground.Grid, camera, level gamemath.Vec2) {
	size := c.Size()
	first := camera.Max(gamemath.Vec2{}).Tile()
	last := camera.Add(size).Min(level.Sub(gamemath.V(1, 1))).Tile()
	for ty := first.Y; ty <= last.Y; ty++ {
		for tx := first.X; tx <= last.X; tx++ {
			if !foreground.InBounds(tx, ty) {
				continue
			}
			art := TileArt(grid.At(tx, ty))
			if art.Pix == nil {
				continue
			}
			at := gamemath.V(tx, ty).Mul(gamemath.TileSize).Sub(camera)
			framebuffer.Sprite(c, at, art.W, art.Pix, false)
		}
	}
}

func (s *State) drawEntity(c framebuffer.Surface, e *entity.Entity) {
	if sp, ok := spriteFor(e); ok {
		foot := e.Pos.Pixel().Sub(s.Camera)
		at := foot.Sub(gamemath.V(sp.W/2, sp.H-1))
		framebuffer.Sprite(c, at, sp.W, sp.Pix, e.HFlip)
	}
	if s.HUD.Debug {
		box := e.Box()
		topLeft := box.Min.Pixel().Sub(s.Camera)
		size := box.Max.Sub(box.Min).Pixel().Add(gamemath.V(1, 1))
		framebuffer.Outline(c, topLeft, size.X, size.Y, pack(ColorPalette.Debug))
	}
}
