package entity

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/shared/gamemath"
)

// Explosion is a short puff played where something disappeared.
type Explosion struct {
	TimeLeft int32
}

// NewExplosion plays an explosion whose bottom-centre is pos (fixed point).
func NewExplosion(pos gamemath.Vec2) *Entity {
	return &Entity{
		Data: NewData(pos, [2]int32{gamemath.TileSize, gamemath.TileSize}),
		Kind: &Explosion{TimeLeft: config.Effects.ExplosionTicks},
	}
}

func (*Explosion) Tag() string { return TagExplosion }

func (e *Explosion) run(_ *Context, d *Data) bool {
	e.TimeLeft--
	if e.TimeLeft <= 0 {
		return false
	}
	d.Frame = (config.Effects.ExplosionTicks - e.TimeLeft) / config.Effects.ExplosionStep
	return true
}

// Sign shows its text while the player stands in front of it.
type Sign struct {
	Text  string
	Shown bool
}

// NewSign places a sign at pos (fixed point).
func NewSign(pos gamemath.Vec2, text string) *Entity {
	return &Entity{
		Data: NewData(pos, config.Effects.SignHitbox),
		Kind: &Sign{Text: text},
	}
}

func (*Sign) Tag() string { return TagSign }

func (s *Sign) run(ctx *Context, d *Data) bool {
	pl, ok := ctx.Snapshot.Player()
	over := ok && pl.Data.Box().Overlaps(d.Box())
	switch {
	case over && !s.Shown:
		ctx.Events.ShowText(s.Text)
		s.Shown = true
	case !over && s.Shown:
		ctx.Events.HideText()
		s.Shown = false
	}
	return true
}
