package entity

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/shared/gamemath"
)

// Star bounces around after leaving an item block and is worth points when
// the player catches it.
type Star struct {
	TimeLeft int32
}

// NewStar launches a star from pos, moving right for dir > 0 and left
// otherwise.
func NewStar(pos gamemath.Vec2, dir int32) *Entity {
	cfg := &config.Star
	e := &Entity{
		Data: NewData(pos, cfg.Hitbox),
		Kind: &Star{TimeLeft: cfg.Lifetime},
	}
	e.Vel = gamemath.V(cfg.Speed, cfg.Launch)
	if dir <= 0 {
		e.Vel.X = -cfg.Speed
		e.HFlip = true
	}
	return e
}

func (*Star) Tag() string { return TagStar }

func (s *Star) run(ctx *Context, d *Data) bool {
	cfg := &config.Star

	s.TimeLeft--
	if s.TimeLeft <= 0 {
		ctx.Spawn(NewExplosion(d.Pos))
		return false
	}

	if pl, ok := ctx.Snapshot.Player(); ok && pl.Data.Box().Overlaps(d.Box()) {
		ctx.Events.AddScore(cfg.Points)
		ctx.Spawn(NewExplosion(d.Pos))
		return false
	}

	d.Vel.Y = min(d.Vel.Y+cfg.Gravity, cfg.MaxFallSpeed)
	d.ProcessCollision(ctx.Grid, nil)

	if d.Blocked[Down] {
		d.Vel.Y = cfg.Bounce
		d.OnGround = false
	}
	if d.Blocked[Up] {
		d.Vel.Y = cfg.Gravity
	}
	if d.Blocked[Left] {
		d.Vel.X = cfg.Speed
		d.HFlip = false
	}
	if d.Blocked[Right] {
		d.Vel.X = -cfg.Speed
		d.HFlip = true
	}
	d.Frame = s.TimeLeft / 8 % 2
	return true
}
