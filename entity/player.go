package entity

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/shared/gamemath"
)

// Tags name each kind in the snapshot.
const (
	TagPlayer    = "player"
	TagKey       = "key"
	TagLock      = "lock"
	TagExplosion = "explosion"
	TagStar      = "star"
	TagSign      = "sign"
)

// Animation frames of the player sprite.
const (
	FrameJump  = 1
	FrameStand = 2
)

// Player is the controllable character.
type Player struct {
	PMeter    int32
	PSpeed    bool
	AnimTimer int32
}

// NewPlayer creates the player standing at pos (fixed point).
func NewPlayer(pos gamemath.Vec2) *Entity {
	return &Entity{
		Data: NewData(pos, config.Player.Hitbox),
		Kind: &Player{},
	}
}

func (*Player) Tag() string { return TagPlayer }

// jumpLift picks the take-off speed for the current run speed.
func jumpLift(velX int32) int32 {
	cfg := &config.Player
	i := gamemath.Abs(velX) / cfg.JumpLiftStep
	i = gamemath.Clamp(i, 0, int32(len(cfg.JumpLift)-1))
	return cfg.JumpLift[i]
}

func (p *Player) run(ctx *Context, d *Data) bool {
	cfg := &config.Player
	b := ctx.Buttons

	// drop through one-way platforms
	if b.Pressed(controller.C) {
		d.Pos.Y += cfg.DropOffset
	}

	if !d.OnGround {
		if b.Held(controller.A) {
			d.Vel.Y += cfg.GravityHold
		} else {
			d.Vel.Y += cfg.Gravity
		}
		d.Vel.Y = min(d.Vel.Y, cfg.MaxFallSpeed)
	} else if b.Pressed(controller.A) {
		d.Vel.Y = -jumpLift(d.Vel.X) + cfg.GravityHold
		d.OnGround = false
	} else {
		d.Vel.Y = 0
	}

	maxSpeed := cfg.WalkSpeed
	if p.PMeter == cfg.PMeterMax {
		maxSpeed = cfg.RunSpeed
	}
	switch {
	case b.Held(controller.Left):
		d.HFlip = true
		if d.Vel.X >= 0 {
			d.Vel.X = max(d.Vel.X-cfg.TurnAccel, -maxSpeed)
		} else {
			d.Vel.X = max(d.Vel.X-cfg.Accel, -maxSpeed)
			if d.OnGround || p.PSpeed {
				p.PMeter += cfg.PMeterGain
			}
		}
	case b.Held(controller.Right):
		d.HFlip = false
		if d.Vel.X > 0 {
			d.Vel.X = min(d.Vel.X+cfg.Accel, maxSpeed)
			if d.OnGround || p.PSpeed {
				p.PMeter += cfg.PMeterGain
			}
		} else {
			d.Vel.X = min(d.Vel.X+cfg.TurnAccel, maxSpeed)
		}
	case d.OnGround:
		p.PSpeed = false
		d.Vel.X = gamemath.Approach(d.Vel.X, cfg.Friction)
	}

	p.PMeter--
	if p.PMeter > cfg.PMeterMax {
		p.PSpeed = true
		p.PMeter = cfg.PMeterMax
	}
	p.PMeter = max(p.PMeter, 0)

	if d.OnGround {
		p.AnimTimer += gamemath.Abs(d.Vel.X)
		if p.AnimTimer > cfg.StepDistance {
			p.AnimTimer -= cfg.StepDistance
			d.Frame = (d.Frame + 1) % cfg.WalkFrames
		}
		if d.Vel.X == 0 {
			p.AnimTimer = cfg.StepDistance - 1
			d.Frame = FrameStand
		}
	} else {
		d.Frame = FrameJump
	}

	d.ProcessCollision(ctx.Grid, ctx)
	if d.Blocked[Left] || d.Blocked[Right] {
		p.PSpeed = false
	}
	return true
}
