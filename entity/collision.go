package entity

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/shared/gamemath"
)

// tileMask rounds a fixed-point coordinate down to its tile boundary.
const tileMask int32 = 0x7FFFF000

// TileSink receives the tile side effects of a collision pass. The resolver
// has already rewritten the cell when either method is called.
type TileSink interface {
	// Collect is called after a collectible at tile was cleared.
	Collect(tile gamemath.Vec2)
	// Eject is called after an eject block at tile was hit from below and
	// turned into a spent block.
	Eject(tile gamemath.Vec2)
}

// clamp is one candidate position from a sensor probe.
type clamp struct {
	at   int32
	ok   bool
	hurt bool
}

// combineClamp merges two probe results. With takeMin the smaller position
// wins, otherwise the larger; a missing result never wins.
func combineClamp(l, r clamp, takeMin bool) clamp {
	switch {
	case !l.ok:
		return r
	case !r.ok:
		return l
	}
	out := clamp{ok: true, hurt: l.hurt || r.hurt}
	if takeMin {
		out.at = min(l.at, r.at)
	} else {
		out.at = max(l.at, r.at)
	}
	return out
}

// collide classifies the tile under a sensor and consumes collectibles. A
// nil sink leaves collectibles in place.
func (d *Data) collide(loc gamemath.Vec2, grid *foreground.Grid, sink TileSink) foreground.Solidity {
	tile := foreground.ClampTile(loc.Tile())
	s := grid.Solidity(tile)
	if s.Kind == foreground.Collectible && sink != nil {
		grid.SetTile(tile, foreground.TileEmpty)
		sink.Collect(tile)
	}
	return s
}

func surfaceY(s foreground.Solidity, x int32) int32 {
	switch s.Kind {
	case foreground.SlopeSteep:
		return gamemath.SteepSurfaceY(s.Dir, x)
	case foreground.SlopeLow:
		return gamemath.LowSurfaceY(s.Dir, x)
	}
	return gamemath.HighSurfaceY(s.Dir, x)
}

// sensorDown resolves a probe below the feet. id is 0 for the left probe and
// 1 for the right one; a slope only answers the probe on its low side.
func (d *Data) sensorDown(loc gamemath.Vec2, id int, grid *foreground.Grid, sink TileSink) clamp {
	s := d.collide(loc, grid, sink)
	blockY := loc.Y * gamemath.FixedOne & tileMask
	top := blockY - gamemath.FixedOne
	in := loc.InTile()

	switch s.Kind {
	case foreground.Solid, foreground.EjectUp:
		d.Angle = 0
		return clamp{at: top, ok: true}
	case foreground.Semisolid:
		if d.Pos.Y <= blockY {
			d.Angle = 0
			return clamp{at: top, ok: true}
		}
	case foreground.HurtTop:
		d.Angle = 0
		return clamp{at: top, ok: true, hurt: true}
	case foreground.Slab:
		if in.Y > 7 {
			return clamp{at: blockY + 7*gamemath.FixedOne, ok: true}
		}
	case foreground.SlopeAssist:
		d.Angle = gamemath.SlopeAngle(s.Dir, s.Steep)
		return clamp{at: blockY - 2*gamemath.FixedOne, ok: true}
	case foreground.SlopeSteep, foreground.SlopeLow, foreground.SlopeHigh:
		if s.Dir == (id != 0) {
			break
		}
		surface := surfaceY(s, in.X)
		if in.Y >= surface || (d.OnGround && d.Vel.Y >= 0) {
			d.Angle = gamemath.SlopeAngle(s.Dir, s.Kind == foreground.SlopeSteep)
			return clamp{at: blockY + surface*gamemath.FixedOne, ok: true}
		}
	}
	return clamp{}
}

// sensorUp resolves a probe above the head.
func (d *Data) sensorUp(loc gamemath.Vec2, grid *foreground.Grid, sink TileSink) clamp {
	s := d.collide(loc, grid, sink)
	below := loc.Y*gamemath.FixedOne&tileMask + (gamemath.TileSize+d.Hitbox.Y)*gamemath.FixedOne

	switch s.Kind {
	case foreground.Solid, foreground.Slab:
		return clamp{at: below, ok: true}
	case foreground.EjectUp:
		if sink != nil {
			tile := foreground.ClampTile(loc.Tile())
			grid.SetTile(tile, foreground.TileSpentBlock)
			sink.Eject(tile)
		}
		return clamp{at: below, ok: true}
	}
	return clamp{}
}

// sensorSide resolves a probe on the leading edge of horizontal motion.
func (d *Data) sensorSide(loc gamemath.Vec2, grid *foreground.Grid, sink TileSink, isRight bool) clamp {
	s := d.collide(loc, grid, sink)
	x := loc.X * gamemath.FixedOne & tileMask
	var at int32
	if isRight {
		at = x + (-1-d.Hitbox.X/2)*gamemath.FixedOne
	} else {
		at = x + (gamemath.TileSize+d.Hitbox.X/2)*gamemath.FixedOne
	}

	switch s.Kind {
	case foreground.Solid, foreground.HurtTop:
		return clamp{at: at, ok: true}
	case foreground.Slab:
		if loc.Y%gamemath.TileSize > 7 {
			return clamp{at: at, ok: true}
		}
	case foreground.SlopeSteep:
		if s.Dir != isRight {
			d.Angle = gamemath.SlopeAngle(s.Dir, true)
		}
	}
	return clamp{}
}

// ProcessCollision moves the entity by its velocity against the grid, one
// axis at a time, and records which sides were blocked. sink may be nil for
// entities that do not interact with tiles.
func (d *Data) ProcessCollision(grid *foreground.Grid, sink TileSink) {
	d.Blocked = [4]bool{}

	// horizontal
	next := gamemath.V(d.Pos.X+d.Vel.X, d.Pos.Y)
	isRight := d.Vel.X >= 0
	sensorX := -d.Hitbox.X/2 - 1
	if isRight {
		sensorX = d.Hitbox.X/2 + 1
	}
	px := next.Pixel()
	side := [3]gamemath.Vec2{
		px.Add(gamemath.V(sensorX, -d.Hitbox.Y)),
		px.Add(gamemath.V(sensorX, -d.Hitbox.Y/2)),
		px.Add(gamemath.V(sensorX, 0)),
	}
	var res clamp
	for _, loc := range side {
		res = combineClamp(d.sensorSide(loc, grid, sink, isRight), res, false)
	}
	if res.ok {
		if isRight {
			d.Blocked[Right] = true
		} else {
			d.Blocked[Left] = true
		}
		d.Vel.X = 0
		next.X = res.at
	}
	d.Pos = next

	// vertical
	next = gamemath.V(d.Pos.X, d.Pos.Y+d.Vel.Y)
	if d.OnGround {
		next.Y += (d.Vel.X / 2) * d.Angle
		if d.Angle != 0 {
			next.Y += config.Physics.SlopeStick
		}
	}
	isDown := d.Vel.Y >= 0
	sensorY := -d.Hitbox.Y - 1
	if isDown {
		sensorY = 1
	}
	px = next.Pixel()
	vertical := [2]gamemath.Vec2{
		px.Add(gamemath.V(-d.Hitbox.X/2, sensorY)),
		px.Add(gamemath.V(d.Hitbox.X/2, sensorY)),
	}
	res = clamp{}
	for id, loc := range vertical {
		var c clamp
		if isDown {
			c = d.sensorDown(loc, id, grid, sink)
		} else {
			c = d.sensorUp(loc, grid, sink)
		}
		res = combineClamp(c, res, true)
	}
	if res.ok {
		next.Y = res.at
		d.Vel.Y = 0
		if isDown {
			d.Blocked[Down] = true
		} else {
			d.Blocked[Up] = true
		}
	}
	d.OnGround = d.Blocked[Down]
	if res.hurt {
		// spikes launch the entity instead of grounding it
		d.Vel.Y = config.Physics.HurtBounce
		d.OnGround = false
	}
	d.Pos = next
	d.Pos.X = max(d.Pos.X, d.Hitbox.X/2*gamemath.FixedOne)
}
