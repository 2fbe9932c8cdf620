// Package entity runs the per-tick simulation of the player and the pooled
// entities: movement, the tile collision resolver, and sibling interaction
// through a read-only snapshot.
package entity

import (
	"github.com/automoto/tooth/shared/gamemath"
)

// Side indexes Data.Blocked.
type Side int

const (
	Up Side = iota
	Down
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "side(?)"
}

// Data is the physical state shared by every entity kind. Pos is the
// bottom-centre of the hitbox in fixed point; Hitbox is the full width and
// height in pixels.
type Data struct {
	Pos    gamemath.Vec2
	Vel    gamemath.Vec2
	Hitbox gamemath.Vec2

	Blocked  [4]bool // indexed by Side, from the last ProcessCollision
	OnGround bool
	HFlip    bool
	Frame    int32
	Angle    int32 // slope class, -2..2
}

// NewData places an entity with the given hitbox at pos (fixed point).
func NewData(pos gamemath.Vec2, hitbox [2]int32) Data {
	return Data{
		Pos:    pos,
		Hitbox: gamemath.V(hitbox[0], hitbox[1]),
	}
}

// Pixel returns the position in whole pixels.
func (d *Data) Pixel() gamemath.Vec2 {
	return d.Pos.Pixel()
}

// Box returns the hitbox bounds in fixed point.
func (d *Data) Box() Box {
	return Box{
		Min: d.Pos.Sub(gamemath.V(d.Hitbox.X/2, d.Hitbox.Y).Fixed()),
		Max: d.Pos.Add(gamemath.V(d.Hitbox.X/2, 0).Fixed()),
	}
}

// Centre returns the middle of the hitbox in fixed point.
func (d *Data) Centre() gamemath.Vec2 {
	return d.Pos.Sub(gamemath.V(0, d.Hitbox.Y/2).Fixed())
}

// Box is an inclusive axis-aligned rectangle in fixed point.
type Box struct {
	Min, Max gamemath.Vec2
}

// Around returns a box of the given pixel radius centred on p (fixed point).
func Around(p gamemath.Vec2, radius int32) Box {
	r := gamemath.V(radius, radius).Fixed()
	return Box{Min: p.Sub(r), Max: p.Add(r)}
}

// Overlaps reports whether the two boxes share any point.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p gamemath.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
