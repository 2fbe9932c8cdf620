package entity

import (
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/shared/gamemath"
)

// Events is how entities report to the level around them.
type Events interface {
	AddCoins(n int)
	AddScore(n int)
	ShowText(msg string)
	HideText()
}

// NopEvents discards every event.
type NopEvents struct{}

func (NopEvents) AddCoins(int)    {}
func (NopEvents) AddScore(int)    {}
func (NopEvents) ShowText(string) {}
func (NopEvents) HideText()       {}

// Context is what an entity sees during its turn. Only the grid and the
// entity's own Data may be mutated; everything else goes through Spawn,
// Kill and Events.
type Context struct {
	Grid     *foreground.Grid
	Buttons  controller.Buttons
	Snapshot *Snapshot
	Events   Events

	pool *Pool
	self Handle
}

// Self returns the handle of the entity whose turn it is.
func (c *Context) Self() Handle {
	return c.self
}

// Spawn queues e to enter the pool once the tick ends.
func (c *Context) Spawn(e *Entity) {
	c.pool.spawns = append(c.pool.spawns, e)
}

// Kill queues the removal of h once the tick ends.
func (c *Context) Kill(h Handle) {
	c.pool.kills = append(c.pool.kills, h)
}

// Collect rewards a collected coin with an explosion where it was.
func (c *Context) Collect(tile gamemath.Vec2) {
	c.Spawn(NewExplosion(tile.Mul(gamemath.TileSize).Add(gamemath.V(8, 14)).Fixed()))
	c.Events.AddCoins(1)
}

// Eject launches a star out of the top of the block at tile, away from the
// way the player faces.
func (c *Context) Eject(tile gamemath.Vec2) {
	dir := int32(1)
	if pl, ok := c.Snapshot.Player(); ok && pl.Data.HFlip {
		dir = -1
	}
	pos := tile.Mul(gamemath.TileSize).Add(gamemath.V(gamemath.TileSize/2, -1)).Fixed()
	c.Spawn(NewStar(pos, dir))
}
