package entity

import (
	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/shared/gamemath"
)

// Key lies around until the player touches it, then follows the player. Near
// a lock it flies to the lock and opens the door above it.
type Key struct {
	PickedUp        bool
	UnlockingTarget Handle
	UnlockTimer     int32
}

// NewKey places a key at pos (fixed point).
func NewKey(pos gamemath.Vec2) *Entity {
	return &Entity{
		Data: NewData(pos, config.Key.Hitbox),
		Kind: &Key{},
	}
}

func (*Key) Tag() string { return TagKey }

func (k *Key) run(ctx *Context, d *Data) bool {
	cfg := &config.Key
	if k.UnlockingTarget.Valid() {
		return k.unlock(ctx, d)
	}

	pl, hasPlayer := ctx.Snapshot.Player()
	if !k.PickedUp {
		d.Vel.X = 0
		d.Vel.Y = min(d.Vel.Y+cfg.Gravity, cfg.MaxFallSpeed)
		d.ProcessCollision(ctx.Grid, nil)
		if hasPlayer && Around(d.Centre(), cfg.PickupRadius).Overlaps(pl.Data.Box()) {
			k.PickedUp = true
		}
		return true
	}
	if !hasPlayer {
		return true
	}

	// hover over the player's head unless a lock is close by
	target := pl.Data.Pos.Sub(gamemath.V(0, pl.Data.Hitbox.Y+cfg.HoverHeight).Fixed())
	locks := ctx.Snapshot.Near(TagLock, Around(d.Centre(), cfg.PairRadius))
	if len(locks) > 0 {
		target = locks[0].Data.Centre().Add(gamemath.V(0, d.Hitbox.Y/2).Fixed())
	}

	d.Vel.X = gamemath.Smooth(d.Vel.X, (target.X-d.Pos.X)/cfg.Follow, cfg.Smoothing)
	d.Vel.Y = gamemath.Smooth(d.Vel.Y, (target.Y-d.Pos.Y)/cfg.Follow, cfg.Smoothing)
	d.Pos = d.Pos.Add(d.Vel)
	d.HFlip = pl.Data.HFlip

	if len(locks) > 0 && Around(target, cfg.ReachRadius).Contains(d.Pos) {
		k.UnlockingTarget = locks[0].Handle
		k.UnlockTimer = cfg.UnlockTicks
		d.Vel = gamemath.Vec2{}
	}
	return true
}

func (k *Key) unlock(ctx *Context, d *Data) bool {
	cfg := &config.Key
	k.UnlockTimer--
	d.Frame = k.UnlockTimer / 4 % 2
	if k.UnlockTimer > 0 {
		return true
	}

	lock, ok := ctx.Snapshot.Get(k.UnlockingTarget)
	if !ok {
		// lock went away; go back to following
		k.UnlockingTarget = Handle{}
		d.Frame = 0
		return true
	}
	tile := lock.Data.Pos.Pixel().Tile()
	for i := range cfg.DoorHeight {
		door := tile.Sub(gamemath.V(0, i))
		ctx.Grid.SetTile(door, foreground.TileEmpty)
		ctx.Spawn(NewExplosion(door.Mul(gamemath.TileSize).Add(gamemath.V(8, 15)).Fixed()))
	}
	ctx.Kill(lock.Handle)
	ctx.Events.AddScore(cfg.Points)
	return false
}

// Lock marks the bottom tile of a door that a key can open.
type Lock struct{}

// NewLock places a lock on the door tile at tile; the door extends upward
// from there.
func NewLock(tile gamemath.Vec2) *Entity {
	pos := gamemath.V(tile.X*gamemath.TileSize+gamemath.TileSize/2, (tile.Y+1)*gamemath.TileSize-1)
	return &Entity{
		Data: NewData(pos.Fixed(), config.Key.LockHitbox),
		Kind: &Lock{},
	}
}

func (*Lock) Tag() string { return TagLock }

func (*Lock) run(*Context, *Data) bool { return true }
