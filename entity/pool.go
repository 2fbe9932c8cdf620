package entity

import (
	"iter"

	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/foreground"
)

// PoolSize is the number of entity slots besides the player.
const PoolSize = 64

// Handle refers to a pool slot. It goes stale once the slot is freed, so a
// handle kept across ticks never resolves to a later occupant. The zero
// Handle refers to nothing.
type Handle struct {
	slot int
	gen  uint32
}

// PlayerHandle refers to the player, which lives outside the slots.
var PlayerHandle = Handle{slot: -1, gen: 1}

// Valid reports whether h was ever issued.
func (h Handle) Valid() bool { return h.gen != 0 }

// IsPlayer reports whether h refers to the player.
func (h Handle) IsPlayer() bool { return h == PlayerHandle }

// Slot returns the slot index, -1 for the player.
func (h Handle) Slot() int { return h.slot }

// Entity is one simulated object.
type Entity struct {
	Data
	Kind Kind
}

// Kind is the closed set of entity behaviours. run advances one tick and
// returns false when the entity should be removed.
type Kind interface {
	Tag() string
	run(ctx *Context, d *Data) bool
}

// Pool owns the player and a fixed number of entity slots.
type Pool struct {
	Player *Entity

	slots [PoolSize]*Entity
	gens  [PoolSize]uint32

	// applied after every entity has run
	spawns []*Entity
	kills  []Handle

	snap *Snapshot
}

// NewPool creates a pool around the given player entity.
func NewPool(player *Entity) *Pool {
	return &Pool{
		Player: player,
		snap:   newSnapshot(),
	}
}

// Spawn places e in the first free slot. When every slot is taken the
// entity is dropped and ok is false.
func (p *Pool) Spawn(e *Entity) (h Handle, ok bool) {
	if e == nil {
		return Handle{}, false
	}
	for i, s := range p.slots {
		if s != nil {
			continue
		}
		p.gens[i]++
		if p.gens[i] == 0 {
			p.gens[i] = 1
		}
		p.slots[i] = e
		return Handle{slot: i, gen: p.gens[i]}, true
	}
	return Handle{}, false
}

// Kill frees the slot h refers to. Stale handles and the player are ignored.
func (p *Pool) Kill(h Handle) bool {
	if !p.live(h) || h.IsPlayer() {
		return false
	}
	p.slots[h.slot] = nil
	return true
}

func (p *Pool) live(h Handle) bool {
	if h.IsPlayer() {
		return p.Player != nil
	}
	if !h.Valid() || h.slot < 0 || h.slot >= PoolSize {
		return false
	}
	return p.slots[h.slot] != nil && p.gens[h.slot] == h.gen
}

// Get resolves a handle, returning nil when it is stale.
func (p *Pool) Get(h Handle) *Entity {
	if !p.live(h) {
		return nil
	}
	if h.IsPlayer() {
		return p.Player
	}
	return p.slots[h.slot]
}

// Len returns the number of occupied slots.
func (p *Pool) Len() int {
	n := 0
	for _, s := range p.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// All yields occupied slots in slot order. The player is not included.
func (p *Pool) All() iter.Seq2[Handle, *Entity] {
	return func(yield func(Handle, *Entity) bool) {
		for i, e := range p.slots {
			if e == nil {
				continue
			}
			if !yield(Handle{slot: i, gen: p.gens[i]}, e) {
				return
			}
		}
	}
}

// Clear empties every slot. The player is kept.
func (p *Pool) Clear() {
	clear(p.slots[:])
	p.spawns = p.spawns[:0]
	p.kills = p.kills[:0]
}

// Snapshot returns the sibling view taken at the start of the last Run.
func (p *Pool) Snapshot() *Snapshot {
	return p.snap
}

// Run advances every entity by one tick: the player first, then the slots in
// order. Entities see each other only through a snapshot taken before the
// first one runs. Spawns and kills requested during the tick are applied at
// the end, kills first.
func (p *Pool) Run(grid *foreground.Grid, buttons controller.Buttons, events Events) {
	if events == nil {
		events = NopEvents{}
	}
	p.snap.capture(p)
	ctx := &Context{
		Grid:     grid,
		Buttons:  buttons,
		Snapshot: p.snap,
		Events:   events,
		pool:     p,
	}

	if p.Player != nil {
		ctx.self = PlayerHandle
		p.Player.Kind.run(ctx, &p.Player.Data)
	}
	for i, e := range p.slots {
		if e == nil {
			continue
		}
		ctx.self = Handle{slot: i, gen: p.gens[i]}
		if !e.Kind.run(ctx, &e.Data) {
			p.kills = append(p.kills, ctx.self)
		}
	}

	for _, h := range p.kills {
		p.Kill(h)
	}
	for _, e := range p.spawns {
		p.Spawn(e)
	}
	p.kills = p.kills[:0]
	p.spawns = p.spawns[:0]
}
