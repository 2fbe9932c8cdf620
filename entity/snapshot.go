package entity

import (
	"slices"

	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Broad-phase space covering the whole grid plus a margin for entities that
// leave it. Coordinates outside are clamped, which only adds candidates.
const (
	spaceMargin = 512
	spaceSize   = foreground.Size*gamemath.TileSize + 2*spaceMargin
	spaceCell   = 64
)

// Sibling is a copy of one entity taken at the start of a tick.
type Sibling struct {
	Handle Handle
	Tag    string
	Data   Data
}

// Snapshot is the read-only view entities have of each other during a tick.
type Snapshot struct {
	player    Sibling
	hasPlayer bool
	entries   []Sibling
	index     [PoolSize]int // slot -> entries index + 1

	space   *resolv.Space
	objects []*resolv.Object
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		space: resolv.NewSpace(spaceSize, spaceSize, spaceCell, spaceCell),
	}
}

func (s *Snapshot) capture(p *Pool) {
	if len(s.objects) > 0 {
		s.space.Remove(s.objects...)
		s.objects = s.objects[:0]
	}
	s.entries = s.entries[:0]
	s.index = [PoolSize]int{}

	s.hasPlayer = p.Player != nil
	if s.hasPlayer {
		s.player = Sibling{Handle: PlayerHandle, Tag: p.Player.Kind.Tag(), Data: p.Player.Data}
		s.add(s.player, -1)
	}
	for h, e := range p.All() {
		sib := Sibling{Handle: h, Tag: e.Kind.Tag(), Data: e.Data}
		s.entries = append(s.entries, sib)
		s.index[h.slot] = len(s.entries)
		s.add(sib, len(s.entries)-1)
	}
}

func (s *Snapshot) add(sib Sibling, idx int) {
	x, y, w, h := spaceRect(sib.Data.Box())
	obj := resolv.NewObject(x, y, w, h, sib.Tag)
	obj.Data = idx
	s.space.Add(obj)
	s.objects = append(s.objects, obj)
}

func spaceRect(b Box) (x, y, w, h float64) {
	lo := b.Min.Pixel().Add(gamemath.V(spaceMargin, spaceMargin))
	hi := b.Max.Pixel().Add(gamemath.V(spaceMargin, spaceMargin))
	lo.X = gamemath.Clamp(lo.X, 0, spaceSize-1)
	lo.Y = gamemath.Clamp(lo.Y, 0, spaceSize-1)
	hi.X = gamemath.Clamp(hi.X, 0, spaceSize-1)
	hi.Y = gamemath.Clamp(hi.Y, 0, spaceSize-1)
	return float64(lo.X), float64(lo.Y), float64(max(hi.X-lo.X, 1)), float64(max(hi.Y-lo.Y, 1))
}

// Player returns the player as it was when the tick started.
func (s *Snapshot) Player() (Sibling, bool) {
	return s.player, s.hasPlayer
}

// Get looks up a sibling by handle.
func (s *Snapshot) Get(h Handle) (Sibling, bool) {
	if h.IsPlayer() {
		return s.Player()
	}
	if !h.Valid() || h.slot < 0 || h.slot >= PoolSize || s.index[h.slot] == 0 {
		return Sibling{}, false
	}
	sib := s.entries[s.index[h.slot]-1]
	if sib.Handle != h {
		return Sibling{}, false
	}
	return sib, true
}

// All returns every slot entity in slot order.
func (s *Snapshot) All() []Sibling {
	return s.entries
}

// Near returns the siblings with the given tag whose hitbox overlaps box,
// in slot order with the player first.
func (s *Snapshot) Near(tag string, box Box) []Sibling {
	x, y, w, h := spaceRect(box)
	query := resolv.NewObject(x, y, w, h)
	s.space.Add(query)
	defer s.space.Remove(query)

	check := query.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []Sibling
	seen := make(map[int]bool)
	for _, obj := range check.ObjectsByTags(tag) {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		sib := s.player
		if idx >= 0 {
			sib = s.entries[idx]
		}
		if sib.Data.Box().Overlaps(box) {
			out = append(out, sib)
		}
	}
	slices.SortFunc(out, func(a, b Sibling) int {
		return a.Handle.slot - b.Handle.slot
	})
	return out
}
