package foreground

// Kind is the collision family of a tile.
type Kind uint8

const (
	NonSolid Kind = iota
	Solid
	Collectible
	Semisolid
	EjectUp
	HurtTop
	Slab
	SlopeHigh
	SlopeLow
	SlopeSteep
	SlopeAssist
)

var kindNames = [...]string{
	NonSolid:    "NonSolid",
	Solid:       "Solid",
	Collectible: "Collectible",
	Semisolid:   "Semisolid",
	EjectUp:     "EjectUp",
	HurtTop:     "HurtTop",
	Slab:        "Slab",
	SlopeHigh:   "SlopeHigh",
	SlopeLow:    "SlopeLow",
	SlopeSteep:  "SlopeSteep",
	SlopeAssist: "SlopeAssist",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Solidity is the classification of one tile. Dir is set for slopes that
// descend toward the right; Steep only applies to SlopeAssist.
type Solidity struct {
	Kind  Kind
	Dir   bool
	Steep bool
}

// IsSlope reports whether the tile belongs to one of the sloped families.
func (s Solidity) IsSlope() bool {
	switch s.Kind {
	case SlopeHigh, SlopeLow, SlopeSteep, SlopeAssist:
		return true
	}
	return false
}

func (s Solidity) String() string {
	switch s.Kind {
	case SlopeHigh, SlopeLow, SlopeSteep:
		if s.Dir {
			return s.Kind.String() + "(down)"
		}
		return s.Kind.String() + "(up)"
	case SlopeAssist:
		d, st := "up", "gentle"
		if s.Dir {
			d = "down"
		}
		if s.Steep {
			st = "steep"
		}
		return "SlopeAssist(" + d + "," + st + ")"
	}
	return s.Kind.String()
}

var table [256]Solidity

func init() {
	for i := range table {
		table[i] = Solidity{Kind: Solid}
	}
	table[TileEmpty] = Solidity{Kind: NonSolid}
	table[TileCoin] = Solidity{Kind: Collectible}
	table[TileItemBlock] = Solidity{Kind: EjectUp}
	table[TilePlatform] = Solidity{Kind: Semisolid}
	table[TileSpikes] = Solidity{Kind: HurtTop}
	table[TileSlab] = Solidity{Kind: Slab}
	table[TileLandTop] = Solidity{Kind: Semisolid}

	table[TileSteepUp] = Solidity{Kind: SlopeSteep}
	table[TileSteepDown] = Solidity{Kind: SlopeSteep, Dir: true}
	table[TileSteepUpB] = Solidity{Kind: SlopeAssist, Steep: true}
	table[TileSteepDownB] = Solidity{Kind: SlopeAssist, Dir: true, Steep: true}
	table[TileGentleUpB] = Solidity{Kind: SlopeAssist}
	table[TileGentleDnB] = Solidity{Kind: SlopeAssist, Dir: true}
	table[TileGentleUpLo] = Solidity{Kind: SlopeLow}
	table[TileGentleUpHi] = Solidity{Kind: SlopeHigh}
	table[TileGentleDnHi] = Solidity{Kind: SlopeHigh, Dir: true}
	table[TileGentleDnLo] = Solidity{Kind: SlopeLow, Dir: true}

	for id := TileDecor; id < TileDecor+4; id++ {
		table[id] = Solidity{Kind: NonSolid}
	}
	// semisolid platforms: tops are one-way, supports are scenery
	for id := 0x5D; id <= 0x5F; id++ {
		table[id] = Solidity{Kind: Semisolid}
	}
	for id := 0x6D; id <= 0x6F; id++ {
		table[id] = Solidity{Kind: NonSolid}
	}
}

// Classify maps a tile id to its solidity. Unknown ids are Solid.
func Classify(id uint8) Solidity {
	return table[id]
}
