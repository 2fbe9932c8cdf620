package level

import (
	"image/color"

	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
)

const tileSize = gamemath.TileSize

// ColorPalette defines the colours of the generated placeholder art.
var ColorPalette = struct {
	// Terrain
	Dirt      color.RGBA
	DirtDark  color.RGBA
	Grass     color.RGBA
	GrassDark color.RGBA
	Plank     color.RGBA
	PlankDark color.RGBA
	Stone     color.RGBA
	StoneDark color.RGBA
	Door      color.RGBA
	DoorDark  color.RGBA

	// Pickups and hazards
	Gold     color.RGBA
	GoldDark color.RGBA
	Spike    color.RGBA
	Flower   color.RGBA

	// Entities
	Skin    color.RGBA
	Shirt   color.RGBA
	Pants   color.RGBA
	Outline color.RGBA
	Smoke   color.RGBA
	Debug   color.RGBA
}{
	Dirt:      color.RGBA{0xC0, 0x7A, 0x3C, 255},
	DirtDark:  color.RGBA{0x8A, 0x4F, 0x24, 255},
	Grass:     color.RGBA{0x58, 0xC0, 0x3C, 255},
	GrassDark: color.RGBA{0x2E, 0x80, 0x28, 255},
	Plank:     color.RGBA{0xD8, 0xA0, 0x60, 255},
	PlankDark: color.RGBA{0x90, 0x60, 0x30, 255},
	Stone:     color.RGBA{0x9C, 0x9C, 0xAC, 255},
	StoneDark: color.RGBA{0x5C, 0x5C, 0x6C, 255},
	Door:      color.RGBA{0x8C, 0x50, 0x28, 255},
	DoorDark:  color.RGBA{0x50, 0x2C, 0x14, 255},

	Gold:     color.RGBA{0xFF, 0xD0, 0x20, 255},
	GoldDark: color.RGBA{0xC0, 0x80, 0x00, 255},
	Spike:    color.RGBA{0xE0, 0xE0, 0xF0, 255},
	Flower:   color.RGBA{0xF0, 0x50, 0x80, 255},

	Skin:    color.RGBA{0xF8, 0xC8, 0x98, 255},
	Shirt:   color.RGBA{0xD8, 0x28, 0x28, 255},
	Pants:   color.RGBA{0x28, 0x48, 0xC8, 255},
	Outline: color.RGBA{0x20, 0x18, 0x18, 255},
	Smoke:   color.RGBA{0xF0, 0xF0, 0xE8, 255},
	Debug:   color.RGBA{0xFF, 0x00, 0xFF, 255},
}

func pack(c color.RGBA) uint32 {
	return framebuffer.RGBA(c.R, c.G, c.B, c.A)
}

// Sprite is a block of packed pixels; zero pixels are transparent.
type Sprite struct {
	W, H int32
	Pix  []uint32
}

func newSprite(w, h int32) Sprite {
	return Sprite{W: w, H: h, Pix: make([]uint32, w*h)}
}

func (s Sprite) set(x, y int32, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	s.Pix[y*s.W+x] = pack(c)
}

func (s Sprite) fill(x, y, w, h int32, c color.RGBA) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.set(i, j, c)
		}
	}
}

// fromRows builds a sprite from text rows; '.' is transparent and every
// other character is looked up in colors.
func fromRows(colors map[byte]color.RGBA, rows ...string) Sprite {
	s := newSprite(int32(len(rows[0])), int32(len(rows)))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if c, ok := colors[row[x]]; ok {
				s.set(int32(x), int32(y), c)
			}
		}
	}
	return s
}

// solidTile creates a simple solid-coloured tile.
func solidTile(c color.RGBA) Sprite {
	s := newSprite(tileSize, tileSize)
	s.fill(0, 0, tileSize, tileSize, c)
	return s
}

// borderedTile creates a tile with a border.
func borderedTile(fill, border color.RGBA, width int32) Sprite {
	s := solidTile(border)
	s.fill(width, width, tileSize-2*width, tileSize-2*width, fill)
	return s
}

// patternedTile overlays a simple pattern on a solid tile.
func patternedTile(base, pattern color.RGBA, kind string) Sprite {
	s := solidTile(base)
	switch kind {
	case "dots":
		for _, p := range [][2]int32{{4, 4}, {11, 4}, {4, 11}, {11, 11}} {
			s.fill(p[0], p[1], 2, 2, pattern)
		}
	case "bars":
		for x := int32(3); x < tileSize; x += 5 {
			s.fill(x, 0, 2, tileSize, pattern)
		}
	case "speckle":
		for _, p := range [][2]int32{{3, 5}, {9, 2}, {12, 9}, {6, 12}, {1, 14}, {14, 14}} {
			s.set(p[0], p[1], pattern)
		}
	}
	return s
}

// landTile draws a land edge tile from its vertical and horizontal edge
// classes: grass on top edges and a dark rim on the other open sides.
func landTile(vertical, horizontal int) Sprite {
	p := ColorPalette
	s := patternedTile(p.Dirt, p.DirtDark, "speckle")
	if horizontal == foreground.EdgeNone || horizontal == foreground.EdgeStart {
		s.fill(0, 0, 1, tileSize, p.DirtDark)
	}
	if horizontal == foreground.EdgeNone || horizontal == foreground.EdgeEnd {
		s.fill(tileSize-1, 0, 1, tileSize, p.DirtDark)
	}
	if vertical == foreground.EdgeNone || vertical == foreground.EdgeEnd {
		s.fill(0, tileSize-1, tileSize, 1, p.DirtDark)
	}
	if vertical == foreground.EdgeNone || vertical == foreground.EdgeStart {
		s.fill(0, 0, tileSize, 4, p.Grass)
		s.fill(0, 4, tileSize, 1, p.GrassDark)
	}
	return s
}

// slopeTile fills every column from its surface row down.
func slopeTile(surface func(x int32) int32) Sprite {
	p := ColorPalette
	s := newSprite(tileSize, tileSize)
	for x := int32(0); x < tileSize; x++ {
		top := gamemath.Clamp(surface(x), 0, tileSize)
		s.fill(x, top, 1, tileSize-top, p.Dirt)
		s.fill(x, top, 1, 3, p.Grass)
	}
	return s
}

func platformTile(h int) Sprite {
	p := ColorPalette
	s := newSprite(tileSize, tileSize)
	s.fill(0, 0, tileSize, 5, p.Plank)
	s.fill(0, 5, tileSize, 1, p.PlankDark)
	if h == 0x0D {
		s.fill(0, 0, 1, 6, p.PlankDark)
	}
	if h == 0x0F {
		s.fill(tileSize-1, 0, 1, 6, p.PlankDark)
	}
	return s
}

func supportTile(h int) Sprite {
	p := ColorPalette
	s := newSprite(tileSize, tileSize)
	switch h {
	case 0x0D:
		s.fill(2, 0, 3, tileSize, p.PlankDark)
	case 0x0F:
		s.fill(tileSize-5, 0, 3, tileSize, p.PlankDark)
	}
	return s
}

func decorTile(variant uint8) Sprite {
	p := ColorPalette
	c := map[byte]color.RGBA{'g': p.Grass, 'd': p.GrassDark, 'f': p.Flower}
	switch variant {
	case 0:
		return fromRows(c,
			"................", "................", "................", "................",
			"................", "................", "................", "................",
			"................", "................", "................", "......g...g.....",
			"...g..g..g.g....", "...gd.gd.gdg..g.", "..dgddgddgdgddg.", "..dddddddddddddd")
	case 1:
		return fromRows(c,
			"................", "................", "................", "................",
			"................", "................", "................", "................",
			"................", ".......f........", "......fff.......", ".......f........",
			".......d........", "......dd........", "......d.........", "......d.........")
	case 2:
		return fromRows(c,
			"................", "................", "................", "................",
			"................", "................", "................", "................",
			"................", "................", "................", "................",
			"................", "....g.......g...", "...gdg.....gdg..", "...ddd.....ddd..")
	}
	return newSprite(tileSize, tileSize)
}

func spikeTile() Sprite {
	p := ColorPalette
	s := newSprite(tileSize, tileSize)
	for i := int32(0); i < 4; i++ {
		for y := int32(0); y < 8; y++ {
			half := y / 2
			s.fill(i*4+2-half/2, 8+y, half+1, 1, p.Spike)
		}
	}
	s.fill(0, tileSize-2, tileSize, 2, p.StoneDark)
	return s
}

func coinTile() Sprite {
	p := ColorPalette
	return fromRows(map[byte]color.RGBA{'y': p.Gold, 'o': p.GoldDark},
		"................",
		"................",
		"......yyyy......",
		".....yyyyyy.....",
		"....yyooyyyy....",
		"....yyoyyyyy....",
		"....yyoyyyyy....",
		"....yyoyyyyy....",
		"....yyoyyyyy....",
		"....yyoyyyyy....",
		"....yyoyyyyy....",
		"....yyyyyyoy....",
		".....yyyyoo.....",
		"......oooo......",
		"................",
		"................")
}

func slabTile() Sprite {
	p := ColorPalette
	s := newSprite(tileSize, tileSize)
	s.fill(0, 8, tileSize, 8, p.Stone)
	s.fill(0, 8, tileSize, 1, p.Spike)
	s.fill(0, tileSize-1, tileSize, 1, p.StoneDark)
	return s
}

var tileArt = buildTileArt()

func buildTileArt() [256]Sprite {
	p := ColorPalette
	var art [256]Sprite
	for i := range art {
		id := uint8(i)
		sol := foreground.Classify(id)
		hi, lo := int(id>>4), int(id&0x0F)
		switch {
		case id == foreground.TileEmpty:
		case id >= foreground.TileDecor && id < foreground.TileDecor+4:
			art[i] = decorTile(id - foreground.TileDecor)
		case id >= 0x6D && id <= 0x6F:
			art[i] = supportTile(lo)
		case id >= 0x5D && id <= 0x5F:
			art[i] = platformTile(lo)
		case sol.Kind == foreground.NonSolid:
		case sol.Kind == foreground.Collectible:
			art[i] = coinTile()
		case sol.Kind == foreground.EjectUp:
			art[i] = borderedTile(p.Gold, p.GoldDark, 1)
			art[i].fill(7, 4, 2, 5, p.GoldDark)
			art[i].fill(7, 10, 2, 2, p.GoldDark)
		case sol.Kind == foreground.HurtTop:
			art[i] = spikeTile()
		case sol.Kind == foreground.Slab:
			art[i] = slabTile()
		case id == foreground.TilePlatform:
			art[i] = platformTile(0x0E)
		case sol.Kind == foreground.SlopeSteep:
			art[i] = slopeTile(func(x int32) int32 { return gamemath.SteepSurfaceY(sol.Dir, x) })
		case sol.Kind == foreground.SlopeLow:
			art[i] = slopeTile(func(x int32) int32 { return gamemath.LowSurfaceY(sol.Dir, x) })
		case sol.Kind == foreground.SlopeHigh:
			art[i] = slopeTile(func(x int32) int32 { return gamemath.HighSurfaceY(sol.Dir, x) })
		case sol.Kind == foreground.SlopeAssist:
			art[i] = patternedTile(p.Dirt, p.DirtDark, "speckle")
		case id == foreground.TileSpentBlock:
			art[i] = borderedTile(p.PlankDark, p.DoorDark, 1)
		case id == foreground.TileDoor:
			art[i] = patternedTile(p.Door, p.DoorDark, "bars")
		case hi >= 4 && hi <= 7 && lo <= 3:
			art[i] = landTile(hi-4, lo)
		case hi >= 4 && hi <= 7 && lo == 8:
			art[i] = patternedTile(p.Dirt, p.DirtDark, "speckle")
		default:
			art[i] = borderedTile(p.Stone, p.StoneDark, 1)
		}
	}
	return art
}

// TileArt returns the placeholder art of a tile id; empty for tiles that
// draw nothing.
func TileArt(id uint8) Sprite {
	return tileArt[id]
}
