package level

import (
	"image/color"

	"github.com/automoto/tooth/entity"
)

var (
	playerFrames    = buildPlayerFrames()
	keySprite       = buildKeySprite()
	lockSprite      = buildLockSprite()
	starFrames      = buildStarFrames()
	explosionFrames = buildExplosionFrames()
	signSprite      = buildSignSprite()
)

func playerColors() map[byte]color.RGBA {
	p := ColorPalette
	return map[byte]color.RGBA{'o': p.Outline, 's': p.Skin, 'r': p.Shirt, 'b': p.Pants}
}

func buildPlayerFrames() []Sprite {
	c := playerColors()
	head := []string{
		"....oooo....",
		"...orrrro...",
		"..orrrrrrro.",
		"..ossssso...",
		"..osssosso..",
		"..ossssssso.",
		"...osssso...",
		"....oooo....",
	}
	body := []string{
		"...orrrro...",
		"..orrrrrro..",
		".osrrrrrrso.",
		".osrrrrrrso.",
		".oorrrrrroo.",
		"...obbbbo...",
		"...obbbbo...",
		"...obbbbo...",
	}
	legs := [][]string{
		{ // stride
			"..obbo.obbo.",
			"..obbo..obo.",
			".obbo...obbo",
			".obo.....obo",
			".obo.....obo",
			"oooo.....ooo",
			"oooo.....ooo",
			"............",
		},
		{ // jump
			"..obbo.obbo.",
			"..obbo.obbo.",
			"..obbo..obbo",
			"..obbo...obo",
			".oooo....obo",
			".oooo...oooo",
			".........ooo",
			"............",
		},
		{ // stand
			"...obbobbo..",
			"...obbobbo..",
			"...obbobbo..",
			"...obbobbo..",
			"...obbobbo..",
			"..ooooooooo.",
			"..ooooooooo.",
			"............",
		},
	}
	frames := make([]Sprite, len(legs))
	for i, l := range legs {
		rows := append(append(append([]string{}, head...), body...), l...)
		frames[i] = fromRows(c, rows...)
	}
	return frames
}

func buildKeySprite() Sprite {
	p := ColorPalette
	return fromRows(map[byte]color.RGBA{'y': p.Gold, 'o': p.GoldDark},
		".yyy....",
		"yo.oy...",
		"yo.oy...",
		".yyyyyyy",
		"....y.y.",
		"....y.yy",
		"........",
		"........")
}

func buildLockSprite() Sprite {
	p := ColorPalette
	return fromRows(map[byte]color.RGBA{'y': p.Gold, 'o': p.GoldDark, 'k': p.Outline},
		"................",
		"................",
		".....oooooo.....",
		"....o......o....",
		"....o......o....",
		"....o......o....",
		"...yyyyyyyyyy...",
		"...yyyyyyyyyy...",
		"...yyyykkyyyy...",
		"...yyyykkyyyy...",
		"...yyyyykyyyy...",
		"...yyyyykyyyy...",
		"...yyyyyyyyyy...",
		"...oooooooooo...",
		"................",
		"................")
}

func buildStarFrames() []Sprite {
	p := ColorPalette
	c := map[byte]color.RGBA{'y': p.Gold, 'w': p.Smoke, 'o': p.GoldDark}
	return []Sprite{
		fromRows(c,
			"...y....",
			"...y....",
			"yyyyyyy.",
			".yywyy..",
			"..yyy...",
			".yy.yy..",
			".y...y..",
			"........"),
		fromRows(c,
			"...o....",
			"...o....",
			"ooyyyoo.",
			".oywyo..",
			"..yyy...",
			".oo.oo..",
			".o...o..",
			"........"),
	}
}

func buildExplosionFrames() []Sprite {
	p := ColorPalette
	frames := make([]Sprite, 4)
	for f := range frames {
		s := newSprite(tileSize, tileSize)
		r := int32(2 + f*2)
		for y := int32(0); y < tileSize; y++ {
			for x := int32(0); x < tileSize; x++ {
				dx, dy := x-tileSize/2, y-tileSize/2
				d := dx*dx + dy*dy
				if d <= r*r && d >= (r-2)*(r-2) {
					s.set(x, y, p.Smoke)
				}
			}
		}
		frames[f] = s
	}
	return frames
}

func buildSignSprite() Sprite {
	p := ColorPalette
	return fromRows(map[byte]color.RGBA{'w': p.Plank, 'd': p.PlankDark, 'k': p.Outline},
		"................",
		"................",
		"dddddddddddddddd",
		"dwwwwwwwwwwwwwwd",
		"dwkkkwkkwkkkkwwd",
		"dwwwwwwwwwwwwwwd",
		"dwkkwkkkkwkkkwwd",
		"dwwwwwwwwwwwwwwd",
		"dddddddddddddddd",
		".......dd.......",
		".......dd.......",
		".......dd.......",
		".......dd.......",
		".......dd.......",
		".......dd.......",
		".......dd.......")
}

// spriteFor picks the art of an entity; ok is false for kinds that draw
// nothing.
func spriteFor(e *entity.Entity) (Sprite, bool) {
	frame := func(frames []Sprite) Sprite {
		f := int(e.Frame)
		if f < 0 || f >= len(frames) {
			f = len(frames) - 1
		}
		return frames[f]
	}
	switch e.Kind.(type) {
	case *entity.Player:
		return frame(playerFrames), true
	case *entity.Key:
		if e.Frame == 1 {
			return Sprite{}, false // blinking while it unlocks
		}
		return keySprite, true
	case *entity.Lock:
		return lockSprite, true
	case *entity.Star:
		return frame(starFrames), true
	case *entity.Explosion:
		return frame(explosionFrames), true
	case *entity.Sign:
		return signSprite, true
	}
	return Sprite{}, false
}
