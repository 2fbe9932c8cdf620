// Package level runs one level: the tile grid, the entity pool, scoring, the
// camera and everything drawn on top of the world.
package level

import (
	"fmt"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/entity"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/automoto/tooth/shared/leveldata"
	"github.com/automoto/tooth/terrain"
)

// Stats is the score block. Timer counts frames.
type Stats struct {
	Coins int
	Score int
	Timer int
}

// State owns everything one level needs; entities reach it only through
// the entity.Events it implements.
type State struct {
	Grid     *foreground.Grid
	Pool     *entity.Pool
	Buttons  controller.Buttons
	Stats    Stats
	Camera   gamemath.Vec2
	HUD      *HUD
	Fade     *Fade
	Manifest *leveldata.Manifest
	Restarts int

	level  *terrain.Level
	size   gamemath.Vec2 // pixels
	screen gamemath.Vec2
}

// New decodes src and places the player and the manifest's entities.
func New(src []byte, m *leveldata.Manifest) (*State, error) {
	lvl, err := terrain.ParseLevel(src)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", m.Name, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", m.Name, err)
	}
	s := &State{
		Grid:     foreground.NewGrid(),
		HUD:      NewHUD(),
		Manifest: m,
		level:    lvl,
		size:     gamemath.V(m.Size[0], m.Size[1]).Mul(gamemath.TileSize),
		screen:   gamemath.V(framebuffer.Width, framebuffer.Height),
	}
	s.reset()
	return s, nil
}

// Size is the level size in pixels.
func (s *State) Size() gamemath.Vec2 { return s.size }

// standOn is the fixed point position of something standing on the bottom
// row of tile (x, y).
func standOn(x, y int32) gamemath.Vec2 {
	return gamemath.V(x*gamemath.TileSize+gamemath.TileSize/2, y*gamemath.TileSize+gamemath.TileSize-1).Fixed()
}

func spawnEntity(spec leveldata.EntitySpec) *entity.Entity {
	pos := standOn(spec.X, spec.Y)
	switch spec.Kind {
	case leveldata.KindKey:
		return entity.NewKey(pos)
	case leveldata.KindLock:
		return entity.NewLock(gamemath.V(spec.X, spec.Y))
	case leveldata.KindSign:
		return entity.NewSign(pos, spec.Text)
	case leveldata.KindStar:
		return entity.NewStar(pos, 1)
	}
	return nil
}

// reset repaints the terrain and puts every entity back where the level
// starts them. The score block carries over.
func (s *State) reset() {
	s.level.Paint(s.Grid)
	spawn := standOn(s.Manifest.Spawn[0], s.Manifest.Spawn[1])
	s.Pool = entity.NewPool(entity.NewPlayer(spawn))
	for _, spec := range s.Manifest.Entities {
		if e := spawnEntity(spec); e != nil {
			s.Pool.Spawn(e)
		}
	}
	s.HUD.Box = Textbox{cell: s.HUD.cell}
	s.Fade = NewFade(s.screen)
	s.Camera = Follow(Target(spawn, s.screen), spawn, s.size, s.screen)
}

// Tick runs one frame with this frame's button sample.
func (s *State) Tick(sample controller.Button) {
	s.Buttons = s.Buttons.Next(sample)
	s.Pool.Run(s.Grid, s.Buttons, s)

	if s.Pool.Player.Pos.Pixel().Y > s.size.Y+config.Level.FallMargin {
		s.Restarts++
		s.reset()
		return
	}

	if s.Stats.Timer < config.Level.TimerMax {
		s.Stats.Timer++
	}
	s.Camera = Follow(s.Camera, s.Pool.Player.Pos, s.size, s.screen)
	s.HUD.Update()
	s.Fade.Update()
}

// AddCoins counts collected coins. Every coin is also worth points, and
// the counter rolls over.
func (s *State) AddCoins(n int) {
	s.Stats.Coins += n
	s.Stats.Score += n * config.Level.CoinPoints
	for s.Stats.Coins >= config.Level.CoinRollover {
		s.Stats.Coins -= config.Level.CoinRollover
	}
}

func (s *State) AddScore(n int)      { s.Stats.Score += n }
func (s *State) ShowText(msg string) { s.HUD.ShowText(msg) }
func (s *State) HideText()           { s.HUD.HideText() }
