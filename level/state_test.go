package level

import (
	"testing"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/automoto/tooth/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoState(t *testing.T) *State {
	t.Helper()
	m, src, err := leveldata.Demo()
	require.NoError(t, err)
	s, err := New(src, m)
	require.NoError(t, err)
	return s
}

func TestNewPlacesEntities(t *testing.T) {
	s := demoState(t)
	assert.Equal(t, len(s.Manifest.Entities), s.Pool.Len())
	assert.Equal(t, standOn(3, 12), s.Pool.Player.Pos)
	assert.Equal(t, gamemath.V(64*16, 16*16), s.Size())
	assert.Equal(t, gamemath.V(0, 16*16-framebuffer.Height), s.Camera)
}

func TestNewRejectsBrokenLevel(t *testing.T) {
	m, _, err := leveldata.Demo()
	require.NoError(t, err)
	_, err = New([]byte{0x00, 0x10, 0x01}, m)
	assert.Error(t, err)
}

func TestTickStandsOnGround(t *testing.T) {
	s := demoState(t)
	for range 5 {
		s.Tick(0)
	}
	assert.True(t, s.Pool.Player.OnGround)
	assert.Equal(t, standOn(3, 12), s.Pool.Player.Pos)
	assert.Equal(t, 5, s.Stats.Timer)
}

func TestTickWalksRight(t *testing.T) {
	s := demoState(t)
	for range 30 {
		s.Tick(controller.Right)
	}
	assert.Greater(t, s.Pool.Player.Pos.X, standOn(3, 12).X)
	assert.True(t, s.Buttons.Held(controller.Right))
}

func TestTimerStopsAtMax(t *testing.T) {
	s := demoState(t)
	s.Stats.Timer = config.Level.TimerMax
	s.Tick(0)
	assert.Equal(t, config.Level.TimerMax, s.Stats.Timer)
}

func TestCoinsRollOver(t *testing.T) {
	s := demoState(t)
	s.AddCoins(99)
	assert.Equal(t, 99, s.Stats.Coins)
	assert.Equal(t, 99*config.Level.CoinPoints, s.Stats.Score)

	s.AddCoins(2)
	assert.Equal(t, 1, s.Stats.Coins)
	assert.Equal(t, 101*config.Level.CoinPoints, s.Stats.Score)

	s.AddScore(5)
	assert.Equal(t, 101*config.Level.CoinPoints+5, s.Stats.Score)
}

func TestFallingOutRestarts(t *testing.T) {
	s := demoState(t)
	s.Stats.Score = 300
	s.Grid.Set(3, 13, 0)
	s.Pool.Player.Pos = gamemath.V(56, s.Size().Y+config.Level.FallMargin+1).Fixed()

	s.Tick(0)
	assert.Equal(t, 1, s.Restarts)
	assert.Equal(t, standOn(3, 12), s.Pool.Player.Pos)
	assert.NotZero(t, s.Grid.At(3, 13), "terrain is repainted")
	assert.Equal(t, 300, s.Stats.Score)
}

func TestSignShowsTextbox(t *testing.T) {
	s := demoState(t)
	var sign leveldata.EntitySpec
	for _, e := range s.Manifest.Entities {
		if e.Kind == leveldata.KindSign {
			sign = e
			break
		}
	}
	require.NotEmpty(t, sign.Text)

	s.Pool.Player.Pos = standOn(sign.X, sign.Y)
	s.Tick(0)
	assert.Equal(t, sign.Text, s.HUD.Box.Message())
	assert.True(t, s.HUD.Box.Open())
}

func TestRender(t *testing.T) {
	s := demoState(t)
	fb := framebuffer.NewDefault()
	require.NotPanics(t, func() { s.Render(fb) })

	// ground at tile (0, 13) has grass on top
	groundTop := gamemath.V(0, 13).Mul(gamemath.TileSize).Sub(s.Camera).Add(gamemath.V(8, 0))
	assert.Equal(t, pack(ColorPalette.Grass), *fb.Pixel(groundTop))

	// after one tick the fade covers the corners
	s.Tick(0)
	s.Render(fb)
	assert.Equal(t, fadeBlack, *fb.Pixel(gamemath.V(0, 0)))
	assert.Equal(t, fadeBlack, *fb.Pixel(gamemath.V(framebuffer.Width-1, framebuffer.Height-1)))
}
