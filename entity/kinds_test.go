package entity

import (
	"testing"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/automoto/tooth/foreground"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	coins int
	score int
	text  []string
	hides int
}

func (e *eventRecorder) AddCoins(n int)      { e.coins += n }
func (e *eventRecorder) AddScore(n int)      { e.score += n }
func (e *eventRecorder) ShowText(msg string) { e.text = append(e.text, msg) }
func (e *eventRecorder) HideText()           { e.hides++ }

// floorGrid has solid ground on row 12 (pixels 192..207).
func floorGrid() *foreground.Grid {
	grid := foreground.NewGrid()
	grid.Fill(0, 12, 64, 1, foreground.TileSpentBlock)
	return grid
}

func hold(b controller.Buttons, sample controller.Button) controller.Buttons {
	return b.Next(sample)
}

func countKind[K Kind](p *Pool) int {
	n := 0
	for _, e := range p.All() {
		if _, ok := e.Kind.(K); ok {
			n++
		}
	}
	return n
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 185)))
	grid := floorGrid()
	for range 10 {
		p.Run(grid, controller.Buttons{}, nil)
	}
	assert.True(t, p.Player.OnGround)
	assert.Equal(t, int32(191*256), p.Player.Pos.Y)
	assert.Equal(t, int32(FrameStand), p.Player.Frame)
}

func TestPlayerJumpLiftDependsOnSpeed(t *testing.T) {
	for _, tc := range []struct {
		velX int32
		lift int32
	}{
		{0, 0x500},
		{0x100, 0x550},
		{-0x240, 0x5A0},
		{0x300, 0x5F0},
		{0x7FFF, 0x610},
	} {
		assert.Equal(t, tc.lift, jumpLift(tc.velX), "vel %#x", tc.velX)
	}
}

func TestPlayerJumps(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	grid := floorGrid()
	var b controller.Buttons
	p.Run(grid, b, nil)
	require.True(t, p.Player.OnGround)

	b = hold(b, controller.A)
	p.Run(grid, b, nil)
	assert.False(t, p.Player.OnGround)
	assert.Equal(t, int32(-0x500+0x30), p.Player.Vel.Y)
	assert.Less(t, p.Player.Pos.Y, int32(191*256))
	assert.Equal(t, int32(FrameJump), p.Player.Frame)

	// holding A keeps the light gravity
	b = hold(b, controller.A)
	p.Run(grid, b, nil)
	assert.Equal(t, int32(-0x500+0x30+0x30), p.Player.Vel.Y)
}

func TestPlayerAcceleratesAndTurns(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	grid := floorGrid()
	var b controller.Buttons
	p.Run(grid, b, nil)

	b = hold(b, controller.Right)
	p.Run(grid, b, nil)
	assert.Equal(t, int32(0x50), p.Player.Vel.X)
	p.Run(grid, b, nil)
	assert.Equal(t, int32(0x50+0x18), p.Player.Vel.X)

	for range 100 {
		p.Run(grid, b, nil)
	}
	assert.LessOrEqual(t, p.Player.Vel.X, config.Player.RunSpeed)

	b = hold(b, controller.Left)
	p.Run(grid, b, nil)
	assert.True(t, p.Player.HFlip)

	// letting go on the ground slows down to a stop
	b = hold(b, 0)
	for range 100 {
		p.Run(grid, b, nil)
	}
	assert.Zero(t, p.Player.Vel.X)
	assert.False(t, p.Player.Kind.(*Player).PSpeed)
}

func TestPlayerPMeterFills(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	grid := floorGrid()
	var b controller.Buttons
	p.Run(grid, b, nil)

	b = hold(b, controller.Right)
	for range 80 {
		p.Run(grid, b, nil)
	}
	pl := p.Player.Kind.(*Player)
	assert.Equal(t, config.Player.PMeterMax, pl.PMeter)
	assert.True(t, pl.PSpeed)
	assert.Equal(t, config.Player.RunSpeed, p.Player.Vel.X)
}

func TestPlayerDropsThroughPlatform(t *testing.T) {
	grid := foreground.NewGrid()
	grid.Fill(0, 12, 20, 1, foreground.TilePlatform)
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	var b controller.Buttons
	p.Run(grid, b, nil)
	require.True(t, p.Player.OnGround)

	b = hold(b, controller.C)
	p.Run(grid, b, nil)
	assert.False(t, p.Player.OnGround)
	assert.Equal(t, int32(207*256), p.Player.Pos.Y)
}

func TestPlayerCollectsCoin(t *testing.T) {
	grid := floorGrid()
	grid.Set(6, 11, foreground.TileCoin)
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	ev := &eventRecorder{}

	var b controller.Buttons
	b = hold(b, controller.Right)
	for range 10 {
		p.Run(grid, b, ev)
	}
	assert.Equal(t, foreground.TileEmpty, grid.At(6, 11))
	assert.Equal(t, 1, ev.coins)
}

func TestCoinSpawnsExplosion(t *testing.T) {
	grid := floorGrid()
	grid.Set(6, 11, foreground.TileCoin)
	p := NewPool(NewPlayer(fixedPx(100, 180)))
	p.Run(grid, controller.Buttons{}, nil)

	require.Equal(t, 1, countKind[*Explosion](p))
	for _, e := range p.All() {
		assert.Equal(t, fixedPx(6*16+8, 11*16+14), e.Pos)
	}
}

func TestItemBlockEjectsStar(t *testing.T) {
	grid := foreground.NewGrid()
	grid.Set(5, 5, foreground.TileItemBlock)
	p := NewPool(NewPlayer(fixedPx(88, 123)))
	p.Player.Vel = gamemath.V(0, -0x400)

	p.Run(grid, controller.Buttons{}, nil)

	assert.Equal(t, foreground.TileSpentBlock, grid.At(5, 5))
	require.Equal(t, 1, countKind[*Star](p))
	for _, e := range p.All() {
		assert.Equal(t, fixedPx(5*16+8, 5*16-1), e.Pos)
		assert.Equal(t, config.Star.Speed, e.Vel.X)
		assert.Equal(t, config.Star.Launch, e.Vel.Y)
	}
}

func TestStarBouncesOffFloorAndWalls(t *testing.T) {
	grid := floorGrid()
	grid.Fill(20, 0, 1, 12, foreground.TileSpentBlock)
	p := NewPool(nil)
	h, _ := p.Spawn(NewStar(fixedPx(300, 150), 1))

	bounced, turned := false, false
	for range 200 {
		p.Run(grid, controller.Buttons{}, nil)
		e := p.Get(h)
		require.NotNil(t, e)
		if e.Vel.Y == config.Star.Bounce {
			bounced = true
		}
		if e.Vel.X < 0 {
			turned = true
		}
		require.Less(t, e.Pos.Pixel().Y, int32(192))
		require.Less(t, e.Pos.Pixel().X, int32(320))
	}
	assert.True(t, bounced)
	assert.True(t, turned)
}

func TestStarExpires(t *testing.T) {
	p := NewPool(nil)
	h, _ := p.Spawn(NewStar(fixedPx(300, 150), 1))
	grid := floorGrid()
	for range config.Star.Lifetime {
		p.Run(grid, controller.Buttons{}, nil)
	}
	assert.Nil(t, p.Get(h))
	assert.Equal(t, 1, countKind[*Explosion](p))
}

func TestPlayerCatchesStar(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	h, _ := p.Spawn(NewStar(fixedPx(100, 180), 1))
	ev := &eventRecorder{}

	p.Run(floorGrid(), controller.Buttons{}, ev)

	assert.Nil(t, p.Get(h))
	assert.Equal(t, config.Star.Points, ev.score)
	assert.Equal(t, 1, countKind[*Explosion](p))
}

func TestExplosionAnimatesAndExpires(t *testing.T) {
	p := NewPool(nil)
	h, _ := p.Spawn(NewExplosion(fixedPx(50, 50)))
	grid := foreground.NewGrid()

	var frames []int32
	for range config.Effects.ExplosionTicks - 1 {
		p.Run(grid, controller.Buttons{}, nil)
		frames = append(frames, p.Get(h).Frame)
	}
	assert.Equal(t, int32(0), frames[0])
	assert.Equal(t, (config.Effects.ExplosionTicks-1)/config.Effects.ExplosionStep, frames[len(frames)-1])

	p.Run(grid, controller.Buttons{}, nil)
	assert.Nil(t, p.Get(h))
}

func TestSignShowsWhileOverlapping(t *testing.T) {
	p := NewPool(NewPlayer(fixedPx(100, 191)))
	p.Spawn(NewSign(fixedPx(100, 191), "HELLO"))
	grid := floorGrid()
	ev := &eventRecorder{}

	p.Run(grid, controller.Buttons{}, ev)
	p.Run(grid, controller.Buttons{}, ev)
	assert.Equal(t, []string{"HELLO"}, ev.text)

	p.Player.Pos = fixedPx(200, 191)
	p.Run(grid, controller.Buttons{}, ev)
	p.Run(grid, controller.Buttons{}, ev)
	assert.Equal(t, 1, ev.hides)
}

func TestKeyOpensDoor(t *testing.T) {
	grid := floorGrid()
	grid.Fill(10, 9, 1, 3, foreground.TileDoor)

	p := NewPool(NewPlayer(fixedPx(140, 191)))
	key, _ := p.Spawn(NewKey(fixedPx(140, 191)))
	lock, _ := p.Spawn(NewLock(gamemath.V(10, 11)))
	ev := &eventRecorder{}

	p.Run(grid, controller.Buttons{}, ev)
	require.True(t, p.Get(key).Kind.(*Key).PickedUp)

	unlocking := false
	for range 300 {
		p.Run(grid, controller.Buttons{}, ev)
		if e := p.Get(key); e != nil && e.Kind.(*Key).UnlockingTarget == lock {
			unlocking = true
		}
		if p.Get(lock) == nil {
			break
		}
	}

	assert.True(t, unlocking)
	assert.Nil(t, p.Get(lock))
	assert.Nil(t, p.Get(key))
	for y := int32(9); y <= 11; y++ {
		assert.Equal(t, foreground.TileEmpty, grid.At(10, y), "door row %d", y)
	}
	assert.Equal(t, config.Key.Points, ev.score)
	assert.Equal(t, int(config.Key.DoorHeight), countKind[*Explosion](p))
}

func TestKeyWaitsForPlayer(t *testing.T) {
	grid := floorGrid()
	p := NewPool(NewPlayer(fixedPx(40, 191)))
	key, _ := p.Spawn(NewKey(fixedPx(300, 150)))

	for range 60 {
		p.Run(grid, controller.Buttons{}, nil)
	}
	e := p.Get(key)
	require.NotNil(t, e)
	assert.False(t, e.Kind.(*Key).PickedUp)
	assert.True(t, e.OnGround)
	assert.Equal(t, int32(300*256), e.Pos.X)
}

func TestKeyFollowsPlayer(t *testing.T) {
	grid := floorGrid()
	p := NewPool(NewPlayer(fixedPx(40, 191)))
	key, _ := p.Spawn(NewKey(fixedPx(40, 191)))

	for range 120 {
		p.Run(grid, controller.Buttons{}, nil)
	}
	e := p.Get(key)
	require.NotNil(t, e)
	target := fixedPx(40, 191-24-config.Key.HoverHeight)
	assert.InDelta(t, target.X, e.Pos.X, 4*256)
	assert.InDelta(t, target.Y, e.Pos.Y, 4*256)
}
