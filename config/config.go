package config

import "image/color"

// PlayerConfig contains the player movement tuning. Speeds are fixed point
// (pixels x256 per tick).
type PlayerConfig struct {
	// Movement
	WalkSpeed    int32 // max speed without a full P-meter
	RunSpeed     int32 // max speed with a full P-meter
	TurnAccel    int32 // acceleration while reversing direction
	Accel        int32 // acceleration while already moving that way
	Friction     int32
	JumpLift     [8]int32 // indexed by |vel.x| / JumpLiftStep
	JumpLiftStep int32
	DropOffset   int32 // position shift when dropping through a platform

	// Gravity
	GravityHold  int32 // while the jump button is held
	Gravity      int32
	MaxFallSpeed int32

	// P-meter
	PMeterMax  int32
	PMeterGain int32

	// Animation
	StepDistance int32 // accumulated |vel.x| per walk frame
	WalkFrames   int32

	// Dimensions
	Hitbox      [2]int32
	FrameWidth  int32
	FrameHeight int32
}

// StarConfig contains the bouncing star tuning.
type StarConfig struct {
	Lifetime     int32
	Gravity      int32
	MaxFallSpeed int32
	Speed        int32 // horizontal speed after a bounce
	Bounce       int32 // vertical speed after landing
	Launch       int32 // vertical speed when ejected from a block
	Hitbox       [2]int32
	Points       int
}

// KeyConfig contains key and lock tuning.
type KeyConfig struct {
	PickupRadius int32 // pixels, box test against the player
	PairRadius   int32 // pixels, box test against locks
	ReachRadius  int32 // pixels, distance at which unlocking starts
	UnlockTicks  int32
	Follow       int32 // divisor turning distance into target velocity
	Smoothing    int32 // divisor of the velocity blend
	HoverHeight  int32 // pixels above the player's head
	Gravity      int32
	MaxFallSpeed int32
	Hitbox       [2]int32
	LockHitbox   [2]int32
	DoorHeight   int32 // tiles cleared above the lock
	Points       int
}

// EffectsConfig contains short-lived effect tuning.
type EffectsConfig struct {
	ExplosionTicks int32
	ExplosionStep  int32 // ticks per animation frame
	SignHitbox     [2]int32
}

// PhysicsConfig contains collision constants shared by all entities.
type PhysicsConfig struct {
	HurtBounce int32 // vertical speed imparted by HurtTop tiles
	SlopeStick int32 // extra downward shift while grounded on a slope
}

// LevelConfig contains level-state tuning.
type LevelConfig struct {
	CoinPoints     int
	CoinRollover   int
	TimerMax       int // frames
	FadeInTicks    int
	FallMargin     int32 // pixels below the level before the player respawns
	DefaultSize    [2]int32
	DefaultSpawn   [2]int32
	CustomSlotName string
}

// CameraConfig contains camera behaviour.
type CameraConfig struct {
	Deadzone int32 // pixels the player may move off-centre before scrolling
	Lift     int32 // pixels the player sits below the centre
}

// HUDConfig contains HUD and textbox layout.
type HUDConfig struct {
	FontSize       float64
	TextColor      color.RGBA
	ShadowColor    color.RGBA
	BoxColor       color.RGBA
	BoxBorderColor color.RGBA
	BoxAltColor    color.RGBA // second checker colour
	Position       [2]int32 // top-left of the score block
	BoxCentre      int32    // row the textbox opens around
	BoxMinTop      int32
	BoxMargin      int32
	BoxOpenTicks   int32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay   bool // draw hex positions and hitboxes
	SkipFade  bool
	LevelPath string // manifest to load instead of the embedded level
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Star StarConfig
var Key KeyConfig
var Effects EffectsConfig
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyTop       = color.RGBA{R: 0x5C, G: 0x94, B: 0xFC, A: 255}
	SkyBottom    = color.RGBA{R: 0xB5, G: 0x9F, B: 0xE6, A: 255}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 180,
		Scale:  3,
		Title:  "tooth",
	}

	Player = PlayerConfig{
		WalkSpeed:    0x240,
		RunSpeed:     0x300,
		TurnAccel:    0x50,
		Accel:        0x18,
		Friction:     0x10,
		JumpLift:     [8]int32{0x500, 0x520, 0x550, 0x570, 0x5A0, 0x5C0, 0x5F0, 0x610},
		JumpLiftStep: 0x80,
		DropOffset:   0x1000,

		GravityHold:  0x30,
		Gravity:      0x60,
		MaxFallSpeed: 1024,

		PMeterMax:  0x70,
		PMeterGain: 3,

		StepDistance: 0xA00,
		WalkFrames:   3,

		Hitbox:      [2]int32{10, 24},
		FrameWidth:  16,
		FrameHeight: 32,
	}

	Star = StarConfig{
		Lifetime:     480, // 8 seconds at 60fps
		Gravity:      0x30,
		MaxFallSpeed: 0x400,
		Speed:        0x140,
		Bounce:       -0x380,
		Launch:       -0x400,
		Hitbox:       [2]int32{8, 8},
		Points:       1000,
	}

	Key = KeyConfig{
		PickupRadius: 16,
		PairRadius:   48,
		ReachRadius:  4,
		UnlockTicks:  60,
		Follow:       8,
		Smoothing:    4,
		HoverHeight:  6,
		Gravity:      0x40,
		MaxFallSpeed: 0x400,
		Hitbox:       [2]int32{8, 8},
		LockHitbox:   [2]int32{16, 48},
		DoorHeight:   3,
		Points:       500,
	}

	Effects = EffectsConfig{
		ExplosionTicks: 16,
		ExplosionStep:  4,
		SignHitbox:     [2]int32{16, 16},
	}

	Physics = PhysicsConfig{
		HurtBounce: -2048,
		SlopeStick: 256,
	}

	Level = LevelConfig{
		CoinPoints:     100,
		CoinRollover:   100,
		TimerMax:       10*60*60 - 1, // 9:59.59
		FadeInTicks:    40, // 8 pixels of radius per tick on a 320 wide frame
		FallMargin:     64,
		DefaultSize:    [2]int32{256, 16},
		DefaultSpawn:   [2]int32{3, 8},
		CustomSlotName: "custom",
	}

	Camera = CameraConfig{
		Deadzone: 0x10,
		Lift:     16,
	}

	HUD = HUDConfig{
		FontSize:       8,
		TextColor:      White,
		ShadowColor:    Black,
		BoxColor:       color.RGBA{R: 0xCC, G: 0x2B, B: 0x32, A: 255},
		BoxBorderColor: color.RGBA{R: 0x83, G: 0x21, B: 0x2C, A: 255},
		BoxAltColor:    color.RGBA{R: 0xD0, G: 0x4A, B: 0x61, A: 255},
		Position:       [2]int32{16, 8},
		BoxCentre:      36,
		BoxMinTop:      24,
		BoxMargin:      8,
		BoxOpenTicks:   12,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
