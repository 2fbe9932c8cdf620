package gamemath

import "fmt"

// FixedOne is one pixel in the fixed-point scale used for positions and
// velocities.
const FixedOne = 256

// TileSize is the edge of a grid cell in pixels.
const TileSize = 16

// Vec2 is a 2D integer vector. Positions and velocities are stored x256
// (8 fractional bits); pixel and tile coordinates use the same type unscaled.
type Vec2 struct {
	X, Y int32
}

// V is shorthand for Vec2{x, y}.
func V(x, y int32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies both components by n.
func (v Vec2) Mul(n int32) Vec2 { return Vec2{v.X * n, v.Y * n} }

// Div divides both components by n, truncating toward zero.
func (v Vec2) Div(n int32) Vec2 { return Vec2{v.X / n, v.Y / n} }

// Rem is the componentwise remainder; the sign follows the dividend.
func (v Vec2) Rem(n int32) Vec2 { return Vec2{v.X % n, v.Y % n} }

// Scale multiplies componentwise.
func (v Vec2) Scale(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Shr shifts both components right (arithmetic).
func (v Vec2) Shr(n uint) Vec2 { return Vec2{v.X >> n, v.Y >> n} }

func (v Vec2) Abs() Vec2 { return Vec2{Abs(v.X), Abs(v.Y)} }

func (v Vec2) Min(o Vec2) Vec2 { return Vec2{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{max(v.X, o.X), max(v.Y, o.Y)} }

// Pixel converts a fixed-point vector to whole pixels.
func (v Vec2) Pixel() Vec2 { return v.Div(FixedOne) }

// Fixed converts whole pixels to fixed point.
func (v Vec2) Fixed() Vec2 { return v.Mul(FixedOne) }

// Tile converts pixel coordinates to grid coordinates.
func (v Vec2) Tile() Vec2 { return v.Div(TileSize) }

// InTile returns the offset of a pixel coordinate inside its tile.
func (v Vec2) InTile() Vec2 { return v.Rem(TileSize) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
