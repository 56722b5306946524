package world

import "fmt"

// Chunk sizing limits and the world tile budget.
const (
	MinChunkSide     = 1
	MaxChunkSide     = 64
	MaxTilesPerChunk = 1024
	TotalTilesInMap  = 8192
)

// World pixel bounds. Entity positions are clamped into this box every frame.
const (
	XLeftBound  = 0
	XRightBound = 1280
	YLowerBound = 0
	YUpperBound = 640
)

// Axis selects horizontal or vertical travel.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Along returns the point moved d pixels along the axis.
func (p Point) Along(axis Axis, d int) Point {
	if axis == Horizontal {
		return Point{X: p.X + d, Y: p.Y}
	}
	return Point{X: p.X, Y: p.Y + d}
}

// TileBound is a tile-aligned rectangle. X, Y is the minimum corner in tiles.
type TileBound struct {
	X, Y          int
	Width, Height int
}

// Area returns the number of tiles covered.
func (b TileBound) Area() int {
	return b.Width * b.Height
}

// Validate checks the side and area limits for a chunk.
func (b TileBound) Validate() error {
	if b.Width < MinChunkSide || b.Height < MinChunkSide ||
		b.Width > MaxChunkSide || b.Height > MaxChunkSide {
		return fmt.Errorf("%w: %dx%d outside side limits [%d, %d]",
			ErrInvalidBound, b.Width, b.Height, MinChunkSide, MaxChunkSide)
	}
	if b.Area() > MaxTilesPerChunk {
		return fmt.Errorf("%w: %d tiles exceeds %d per chunk", ErrInvalidBound, b.Area(), MaxTilesPerChunk)
	}
	return nil
}

// Pixels converts the bound into pixel space.
func (b TileBound) Pixels() Rect {
	return Rect{
		X: b.X * TileWidth,
		Y: b.Y * TileHeight,
		W: b.Width * TileWidth,
		H: b.Height * TileHeight,
	}
}

// Rect is a pixel-space rectangle. X, Y is the minimum corner; W, H are extents.
type Rect struct {
	X, Y int
	W, H int
}

// MaxX returns the last pixel column inside the rect.
func (r Rect) MaxX() int { return r.X + r.W - 1 }

// MaxY returns the last pixel row inside the rect.
func (r Rect) MaxY() int { return r.Y + r.H - 1 }

// Contains returns true if the given pixel is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects returns true if this rect overlaps another rect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Translate returns the rect moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Sweep returns the rect stretched to cover a move of d pixels along the axis.
func (r Rect) Sweep(axis Axis, d int) Rect {
	switch {
	case axis == Horizontal && d < 0:
		r.X += d
		r.W -= d
	case axis == Horizontal:
		r.W += d
	case d < 0:
		r.Y += d
		r.H -= d
	default:
		r.H += d
	}
	return r
}
