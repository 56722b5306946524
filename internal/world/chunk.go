package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBound is returned when a coordinate falls outside a chunk.
	ErrOutOfBound = errors.New("coordinate outside chunk")
	// ErrCapacity is returned when a chunk's tile buffer cannot be reserved.
	ErrCapacity = errors.New("chunk capacity unavailable")
	// ErrInvalidBound is returned for chunk bounds outside the configured limits.
	ErrInvalidBound = errors.New("invalid chunk bound")
)

// Chunk is a tile-aligned region of the world with its own row-major tile buffer.
type Chunk struct {
	tiles []Tile
	bound TileBound
}

// NewChunk creates an uninitialized chunk covering the bound.
func NewChunk(bound TileBound) *Chunk {
	return &Chunk{bound: bound}
}

// Init allocates the tile buffer and clears it to TileEmpty.
func (c *Chunk) Init() error {
	if err := c.bound.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	n := c.bound.Area()
	if cap(c.tiles) >= n {
		c.tiles = c.tiles[:n]
		clear(c.tiles)
		return nil
	}
	c.tiles = make([]Tile, n)
	return nil
}

// Bound returns the chunk's tile-aligned bound.
func (c *Chunk) Bound() TileBound {
	return c.bound
}

// Extent returns the chunk's pixel-space rectangle.
func (c *Chunk) Extent() Rect {
	return c.bound.Pixels()
}

func (c *Chunk) index(x, y int) (int, bool) {
	if x < 0 || x >= c.bound.Width || y < 0 || y >= c.bound.Height || len(c.tiles) == 0 {
		return 0, false
	}
	return y*c.bound.Width + x, true
}

// Tile returns the tile at chunk-relative coordinates.
func (c *Chunk) Tile(x, y int) (Tile, error) {
	i, ok := c.index(x, y)
	if !ok {
		return TileEmpty, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBound, x, y, c.bound.Width, c.bound.Height)
	}
	return c.tiles[i], nil
}

// SetTile writes the tile at chunk-relative coordinates.
func (c *Chunk) SetTile(x, y int, t Tile) error {
	i, ok := c.index(x, y)
	if !ok {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBound, x, y, c.bound.Width, c.bound.Height)
	}
	c.tiles[i] = t
	return nil
}

// ClampTile returns the tile at the nearest in-range cell. Out-of-range
// coordinates hit the edge instead of failing.
func (c *Chunk) ClampTile(x, y int) Tile {
	if len(c.tiles) == 0 {
		return TileEmpty
	}
	x = min(max(x, 0), c.bound.Width-1)
	y = min(max(y, 0), c.bound.Height-1)
	return c.tiles[y*c.bound.Width+x]
}

// TileAt returns the tile under an absolute pixel coordinate, or
// ErrOutOfBound for pixels outside the chunk.
func (c *Chunk) TileAt(absX, absY int) (Tile, error) {
	ext := c.Extent()
	rx, ry := absX-ext.X, absY-ext.Y
	if rx < 0 || ry < 0 {
		return TileEmpty, ErrOutOfBound
	}
	i, ok := c.index(rx/TileWidth, ry/TileHeight)
	if !ok {
		return TileEmpty, ErrOutOfBound
	}
	return c.tiles[i], nil
}

// Fill copies a row-major tile slice into the chunk. Extra tiles are ignored
// and missing tiles stay empty.
func (c *Chunk) Fill(tiles []Tile) {
	copy(c.tiles, tiles)
}
