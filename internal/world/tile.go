// Package world provides the chunked tile map the movement core collides against.
package world

// Tile is the material id stored in a single grid cell.
type Tile uint8

const (
	// TileEmpty is a passable cell.
	TileEmpty Tile = iota
	// TileSolid is generic impassable ground.
	TileSolid
	// TileJoint marks the ends of a fused chunk seam. It is collidable.
	TileJoint
	// TileBrick is solid ground drawn differently from TileSolid.
	TileBrick
)

// Tile pixel scale. Every conversion between tile and pixel space uses these.
const (
	TileWidth  = 5
	TileHeight = 5
)

// Solid returns true if the tile blocks movement.
func (t Tile) Solid() bool {
	return t != TileEmpty
}

// String returns a human-readable material name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileJoint:
		return "joint"
	case TileBrick:
		return "brick"
	default:
		return "unknown"
	}
}
