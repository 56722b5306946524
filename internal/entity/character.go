// Package entity provides the moving entities the simulation integrates.
package entity

import (
	"math"

	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/world"
)

// Character is a moving entity: a float position and velocity integrated once
// per frame against the world map.
type Character struct {
	Def *gamedata.CharacterDef // Sprite and tuning definition

	X, Y       float64 // Pixel position of the bounding box's top-left corner
	VelX, VelY float64 // Pixels per frame
	MaxVelX    float64 // Horizontal cap
	MaxVelY    float64 // Vertical cap

	DispX, DispY int // Discretized displacement requested on the last frame

	Facing Facing
	State  State
	Frame  uint64 // Frames integrated so far

	OnGround bool // Last vertical pass was stopped from below
	BlockedX bool // Last horizontal pass collided
	BlockedY bool // Last vertical pass collided
}

// NewCharacter creates a character from its definition at a pixel position.
func NewCharacter(def *gamedata.CharacterDef, x, y float64) *Character {
	if def == nil {
		def = &gamedata.CharacterDef{}
	}
	return &Character{
		Def:     def,
		X:       x,
		Y:       y,
		MaxVelX: def.MaxVelX,
		MaxVelY: def.MaxVelY,
	}
}

// Bound returns the pixel bounding box for the current sprite frame.
func (c *Character) Bound() world.Rect {
	f := c.Def.Frame(c.State.String())
	return world.Rect{
		X: int(math.Floor(c.X)),
		Y: int(math.Floor(c.Y)),
		W: f.W,
		H: f.H,
	}
}

// Glyph returns the rune used to draw the character.
func (c *Character) Glyph() rune {
	return c.Def.GlyphRune()
}
