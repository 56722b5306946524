package entity

import (
	"fmt"

	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/input"
)

// Entity is either a *PlayerSlot or an *NPC. Dispatch with a type switch that
// handles both.
type Entity interface {
	entity()
}

// PlayerSlot is a controller's seat. It may or may not hold a character, and
// a joined slot is toggled rather than freed.
type PlayerSlot struct {
	Controller int
	Character  *Character // nil until the slot first joins
	Enabled    bool

	def            *gamedata.CharacterDef
	spawnX, spawnY float64
	facing         Facing
}

// NewPlayerSlot creates an empty slot that spawns def at x, y when it joins.
func NewPlayerSlot(controller int, def *gamedata.CharacterDef, x, y float64, facing Facing) *PlayerSlot {
	return &PlayerSlot{
		Controller: controller,
		def:        def,
		spawnX:     x,
		spawnY:     y,
		facing:     facing,
	}
}

func (*PlayerSlot) entity() {}

// Join enables the slot, creating its character on first join.
func (p *PlayerSlot) Join() *Character {
	if p.Character == nil {
		p.Character = NewCharacter(p.def, p.spawnX, p.spawnY)
		p.Character.Facing = p.facing
	}
	p.Enabled = true
	return p.Character
}

// Leave disables the slot. The character keeps its state for a later Join.
func (p *PlayerSlot) Leave() {
	p.Enabled = false
}

// NPC is an always-live character driven by a Patrol brain.
type NPC struct {
	Character *Character
	Brain     Patrol
}

func (*NPC) entity() {}

// NewNPC creates an NPC at x, y.
func NewNPC(def *gamedata.CharacterDef, x, y float64, facing Facing) *NPC {
	c := NewCharacter(def, x, y)
	c.Facing = facing
	return &NPC{Character: c}
}

// Live returns the entity's character when it takes part in the simulation.
func Live(e Entity) (*Character, bool) {
	switch v := e.(type) {
	case *PlayerSlot:
		if v.Character == nil || !v.Enabled {
			return nil, false
		}
		return v.Character, true
	case *NPC:
		return v.Character, v.Character != nil
	default:
		panic(fmt.Sprintf("entity: unhandled entity type %T", e))
	}
}

// Patrol walks an NPC in its facing direction and turns around when the last
// frame's horizontal move was blocked.
type Patrol struct{}

// Buttons returns the NPC's input for this frame.
func (Patrol) Buttons(c *Character) input.Buttons {
	dir := c.Facing
	if c.BlockedX {
		if dir == FacingLeft {
			dir = FacingRight
		} else {
			dir = FacingLeft
		}
	}
	if dir == FacingLeft {
		return input.Left
	}
	return input.Right
}
