package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/input"
	"github.com/samdwyer/chunkrun/internal/world"
)

func testDef() *gamedata.CharacterDef {
	return &gamedata.CharacterDef{
		ID:      "hero",
		Glyph:   "@",
		MaxVelX: 2,
		MaxVelY: 6,
		Frames: map[string]gamedata.FrameDef{
			"idle":    {W: 5, H: 5},
			"jumping": {W: 4, H: 7},
		},
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateMoving, "moving"},
		{StateJumping, "jumping"},
		{StateOnCeiling, "on_ceiling"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestStateAirborne(t *testing.T) {
	assert.False(t, StateIdle.Airborne())
	assert.False(t, StateMoving.Airborne())
	assert.True(t, StateJumping.Airborne())
	assert.True(t, StateOnCeiling.Airborne())
}

func TestParseFacing(t *testing.T) {
	assert.Equal(t, FacingLeft, ParseFacing("left"))
	assert.Equal(t, FacingRight, ParseFacing("right"))
	assert.Equal(t, FacingRight, ParseFacing(""))
	assert.Equal(t, "left", FacingLeft.String())
}

func TestCharacterBoundFollowsFrame(t *testing.T) {
	c := NewCharacter(testDef(), 10.7, -0.5)
	assert.Equal(t, world.Rect{X: 10, Y: -1, W: 5, H: 5}, c.Bound())

	c.State = StateJumping
	assert.Equal(t, world.Rect{X: 10, Y: -1, W: 4, H: 7}, c.Bound())

	// Unknown frame falls back to idle.
	c.State = StateMoving
	assert.Equal(t, 5, c.Bound().W)
	assert.Equal(t, '@', c.Glyph())
	assert.Equal(t, 2.0, c.MaxVelX)
}

func TestNewCharacterNilDef(t *testing.T) {
	c := NewCharacter(nil, 0, 0)
	require.NotNil(t, c.Def)
	assert.Equal(t, world.TileWidth, c.Bound().W)
}

func TestPlayerSlotJoinLeave(t *testing.T) {
	slot := NewPlayerSlot(1, testDef(), 20, 30, FacingLeft)

	_, live := Live(slot)
	assert.False(t, live, "empty slot is not live")

	c := slot.Join()
	require.NotNil(t, c)
	assert.Equal(t, 20.0, c.X)
	assert.Equal(t, FacingLeft, c.Facing)

	got, live := Live(slot)
	assert.True(t, live)
	assert.Same(t, c, got)

	c.X = 55
	slot.Leave()
	_, live = Live(slot)
	assert.False(t, live)

	// Rejoining keeps the same character.
	assert.Same(t, c, slot.Join())
	assert.Equal(t, 55.0, slot.Character.X)
}

func TestNPCAlwaysLive(t *testing.T) {
	npc := NewNPC(testDef(), 1, 2, FacingRight)
	c, live := Live(npc)
	assert.True(t, live)
	assert.Same(t, npc.Character, c)
}

func TestPatrolButtons(t *testing.T) {
	c := NewCharacter(testDef(), 0, 0)
	var p Patrol

	assert.Equal(t, input.Right, p.Buttons(c))

	c.BlockedX = true
	assert.Equal(t, input.Left, p.Buttons(c))

	c.Facing = FacingLeft
	assert.Equal(t, input.Right, p.Buttons(c))

	c.BlockedX = false
	assert.Equal(t, input.Left, p.Buttons(c))
}
