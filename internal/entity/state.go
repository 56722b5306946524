package entity

// State is a character's movement/animation state.
type State int

const (
	// StateIdle is standing or falling with no horizontal input.
	StateIdle State = iota
	// StateMoving is walking in the facing direction.
	StateMoving
	// StateJumping is rising after a jump.
	StateJumping
	// StateOnCeiling is the apex of a jump: gravity has used up the upward
	// velocity and the character has not landed yet.
	StateOnCeiling
)

// String returns the state name. It doubles as the sprite frame key.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateJumping:
		return "jumping"
	case StateOnCeiling:
		return "on_ceiling"
	default:
		return "unknown"
	}
}

// Airborne returns true for the states entered by jumping.
func (s State) Airborne() bool {
	return s == StateJumping || s == StateOnCeiling
}

// Facing is the horizontal direction a character looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the facing name.
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// ParseFacing converts "left" or "right" to a Facing. Anything else is right.
func ParseFacing(s string) Facing {
	if s == "left" {
		return FacingLeft
	}
	return FacingRight
}
