package physics

// Params holds the movement tuning shared by every entity.
type Params struct {
	Gravity      float64 // Added to vertical velocity every frame
	Acceleration float64 // Added to horizontal velocity while a direction is held
	Decay        float64 // Horizontal velocity multiplier per frame with no direction held
	StopBelow    float64 // Decaying horizontal speed under this snaps to zero
	JumpImpulse  float64 // Vertical velocity set by a jump, negative is up
	RayStep      int     // Raycast probe step in pixels
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:      0.4,
		Acceleration: 0.5,
		Decay:        0.75,
		StopBelow:    0.1,
		JumpImpulse:  -5,
		RayStep:      1,
	}
}
