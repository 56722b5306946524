// Package game runs the fixed-step simulation and the terminal frame loop.
package game

// Phase is the simulation lifecycle stage.
type Phase int

const (
	// PhaseUninitialized is a simulation that has not loaded a level yet.
	PhaseUninitialized Phase = iota
	// PhaseReady is a simulation that can Step and Render.
	PhaseReady
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}
